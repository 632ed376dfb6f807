// Package xmlattr reads typed attribute values from XML elements.
//
// Attributes are addressed by small expressions evaluated relative to an
// element:
//
//	id                  attribute "id" of the element itself
//	xml:lang            attribute "lang" in namespace prefix "xml"
//	item/price/@amount  attribute "amount" of the first matching descendant
//
// The path part before "/@" uses etree path syntax, so predicates such as
// item[@type='book']/@isbn work as well. Expressions are compiled once into a
// Selector and evaluated with getters that never fail: a nil element, a
// missing attribute or an unparsable value yields the zero value. The Lookup
// variants additionally report whether a usable value was found.
//
//	doc := etree.NewDocument()
//	_ = doc.ReadFromString(`<order id="42"><total currency="EUR" amount="9.5"/></order>`)
//
//	id := xmlattr.MustCompile("id", nil).Int(doc.Root())                   // 42
//	amount := xmlattr.MustCompile("total/@amount", nil).Float64(doc.Root()) // 9.5
//
// When Namespaces are given to Compile, prefixes in the expression are
// resolved to namespace URIs and matched against the URIs declared in the
// document rather than the prefixes it happens to use.
package xmlattr
