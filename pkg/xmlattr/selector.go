package xmlattr

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// Namespaces maps expression prefixes to namespace URIs.
type Namespaces map[string]string

// Selector is a compiled attribute expression. It is safe for concurrent use.
type Selector struct {
	expr    string
	path    etree.Path
	hasPath bool
	space   string
	key     string
	uri     string
	byURI   bool
}

// Compile parses expr. ns may be nil, in which case prefixes are compared
// literally with the prefixes written in the document.
func Compile(expr string, ns Namespaces) (*Selector, error) {
	s := &Selector{expr: expr}

	name := strings.TrimSpace(expr)
	if i := strings.LastIndex(name, "/"); i >= 0 {
		p, attr := name[:i], name[i+1:]
		if !strings.HasPrefix(attr, "@") || p == "" {
			return nil, fmt.Errorf("%w: %q: expected path/@name", ErrInvalidExpression, expr)
		}
		path, err := etree.CompilePath(p)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %q", ErrInvalidExpression, expr), err)
		}
		s.path, s.hasPath = path, true
		name = attr
	}
	name = strings.TrimPrefix(name, "@")

	space, key, found := strings.Cut(name, ":")
	if !found {
		space, key = "", name
	}
	if key == "" || strings.ContainsAny(key, ":/@[] ") || (found && space == "") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
	}
	s.space, s.key = space, key

	if space != "" && ns != nil {
		uri, ok := ns[space]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownPrefix, space, expr)
		}
		s.uri, s.byURI = uri, true
	}

	return s, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string, ns Namespaces) *Selector {
	s, err := Compile(expr, ns)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Selector) String() string {
	return s.expr
}

// Find returns the selected attribute or nil.
func (s *Selector) Find(el *etree.Element) *etree.Attr {
	if el == nil {
		return nil
	}
	if s.hasPath {
		if el = el.FindElementPath(s.path); el == nil {
			return nil
		}
	}

	for i := range el.Attr {
		if a := &el.Attr[i]; s.match(a) {
			return a
		}
	}
	return nil
}

func (s *Selector) match(a *etree.Attr) bool {
	if a.Key != s.key {
		return false
	}
	if !s.byURI {
		return a.Space == s.space
	}
	return a.Space != "" && a.NamespaceURI() == s.uri
}

// ReadRoot parses an XML document from r and returns its root element.
func ReadRoot(r io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}
