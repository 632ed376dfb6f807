// Package strutil provides lenient helpers for everyday string work: parsing
// loose boolean and UUID input, converting between naming conventions,
// encoding for URLs and HTML, counting words, highlighting keywords and
// stripping markup.
//
// The helpers never return errors. Invalid input yields a safe fallback such
// as false, an empty slice or the input itself, which makes them convenient
// inside templates and data mapping code.
//
// # Naming conventions
//
// ToUnderscore is the basis of the other case helpers. It treats every
// character that is not a letter or a digit as a separator, splits camel humps
// and lower-cases the result. Letters outside ASCII are preserved:
//
//	strutil.ToUnderscore("HelloWorld")         // "hello_world"
//	strutil.ToUnderscore("Rød grød med fløde") // "rød_grød_med_fløde"
//	strutil.ToCamelCase("Hello (World)")       // "helloWorld"
//	strutil.ToPascalCase("øv bøv")             // "ØvBøv"
//
// # Markup
//
// StripHTML removes tags using an HTML tokenizer and decodes entities in the
// remaining text. Tags named in keep survive verbatim:
//
//	strutil.StripHTML("<p>Hi <b>there</b></p>", "b") // "Hi <b>there</b>"
//
// # Pipelines
//
// Apply and Compose chain string transformations:
//
//	slug := strutil.Compose(strings.TrimSpace, strutil.ToUnderscore)
//	slug("  Hello World ") // "hello_world"
package strutil
