// Package enum maps Go enumerations to and from their textual names.
//
// Any comparable type with a String method can be registered in a Set. The
// set parses names written in any of the common conventions, so "NotFound",
// "notFound", "not_found", "not-found" and "NOT FOUND" all resolve to the same
// value:
//
//	statuses := enum.NewSet(StatusActive, StatusNotFound)
//	s, err := statuses.Parse("not-found")
//
// Case formats names for output, and MarshalJSON writes a value as a JSON
// string in the chosen case:
//
//	enum.Camel.Format("NotFound")                // "notFound"
//	enum.MarshalJSON(StatusNotFound, enum.Camel) // []byte(`"notFound"`)
package enum
