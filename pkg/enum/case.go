package enum

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/essentials/pkg/strutil"
)

// Case is a naming convention used to format enum names.
type Case int

const (
	Camel Case = iota
	Pascal
	Underscore
	Kebab
	Lower
	Upper
)

var caseNames = [...]string{
	Camel:      "camel",
	Pascal:     "pascal",
	Underscore: "underscore",
	Kebab:      "kebab",
	Lower:      "lower",
	Upper:      "upper",
}

var caseSet = NewSet(Camel, Pascal, Underscore, Kebab, Lower, Upper)

func (c Case) String() string {
	if c < 0 || int(c) >= len(caseNames) {
		return fmt.Sprintf("Case(%d)", int(c))
	}
	return caseNames[c]
}

// ParseCase resolves a case name such as "camel" or "Underscore".
func ParseCase(name string) (Case, error) {
	return caseSet.Parse(name)
}

// Cases returns all supported naming conventions.
func Cases() []Case {
	return caseSet.Values()
}

// Format renders name in the naming convention c. Lower and Upper only change
// letter case and keep word boundaries as they are.
func (c Case) Format(name string) string {
	switch c {
	case Camel:
		return strutil.ToCamelCase(name)
	case Pascal:
		return strutil.ToPascalCase(name)
	case Underscore:
		return strutil.ToUnderscore(name)
	case Kebab:
		return strings.ReplaceAll(strutil.ToUnderscore(name), "_", "-")
	case Lower:
		return cases.Lower(language.Und).String(name)
	case Upper:
		return cases.Upper(language.Und).String(name)
	default:
		return name
	}
}

// MarshalJSON encodes v as a JSON string in the naming convention c.
// A nil v is encoded as null.
func MarshalJSON(v fmt.Stringer, c Case) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(c.Format(v.String()))
}
