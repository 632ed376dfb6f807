package strutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUnderscore converts s to snake_case. Runs of characters other than
// letters and digits become a single underscore, a lower-case letter followed
// by an upper-case letter is split, and the result is lower-cased.
func ToUnderscore(s string) string {
	s = strings.TrimSpace(nonWordRe.ReplaceAllString(s, " "))
	if s == "" {
		return ""
	}

	s = camelHumpRe.ReplaceAllString(s, "${1}_${2}")
	s = strings.ReplaceAll(s, " ", "_")

	return cases.Lower(language.Und).String(s)
}

// ToCamelCase converts s to camelCase using the word boundaries found by
// ToUnderscore.
func ToCamelCase(s string) string {
	return joinWords(s, false)
}

// ToPascalCase converts s to PascalCase using the word boundaries found by
// ToUnderscore.
func ToPascalCase(s string) string {
	return joinWords(s, true)
}

// FirstCharToUpper upper-cases the first character of s and leaves the rest
// untouched.
func FirstCharToUpper(s string) string {
	if s == "" {
		return ""
	}

	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

func joinWords(s string, upperFirst bool) string {
	words := strings.Split(ToUnderscore(s), "_")

	var b strings.Builder
	b.Grow(len(s))
	for i, w := range words {
		if i == 0 && !upperFirst {
			b.WriteString(w)
			continue
		}
		b.WriteString(FirstCharToUpper(w))
	}

	return b.String()
}
