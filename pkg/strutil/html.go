package strutil

import (
	"cmp"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// URLEncode escapes s for use in a query string. Spaces become "+".
func URLEncode(s string) string {
	return url.QueryEscape(s)
}

// URLDecode reverses URLEncode. Malformed input is returned unchanged.
func URLDecode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// HTMLEncode escapes the characters <, >, &, ' and " in s.
func HTMLEncode(s string) string {
	return html.EscapeString(s)
}

// HTMLDecode replaces named and numeric character references in s.
func HTMLDecode(s string) string {
	return html.UnescapeString(s)
}

// StripHTML removes markup from s and decodes entities in the remaining text.
// Tags whose names appear in keep (case-insensitive) are written back
// verbatim, both opening and closing. Comments and doctypes are dropped.
func StripHTML(s string, keep ...string) string {
	if s == "" {
		return ""
	}

	kept := make(map[string]struct{}, len(keep))
	for _, tag := range keep {
		kept[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	var b strings.Builder
	b.Grow(len(s))

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if _, ok := kept[string(name)]; ok {
				b.Write(z.Raw())
			}
		}
	}
}

// HighlightKeywords wraps every case-insensitive occurrence of the keywords
// in input with <span class="className">. Keywords are matched literally and
// longer keywords take precedence over their prefixes.
func HighlightKeywords(input, className string, keywords ...string) string {
	if strings.TrimSpace(input) == "" {
		return input
	}

	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(kw))
	}
	if len(quoted) == 0 {
		return input
	}

	slices.SortStableFunc(quoted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	re := regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
	return re.ReplaceAllStringFunc(input, func(match string) string {
		return fmt.Sprintf(`<span class="%s">%s</span>`, html.EscapeString(className), match)
	})
}
