package strutil

import "regexp"

var (
	nonWordRe      = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	camelHumpRe    = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	alphanumericRe = regexp.MustCompile(`^[0-9a-zA-Z]+$`)
)
