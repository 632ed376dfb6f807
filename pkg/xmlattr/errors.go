package xmlattr

import "errors"

var (
	ErrInvalidExpression = errors.New("invalid attribute expression")
	ErrUnknownPrefix     = errors.New("unknown namespace prefix")
	ErrNoRoot            = errors.New("xml document has no root element")
)
