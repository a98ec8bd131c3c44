package errorz

import "errors"

var (
	Unreadable   = errors.New("generated code does not decode to its content")
	InvalidColor = errors.New("invalid color")
)
