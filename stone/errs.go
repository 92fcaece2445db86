package stone

import "errors"

var (
	ErrStaleRef = errors.New("stale stone reference")
	ErrBadTag   = errors.New("malformed tag")
)
