package frame

import "errors"

var ErrNotTerminal = errors.New("not a terminal")
