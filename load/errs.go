package load

import "errors"

var ErrLoad = errors.New("load error")
