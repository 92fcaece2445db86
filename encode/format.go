package encode

import (
	"errors"
	"fmt"
)

type Format int

const (
	XMLFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	switch f {
	case XMLFormat:
		return "xml"
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	default:
		return fmt.Sprintf("<err: %d is not a format>", int(f))
	}
}
