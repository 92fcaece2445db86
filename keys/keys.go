// Package keys names keyboard keys and key sequences.
package keys

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrBadKey = errors.New("bad key")

// Key is the canonical name of a key: a single character ("q", "Q"), a
// named key ("esc", "up") or a control chord ("ctrl+c").
type Key string

const (
	Esc       Key = "esc"
	Enter     Key = "enter"
	Tab       Key = "tab"
	Space     Key = "space"
	Backspace Key = "backspace"
	Delete    Key = "delete"
	Up        Key = "up"
	Down      Key = "down"
	Left      Key = "left"
	Right     Key = "right"
	Home      Key = "home"
	End       Key = "end"
	PageUp    Key = "pgup"
	PageDown  Key = "pgdown"
)

var named = map[string]Key{
	"esc":       Esc,
	"escape":    Esc,
	"enter":     Enter,
	"return":    Enter,
	"tab":       Tab,
	"space":     Space,
	"backspace": Backspace,
	"bs":        Backspace,
	"delete":    Delete,
	"del":       Delete,
	"up":        Up,
	"down":      Down,
	"left":      Left,
	"right":     Right,
	"home":      Home,
	"end":       End,
	"pgup":      PageUp,
	"pgdown":    PageDown,
}

// Ctrl returns the control chord for r.
func Ctrl(r rune) Key {
	return Key("ctrl+" + strings.ToLower(string(r)))
}

// Rune returns the key for a printable character.
func Rune(r rune) Key {
	if r == ' ' {
		return Space
	}
	return Key(string(r))
}

// Parse returns the canonical key for a key name.
func Parse(name string) (Key, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Rune(r), nil
	}
	lower := strings.ToLower(name)
	if k, ok := named[lower]; ok {
		return k, nil
	}
	if rest, ok := strings.CutPrefix(lower, "ctrl+"); ok && utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return Ctrl(r), nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadKey, name)
}

// ParseSeq parses a space separated key sequence such as "g g".
func ParseSeq(seq string) ([]Key, error) {
	fields := strings.Fields(seq)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrBadKey)
	}
	res := make([]Key, len(fields))
	for i, f := range fields {
		k, err := Parse(f)
		if err != nil {
			return nil, err
		}
		res[i] = k
	}
	return res, nil
}

// SeqString is the inverse of ParseSeq.
func SeqString(seq []Key) string {
	parts := make([]string, len(seq))
	for i, k := range seq {
		parts[i] = string(k)
	}
	return strings.Join(parts, " ")
}
