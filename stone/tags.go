package stone

import (
	"fmt"
	"strings"
)

// TagArgs splits the head of a tag from its arguments and the rest of the
// tag. For `!a(1,2).b` it returns "!a", ["1", "2"] and "!b".
func TagArgs(tag string) (head string, args []string, rest string) {
	var (
		n        = len(tag)
		depth    int
		open     int
		argStart int
	)
	for i := 0; i < n; i++ {
		switch tag[i] {
		case '.':
			if depth != 0 {
				continue
			}
			if open != 0 {
				head = tag[:open]
			} else {
				head = tag[:i]
			}
			return head, args, "!" + tag[i+1:]
		case '(':
			if depth == 0 {
				open = i
				argStart = i + 1
			}
			depth++
		case ')':
			depth--
			if depth != 0 {
				continue
			}
			if i != argStart && argStart != 0 {
				args = append(args, tag[argStart:i])
			}
			argStart = 0
		case ',':
			if depth != 1 {
				continue
			}
			if argStart != 0 {
				args = append(args, tag[argStart:i])
			}
			argStart = i + 1
		}
	}
	if open != 0 {
		head = tag[:open]
	} else {
		head = tag
	}
	return head, args, ""
}

// TagName returns the head name of tag without '!' and arguments.
func TagName(tag string) string {
	if tag == "" {
		return ""
	}
	head, _, _ := TagArgs(tag)
	return strings.TrimPrefix(head, "!")
}

// CheckTag reports an error wrapping ErrBadTag if tag has unbalanced
// parentheses or empty components.
func CheckTag(tag string) error {
	if tag == "" {
		return nil
	}
	if tag[0] != '!' {
		return fmt.Errorf("%w: %q does not start with '!'", ErrBadTag, tag)
	}
	depth := 0
	for i := 0; i < len(tag); i++ {
		switch tag[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: %q has mismatched parentheses", ErrBadTag, tag)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %q has mismatched parentheses", ErrBadTag, tag)
	}
	for tag != "" {
		head, _, rest := TagArgs(tag)
		if head == "!" || head == "" {
			return fmt.Errorf("%w: empty component", ErrBadTag)
		}
		tag = rest
	}
	return nil
}
