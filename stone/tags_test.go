package stone

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTagArgs(t *testing.T) {
	tests := []struct {
		tag, head, rest string
		args            []string
	}{
		{tag: "!color", head: "!color"},
		{tag: "!color(bg)", head: "!color", args: []string{"bg"}},
		{tag: "!a(1,2).b", head: "!a", args: []string{"1", "2"}, rest: "!b"},
		{tag: "!a(b(c).d(e,f(1))).b", head: "!a", args: []string{"b(c).d(e,f(1))"}, rest: "!b"},
	}
	for _, tc := range tests {
		head, args, rest := TagArgs(tc.tag)
		if head != tc.head || rest != tc.rest {
			t.Errorf("TagArgs(%q) = %q, %q; want %q, %q", tc.tag, head, rest, tc.head, tc.rest)
		}
		if diff := cmp.Diff(tc.args, args); diff != "" {
			t.Errorf("TagArgs(%q) args (-want +got):\n%s", tc.tag, diff)
		}
	}
}

func TestTagName(t *testing.T) {
	for tag, want := range map[string]string{
		"":            "",
		"!meta":       "meta",
		"!style(box)": "style",
		"!import.x":   "import",
	} {
		if got := TagName(tag); got != want {
			t.Errorf("TagName(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestCheckTag(t *testing.T) {
	for _, tag := range []string{"!a", "!a(b)", "!a(b(c)).d", ""} {
		if err := CheckTag(tag); err != nil {
			t.Errorf("CheckTag(%q): %v", tag, err)
		}
	}
	for _, tag := range []string{"a", "!a(b", "!a)b(", "!a.", "!"} {
		if err := CheckTag(tag); !errors.Is(err, ErrBadTag) {
			t.Errorf("CheckTag(%q) = %v, want ErrBadTag", tag, err)
		}
	}
}
