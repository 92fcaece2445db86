package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/construct/encode"
	"github.com/signadot/construct/stone"
)

// Logf writes a formatted message to stderr. Trees are rendered with
// encode, maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *stone.Tree:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf, encode.Indices(true)); err != nil {
				args[i] = fmt.Sprintf("[raw *stone.Tree] %v", x)
				continue
			}
			args[i] = buf.String()
		case stone.Set:
			args[i] = fmt.Sprintf("%v", x.Sorted())
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
