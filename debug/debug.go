package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Load   bool
	Mason  bool
	Import bool
	Frame  bool
	Keys   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("CONSTRUCT_DEBUG_LOAD")
	d.Mason = boolEnv("CONSTRUCT_DEBUG_MASON")
	d.Import = boolEnv("CONSTRUCT_DEBUG_IMPORT")
	d.Frame = boolEnv("CONSTRUCT_DEBUG_FRAME")
	d.Keys = boolEnv("CONSTRUCT_DEBUG_KEYS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Mason() bool {
	return d.Mason
}
func Import() bool {
	return d.Import
}
func Frame() bool {
	return d.Frame
}
func Keys() bool {
	return d.Keys
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
