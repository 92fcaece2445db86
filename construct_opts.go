package construct

import "github.com/signadot/construct/mason"

type buildOpts struct {
	name  string
	path  string
	dir   string
	files mason.FileGetter
	patch []byte
}

type Option func(*buildOpts)

// Name sets the name used in error messages.
func Name(n string) Option {
	return func(o *buildOpts) { o.name = n }
}

// Dir sets the directory relative imports are read from.
func Dir(d string) Option {
	return func(o *buildOpts) { o.dir = d }
}

// Files sets how imported files are read.
func Files(f mason.FileGetter) Option {
	return func(o *buildOpts) { o.files = f }
}

// Patch applies a JSON patch to the settings after processing.
func Patch(p []byte) Option {
	return func(o *buildOpts) { o.patch = p }
}
