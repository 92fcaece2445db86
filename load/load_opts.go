package load

type loadOpts struct {
	name      string
	maxDepth  int
	maxStones int
}

type Option func(*loadOpts)

// Name sets the document name used in error messages.
func Name(n string) Option {
	return func(o *loadOpts) { o.name = n }
}

// MaxDepth bounds the nesting depth of a document, counting alias
// expansion. The default is 256.
func MaxDepth(d int) Option {
	return func(o *loadOpts) { o.maxDepth = d }
}

// MaxStones bounds the number of stones a document may load into,
// counting every copy made by alias expansion. The default is 1<<20.
func MaxStones(n int) Option {
	return func(o *loadOpts) { o.maxStones = n }
}
