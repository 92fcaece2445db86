package encode

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indices includes each stone's index in the XML form.
func Indices(v bool) EncodeOption {
	return func(es *EncState) { es.indices = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
