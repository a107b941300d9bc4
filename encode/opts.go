package encode

type EncodeOption func(*encState)

// EncodeColors colorizes human output for terminals. Colored output is
// for display only.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.color = c.Color }
}

// EncodeAlign controls padding of table columns. It defaults to true.
func EncodeAlign(v bool) EncodeOption {
	return func(es *encState) { es.align = v }
}
