package encode

type EncodeOption func(*EncState)

// Indent overrides the indent step (default 2, the engine's own).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
