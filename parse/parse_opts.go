package parse

type parseOpts struct {
	indentStep int
}

type Option func(*parseOpts)

// IndentStep overrides the indent width (default 2, the engine's own).
func IndentStep(n int) Option {
	return func(o *parseOpts) { o.indentStep = n }
}
