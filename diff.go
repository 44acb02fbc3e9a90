package wdf

// Option configures Diff.
type Option func(*diffConfig)

type diffConfig struct {
	costs Costs
}

// WithCosts selects the scoring policy. The default is IndentSensitive.
func WithCosts(c Costs) Option {
	return func(cfg *diffConfig) {
		cfg.costs = c
	}
}

// Diff compares the left (old) and right (new) documents and returns the
// right document annotated with changed, inserted and deletion marks. Both
// documents are taken as complete in-memory text; reading files and decoding
// bytes into text is the caller's concern. Diff is stateless between calls.
func Diff(left, right string, opts ...Option) Annotated {
	cfg := diffConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	rt := Tokenize(right)
	res := Align(Tokenize(left), rt, cfg.costs)
	return Annotate(rt, res)
}
