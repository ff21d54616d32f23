package traverse

// config holds EdgeMapData's resolved call options.
type config struct {
	flags     Flags
	threshold int // -1 means "use graph.M() / 20", per GBBS convention
}

// Option configures a single EdgeMapData/EdgeMap/NghCount call.
type Option func(*config)

func resolve(opts []Option) config {
	cfg := config{flags: 0, threshold: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFlags sets the mode-selection and output bitmask.
func WithFlags(fl Flags) Option {
	return func(c *config) { c.flags = fl }
}

// WithThreshold overrides the dense-mode work threshold (default
// graph.M()/20): dense mode is chosen once the frontier's size plus
// its out-work exceeds it. A negative value selects the default.
func WithThreshold(t int) Option {
	return func(c *config) { c.threshold = t }
}
