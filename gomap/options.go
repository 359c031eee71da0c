package gomap

// Option controls reflection mapping in FromValue and ToValue.
type Option func(*config)

type config struct {
	tag      string
	omitNull bool
	ctx      any
}

func newConfig(opts []Option) *config {
	cfg := &config{tag: "json"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFieldTag names the struct tag holding member names. The default is
// "json".
func WithFieldTag(name string) Option {
	return func(c *config) { c.tag = name }
}

// OmitNull drops object members whose value maps to null.
func OmitNull(v bool) Option {
	return func(c *config) { c.omitNull = v }
}

// WithContext passes ctx to every Decoder and Encoder reached.
func WithContext(ctx any) Option {
	return func(c *config) { c.ctx = ctx }
}
