package tsgorilla

import "github.com/gorillatsdb/tsgorilla/internal/options"

// Option configures EncodeOptions via the functional options pattern.
type Option = options.Option[*EncodeOptions]

// WithMetricsMode enables the preprocessing stage (counter delta-encoding
// and decimal scaling) before Gorilla compression.
func WithMetricsMode() Option {
	return options.NoError(func(o *EncodeOptions) { o.MetricsMode = true })
}

// WithCounter enables counter delta-encoding. Only meaningful together with
// WithMetricsMode.
func WithCounter() Option {
	return options.NoError(func(o *EncodeOptions) { o.IsCounter = true })
}

// WithScaleDecimals selects how decimal scaling picks its digit count. Only
// meaningful together with WithMetricsMode; defaults to ScaleAuto().
func WithScaleDecimals(mode ScaleMode) Option {
	return options.NoError(func(o *EncodeOptions) { o.ScaleDecimals = mode })
}

func newEncodeOptions(opts ...Option) (EncodeOptions, error) {
	o := EncodeOptions{ScaleDecimals: ScaleAuto()}
	if err := options.Apply(&o, opts...); err != nil {
		return EncodeOptions{}, err
	}

	return o, nil
}
