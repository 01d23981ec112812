package engine

import "github.com/kielezo-org/kielezo/theme"

// ============================================================================
// ENGINE OPTIONS — Functional options for New()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Theme *theme.Theme
}

// WithTheme overrides the built-in visual theme. The theme must already be
// validated (theme.Load validates; hand-built themes should call Validate).
func WithTheme(t *theme.Theme) Option {
	return func(c *config) {
		if t != nil {
			c.Theme = t
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Theme: theme.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
