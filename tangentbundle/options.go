package tangentbundle

import "github.com/tensorward/manifold"

type config struct {
	tol    manifold.Tolerance
	checks bool
	logger *manifold.Logger
}

func defaultConfig() config {
	return config{
		tol:    manifold.DefaultTolerance,
		logger: manifold.NoopLogger(),
	}
}

// Option configures a Bundle.
type Option func(*config)

// WithTolerance sets the tolerance used by the adapter's debug checks.
func WithTolerance(tol manifold.Tolerance) Option {
	return func(c *config) { c.tol = tol }
}

// WithChecks toggles attachment checks on binary operations. Off by
// default; with checks off, behavior on mismatched operands is undefined.
func WithChecks(on bool) Option {
	return func(c *config) { c.checks = on }
}

// WithLogger sets the logger used to report failed debug checks.
func WithLogger(l *manifold.Logger) Option {
	return func(c *config) { c.logger = l }
}
