package atlaspack

import "log/slog"

// managerConfig holds AtlasManager construction options.
type managerConfig struct {
	logger           *slog.Logger
	consistencyCheck bool
}

func defaultManagerConfig() managerConfig {
	return managerConfig{
		logger:           Logger(),
		consistencyCheck: false,
	}
}

// Option configures an AtlasManager at construction time.
type Option func(*managerConfig)

// WithLogger attaches a logger to a single AtlasManager, overriding the
// package-wide logger set via SetLogger for that instance only.
func WithLogger(l *slog.Logger) Option {
	return func(c *managerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConsistencyChecks enables running the debug consistency checker
// after every Allocate and Free call. It is O(n) in the number of tree
// nodes per call and is intended for tests, not production use.
func WithConsistencyChecks(enabled bool) Option {
	return func(c *managerConfig) {
		c.consistencyCheck = enabled
	}
}
