package suffixtree

import "go.uber.org/zap"

// WithLogger injects a logger used for debug-level tracing of string
// insertion, skipped seed strings, and queries run without terminal-edge
// tracking. The default is a no-op logger, so logging costs
// nothing unless a caller opts in.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.log = logger
		}
	}
}
