package encoder

import "go.uber.org/zap"

// Option configures an Encoder.
type Option func(*Encoder)

// WithMaxDepth bounds how deeply values may nest below the top-level
// value. Zero, the default, means unlimited: a self-referential value then
// recurses until the stack is exhausted.
func WithMaxDepth(n int) Option {
	return func(e *Encoder) {
		if n < 0 {
			n = 0
		}
		e.maxDepth = n
	}
}

// WithLogger overrides the package logger for one encoder.
func WithLogger(l *zap.Logger) Option {
	return func(e *Encoder) {
		if l != nil {
			e.logger = l
		}
	}
}
