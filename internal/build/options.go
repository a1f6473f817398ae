package build

import "log/slog"

// Options configures instantiation.
type Options struct {
	// Logger receives debug records for each constructed layer.
	// Nil discards logs.
	Logger *slog.Logger

	// Workers bounds concurrent layer construction. Values <= 1 build
	// sequentially.
	Workers int

	// Strict runs the explicit cycle and connectivity diagnostic before
	// ordering.
	Strict bool
}

// DefaultOptions returns sequential, non-strict options without logging.
func DefaultOptions() Options {
	return Options{
		Logger:  nil,
		Workers: 1,
		Strict:  false,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
