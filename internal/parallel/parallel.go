// Package parallel provides bounded fan-out helpers for independent work items.
package parallel

import "golang.org/x/sync/errgroup"

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of concurrent goroutines.
}

// WithWorkers returns a config using exactly n workers. n <= 1 disables
// parallelism.
func WithWorkers(n int) Config {
	return Config{
		Enabled:    n > 1,
		NumWorkers: max(n, 1),
	}
}

// ForEach calls f(i) for i in [0, n) and returns every call's error, indexed
// like the inputs. All items run even if some fail.
// Falls back to sequential execution if parallelism is disabled or n < 2.
func ForEach(n int, f func(i int) error, cfg Config) []error {
	errs := make([]error, n)
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2 {
		for i := range n {
			errs[i] = f(i)
		}
		return errs
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for i := range n {
		g.Go(func() error {
			errs[i] = f(i)
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

// FirstError returns the non-nil error with the lowest index.
func FirstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
