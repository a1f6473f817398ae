package build

import (
	"errors"
	"log/slog"

	"github.com/born-ml/topology/internal/arch"
	"github.com/born-ml/topology/internal/layers"
	"github.com/born-ml/topology/internal/parallel"
)

// errNilLayer is reported when a factory returns neither a layer nor an error.
var errNilLayer = errors.New("factory returned a nil layer")

// Instantiate builds every layer of d.
//
// Example:
//
//	net, err := build.Instantiate(d, layers.NewRegistry())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(net.Output().OutSize())
func Instantiate(d arch.Description, r layers.Resolver, opts ...Options) (*Network, error) {
	opt := DefaultOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	x, err := arch.ExtendWithOptions(d, arch.ExtendOptions{Strict: opt.Strict})
	if err != nil {
		return nil, err
	}
	return InstantiateExtended(x, r, opt)
}

// InstantiateExtended builds every layer of an already extended description.
func InstantiateExtended(x *arch.Extended, r layers.Resolver, opt Options) (*Network, error) {
	logger := opt.logger()

	// Resolve all types first, so an unknown type fails before any
	// constructor runs.
	factories := make(map[string]layers.Factory, x.Len())
	for name, l := range x.All() {
		f, err := r.Resolve(l.Type)
		if err != nil {
			return nil, &LayerError{Layer: name, Type: l.Type, Err: err}
		}
		factories[name] = f
	}

	logger.Debug("Instantiating architecture.", "layers", x.Len(), "workers", max(opt.Workers, 1))

	var (
		built map[string]layers.Layer
		err   error
	)
	if opt.Workers > 1 {
		built, err = buildWaves(x, factories, parallel.WithWorkers(opt.Workers), logger)
	} else {
		built, err = buildSequential(x, factories, logger)
	}
	if err != nil {
		return nil, err
	}

	return &Network{
		order:    x.Names(),
		layers:   built,
		extended: x,
	}, nil
}

func buildSequential(x *arch.Extended, factories map[string]layers.Factory, logger *slog.Logger) (map[string]layers.Layer, error) {
	built := make(map[string]layers.Layer, x.Len())
	for name, l := range x.All() {
		layer, err := construct(l, factories[name], built, logger)
		if err != nil {
			return nil, err
		}
		built[name] = layer
	}
	return built, nil
}

// buildWaves constructs layers wave by wave. After a failure, layers that do
// not depend on a failed layer are still built, so the error finally
// reported is always the one of the earliest failing layer in canonical
// order, exactly as in sequential construction.
func buildWaves(x *arch.Extended, factories map[string]layers.Factory, cfg parallel.Config, logger *slog.Logger) (map[string]layers.Layer, error) {
	built := make(map[string]layers.Layer, x.Len())
	broken := make(map[string]bool)
	failures := make(map[string]error)

	for _, wave := range waves(x) {
		var todo []*arch.ExtendedLayer
		for _, l := range wave {
			if dependsOnAny(l, broken) {
				broken[l.Name] = true
				continue
			}
			todo = append(todo, l)
		}

		results := make([]layers.Layer, len(todo))
		errs := parallel.ForEach(len(todo), func(i int) error {
			layer, err := construct(todo[i], factories[todo[i].Name], built, logger)
			results[i] = layer
			return err
		}, cfg)

		for i, l := range todo {
			if errs[i] != nil {
				broken[l.Name] = true
				failures[l.Name] = errs[i]
				continue
			}
			built[l.Name] = results[i]
		}
	}

	names := x.Names()
	ordered := make([]error, len(names))
	for i, name := range names {
		ordered[i] = failures[name]
	}
	if err := parallel.FirstError(ordered); err != nil {
		return nil, err
	}
	return built, nil
}

// waves groups layers by dependency depth. Within a wave layers keep their
// canonical order.
func waves(x *arch.Extended) [][]*arch.ExtendedLayer {
	depth := make(map[string]int, x.Len())
	var out [][]*arch.ExtendedLayer
	for name, l := range x.All() {
		d := 0
		for _, src := range l.Sources {
			d = max(d, depth[src]+1)
		}
		depth[name] = d
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], l)
	}
	return out
}

func dependsOnAny(l *arch.ExtendedLayer, names map[string]bool) bool {
	for _, src := range l.Sources {
		if names[src] {
			return true
		}
	}
	return false
}

// construct builds one layer. All sources of l must already be in built.
func construct(l *arch.ExtendedLayer, f layers.Factory, built map[string]layers.Layer, logger *slog.Logger) (layers.Layer, error) {
	inSize := 0
	for _, src := range l.Sources {
		inSize += built[src].OutSize()
	}

	layer, err := f.New(layers.Config{
		Name:   l.Name,
		Size:   l.Size,
		InSize: inSize,
		Kwargs: arch.CloneConfig(l.Kwargs),
	})
	if err != nil {
		return nil, &LayerError{Layer: l.Name, Type: l.Type, Err: err}
	}
	if layer == nil {
		return nil, &LayerError{Layer: l.Name, Type: l.Type, Err: errNilLayer}
	}

	logger.Debug("Instantiated layer.", "name", l.Name, "type", l.Type, "in_size", inSize, "out_size", layer.OutSize())
	return layer, nil
}
