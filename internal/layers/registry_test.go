package layers

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	for _, typ := range []string{TypeInput, TypeNoOp, TypeFullyConnected, TypeDropout} {
		_, ok := r.Get(typ)
		assert.True(t, ok, "expected %s to be registered", typ)
	}
	assert.Equal(t, []string{TypeDropout, TypeFullyConnected, TypeInput, TypeNoOp}, r.SupportedTypes())
}

func TestNewEmptyRegistry(t *testing.T) {
	r := NewEmptyRegistry()
	assert.Empty(t, r.SupportedTypes())
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := NewRegistry()

	f, err := r.Resolve("UnknownLayer")
	assert.Nil(t, f)
	require.ErrorIs(t, err, ErrUnknownLayerType)

	var unknown *UnknownLayerTypeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "UnknownLayer", unknown.Type)
	assert.Equal(t, `unknown layer type: "UnknownLayer"`, err.Error())
}

func TestRegistry_RegisterCustom(t *testing.T) {
	r := NewRegistry()
	r.Register("MyLayer", FactoryFunc(func(cfg Config) (Layer, error) {
		return &NoOp{base{name: cfg.Name, typ: "MyLayer", inSize: cfg.InSize, outSize: 7}}, nil
	}))

	f, err := r.Resolve("MyLayer")
	require.NoError(t, err)

	l, err := f.New(Config{Name: "x", InSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, l.OutSize())
	assert.Equal(t, "MyLayer", l.Type())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register("Custom", FactoryFunc(newNoOp))
		}()
		go func() {
			defer wg.Done()
			_, err := r.Resolve(TypeInput)
			assert.NoError(t, err, "iteration %d", i)
		}()
	}
	wg.Wait()

	_, ok := r.Get("Custom")
	assert.True(t, ok)
}
