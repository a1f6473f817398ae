package layers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput(t *testing.T) {
	l, err := newInput(Config{Name: "InputLayer", Size: intPtr(10)})
	require.NoError(t, err)
	assert.Equal(t, 10, l.OutSize())
	assert.Equal(t, 0, l.InSize())
	assert.Equal(t, TypeInput, l.Type())
	assert.Equal(t, "InputLayer", l.Name())
}

func TestInput_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no size", Config{Name: "InputLayer"}},
		{"zero size", Config{Name: "InputLayer", Size: intPtr(0)}},
		{"has inputs", Config{Name: "InputLayer", Size: intPtr(3), InSize: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newInput(tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNoOp(t *testing.T) {
	l, err := newNoOp(Config{Name: "merge", InSize: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, l.OutSize())

	_, err = newNoOp(Config{Name: "merge", InSize: 12, Size: intPtr(12)})
	assert.NoError(t, err)

	_, err = newNoOp(Config{Name: "merge", InSize: 12, Size: intPtr(5)})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = newNoOp(Config{Name: "merge"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFullyConnected(t *testing.T) {
	l, err := newFullyConnected(Config{
		Name:   "H",
		Size:   intPtr(5),
		InSize: 10,
		Kwargs: map[string]any{"activation_function": "relu"},
	})
	require.NoError(t, err)

	fc, ok := l.(*FullyConnected)
	require.True(t, ok)
	assert.Equal(t, 5, fc.OutSize())
	assert.Equal(t, 10, fc.InSize())
	assert.Equal(t, "relu", fc.Activation())
	assert.Equal(t, map[string][]int{"W": {10, 5}, "b": {5}}, fc.ParameterShapes())
}

func TestFullyConnected_DefaultActivation(t *testing.T) {
	l, err := newFullyConnected(Config{Name: "H", Size: intPtr(5), InSize: 10})
	require.NoError(t, err)
	assert.Equal(t, DefaultActivation, l.(*FullyConnected).Activation())
}

func TestFullyConnected_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no size", Config{Name: "H", InSize: 3}},
		{"negative size", Config{Name: "H", Size: intPtr(-1), InSize: 3}},
		{"no inputs", Config{Name: "H", Size: intPtr(2)}},
		{"unknown activation", Config{Name: "H", Size: intPtr(2), InSize: 3, Kwargs: map[string]any{"activation_function": "swish"}}},
		{"activation not a string", Config{Name: "H", Size: intPtr(2), InSize: 3, Kwargs: map[string]any{"activation_function": 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newFullyConnected(tt.cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), `layer "H"`)
		})
	}
}

func TestDropout(t *testing.T) {
	l, err := newDropout(Config{Name: "D", InSize: 8, Kwargs: map[string]any{"drop_prob": 0.25}})
	require.NoError(t, err)
	assert.Equal(t, 8, l.OutSize())
	assert.InDelta(t, 0.25, l.(*Dropout).DropProb(), 1e-12)

	l, err = newDropout(Config{Name: "D", InSize: 8})
	require.NoError(t, err)
	assert.InDelta(t, DefaultDropProb, l.(*Dropout).DropProb(), 1e-12)

	_, err = newDropout(Config{Name: "D", InSize: 8, Kwargs: map[string]any{"drop_prob": 1.0}})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = newDropout(Config{Name: "D", InSize: 8, Kwargs: map[string]any{"drop_prob": "half"}})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestKwargHelpers(t *testing.T) {
	kw := map[string]any{
		"s":     "x",
		"i":     int64(4),
		"f":     2.0,
		"frac":  2.5,
		"nil":   nil,
		"wrong": true,
	}

	s, ok := KwargString(kw, "s", "d")
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	s, ok = KwargString(kw, "missing", "d")
	assert.True(t, ok)
	assert.Equal(t, "d", s)
	_, ok = KwargString(kw, "wrong", "d")
	assert.False(t, ok)

	i, ok := KwargInt(kw, "i", 0)
	assert.True(t, ok)
	assert.Equal(t, 4, i)
	i, ok = KwargInt(kw, "f", 0)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = KwargInt(kw, "frac", 0)
	assert.False(t, ok)
	i, ok = KwargInt(kw, "nil", 9)
	assert.True(t, ok)
	assert.Equal(t, 9, i)

	f, ok := KwargFloat(kw, "i", 0)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, f, 1e-12)
	_, ok = KwargFloat(kw, "wrong", 0)
	assert.False(t, ok)
}

func TestKwargIntRange(t *testing.T) {
	kw := map[string]any{
		"huge":     1e300,
		"negHuge":  -1e19,
		"twoTo63":  9223372036854775808.0,
		"bigUint":  uint64(math.MaxUint64),
		"okUint":   uint64(7),
		"okInt64":  int64(-3),
		"minFloat": float64(math.MinInt64),
	}

	for _, name := range []string{"huge", "negHuge", "twoTo63", "bigUint"} {
		_, ok := KwargInt(kw, name, 0)
		assert.False(t, ok, name)
	}

	i, ok := KwargInt(kw, "okUint", 0)
	assert.True(t, ok)
	assert.Equal(t, 7, i)
	i, ok = KwargInt(kw, "okInt64", 0)
	assert.True(t, ok)
	assert.Equal(t, -3, i)
	i, ok = KwargInt(kw, "minFloat", 0)
	assert.True(t, ok)
	assert.Equal(t, math.MinInt64, i)
}
