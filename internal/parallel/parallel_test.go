package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEach(t *testing.T) {
	cfg := WithWorkers(4)

	var counter int64
	n := 1000

	errs := ForEach(n, func(_ int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	}, cfg)

	assert.Equal(t, int64(n), counter)
	assert.Len(t, errs, n)
	assert.NoError(t, FirstError(errs))
}

func TestForEach_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	ForEach(5, func(i int) error {
		order = append(order, i)
		return nil
	}, cfg)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestForEach_ErrorsIndexed(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	errs := ForEach(6, func(i int) error {
		switch i {
		case 2:
			// Finish later than index 4 so timing cannot decide the result.
			time.Sleep(10 * time.Millisecond)
			return errA
		case 4:
			return errB
		}
		return nil
	}, WithWorkers(3))

	require.Len(t, errs, 6)
	assert.ErrorIs(t, errs[2], errA)
	assert.ErrorIs(t, errs[4], errB)
	assert.ErrorIs(t, FirstError(errs), errA)
}

func TestForEach_RespectsLimit(t *testing.T) {
	var running, peak int64

	ForEach(32, func(_ int) error {
		cur := atomic.AddInt64(&running, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt64(&running, -1)
		return nil
	}, WithWorkers(2))

	assert.LessOrEqual(t, peak, int64(2))
}

func TestWithWorkers(t *testing.T) {
	assert.False(t, WithWorkers(0).Enabled)
	assert.Equal(t, 1, WithWorkers(0).NumWorkers)
	assert.False(t, WithWorkers(1).Enabled)
	assert.True(t, WithWorkers(8).Enabled)
}

func TestFirstError_Empty(t *testing.T) {
	assert.NoError(t, FirstError(nil))
}
