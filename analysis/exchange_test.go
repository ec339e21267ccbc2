package analysis

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRoundTrip(t *testing.T) {
	e := NewExchange(8)

	e.Write([]float64{1, 2, 3})
	dst := make([]float64, 8)
	n := e.Read(dst)

	require.Equal(t, 3, n)
	assert.Equal(t, []float64{1, 2, 3}, dst[:n])
}

func TestExchangeEmptyReadsZero(t *testing.T) {
	e := NewExchange(8)
	dst := make([]float64, 8)
	assert.Zero(t, e.Read(dst))
}

func TestExchangeTruncatesToCapacity(t *testing.T) {
	e := NewExchange(4)

	long := []float64{1, 2, 3, 4, 5, 6}
	e.Write(long)

	dst := make([]float64, 8)
	n := e.Read(dst)
	require.Equal(t, 4, n)
	assert.Equal(t, []float64{1, 2, 3, 4}, dst[:n])
}

func TestExchangeOverwritesPrevious(t *testing.T) {
	e := NewExchange(4)

	e.Write([]float64{1, 2, 3, 4})
	e.Write([]float64{9, 8})

	dst := make([]float64, 4)
	n := e.Read(dst)
	require.Equal(t, 2, n)
	assert.Equal(t, []float64{9, 8}, dst[:n])
}

func TestExchangeConcurrentWriterReader(t *testing.T) {
	e := NewExchange(64)
	window := make([]float64, 64)
	for i := range window {
		window[i] = float64(i)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			e.Write(window)
		}
	}()
	go func() {
		defer wg.Done()
		dst := make([]float64, 64)
		for i := 0; i < 1000; i++ {
			n := e.Read(dst)
			// Reads observe either nothing or one complete window, never a
			// torn copy.
			if n > 0 {
				assert.Equal(t, 64, n)
				assert.Equal(t, 0.0, dst[0])
				assert.Equal(t, 63.0, dst[63])
			}
		}
	}()
	wg.Wait()
}
