package wiring_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledforge/ledgrid/wiring"
)

// TestCache_MemoizesPerSpec verifies repeated Gets share one permutation and
// distinct specs get distinct entries.
func TestCache_MemoizesPerSpec(t *testing.T) {
	c := wiring.NewCache()
	spec := wiring.Spec{Width: 16, Height: 16, Mode: wiring.Serpentine, Corner: wiring.TopLeft}

	a, err := c.Get(spec)
	require.NoError(t, err)
	b, err := c.Get(spec)
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Equal(t, 1, c.Len())

	flipped := spec
	flipped.FlipX = true
	d, err := c.Get(flipped)
	require.NoError(t, err)
	require.NotSame(t, a, d)
	require.Equal(t, 2, c.Len())
}

// TestCache_ErrorsNotCached verifies a failing spec leaves the cache clean.
func TestCache_ErrorsNotCached(t *testing.T) {
	c := wiring.NewCache()
	_, err := c.Get(wiring.Spec{Width: 0, Height: 4})
	require.ErrorIs(t, err, wiring.ErrBadGrid)
	require.Equal(t, 0, c.Len())
}

// TestCache_Purge verifies Purge resets the cache.
func TestCache_Purge(t *testing.T) {
	c := wiring.NewCache()
	_, err := c.Get(wiring.Spec{Width: 4, Height: 4, Mode: wiring.RowMajor, Corner: wiring.TopLeft})
	require.NoError(t, err)
	c.Purge()
	require.Equal(t, 0, c.Len())
}

// TestCache_ConcurrentGet hammers one spec from many goroutines; every
// caller must observe the same instance.
func TestCache_ConcurrentGet(t *testing.T) {
	c := wiring.NewCache()
	spec := wiring.Spec{Width: 32, Height: 32, Mode: wiring.ColumnSerpentine, Corner: wiring.BottomRight}

	var mu sync.Mutex
	seen := make(map[*wiring.Permutation]struct{})
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := c.Get(spec)
			if err != nil {
				t.Errorf("Get error: %v", err)

				return
			}
			mu.Lock()
			seen[p] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	require.Len(t, seen, 1, "concurrent callers must share one permutation")
	require.Equal(t, 1, c.Len())
}
