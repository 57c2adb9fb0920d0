package cache_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/cache"
)

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	// touch a so b becomes the oldest
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("c", 3)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok)
	v, ok = c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLRU_PutUpdatesExisting(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("a", 10)
	assert.Equal(t, 1, c.Len())

	v, _ := c.Get("a")
	assert.Equal(t, 10, v)
}

func TestLRU_GetOrCreate(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, []byte](4)
	calls := 0
	gen := func() ([]byte, error) {
		calls++
		return []byte("png"), nil
	}

	v, err := c.GetOrCreate("k", gen)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), v)

	v, err = c.GetOrCreate("k", gen)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), v)
	assert.Equal(t, 1, calls)

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)

	boom := errors.New("boom")
	_, err = c.GetOrCreate("bad", func() ([]byte, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_RemoveAndClear(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[int, string](3)
	c.Put(1, "a")
	c.Put(2, "b")

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get(2)
	assert.False(t, ok)
}

func TestLRU_InvalidCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.NewLRU[string, int](0) })
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](16)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (i+j)%32)
				c.Put(key, j)
				c.Get(key)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
