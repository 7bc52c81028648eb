package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestManager_Add(t *testing.T) {
	m := NewManager()
	s := &Session{ID: "a"}
	require.NoError(t, m.Add(s))

	got, ok := m.Get("a")
	assert.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Count())
}

func TestManager_AddDuplicate(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Add(&Session{ID: "a"}))
	err := m.Add(&Session{ID: "a"})
	assert.ErrorContains(t, err, "already registered")
}

func TestManager_AddNilPanics(t *testing.T) {
	assert.Panics(t, func() { _ = NewManager().Add(nil) })
}

func TestManager_Remove(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Add(&Session{ID: "a"}))
	require.NoError(t, m.Remove("a"))
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Error(t, m.Remove("a"))
}

func TestManager_ConcurrentAddRemove(t *testing.T) {
	m := NewManager()
	const n = 50
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, m.Add(&Session{ID: fmt.Sprintf("s%d", i)}))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, n, m.Count())

	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, m.Remove(fmt.Sprintf("s%d", i)))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, m.Count())
}

func TestPropertyCountMatchesDistinctIDs(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ids := rapid.SliceOf(rapid.StringMatching(`[a-e]`)).Draw(rt, "ids")
		m := NewManager()
		seen := map[string]bool{}
		for _, id := range ids {
			err := m.Add(&Session{ID: id})
			if seen[id] {
				assert.Error(rt, err)
			} else {
				assert.NoError(rt, err)
			}
			seen[id] = true
		}
		assert.Equal(rt, len(seen), m.Count())
	})
}
