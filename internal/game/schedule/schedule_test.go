package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/schedule"
)

func newActor(name string, speed int) *actor.Actor {
	return &actor.Actor{ID: name, Kind: actor.KindMonster, Name: name, Speed: speed, Health: 1, MaxHealth: 1}
}

func TestScheduler_NextOrdersByTime(t *testing.T) {
	s := schedule.New()
	slow := newActor("slow", 20)
	fast := newActor("fast", 5)
	s.Schedule(slow)
	s.Schedule(fast)

	assert.Same(t, fast, s.Next())
	assert.Equal(t, 5, s.Now())
	assert.Same(t, slow, s.Next())
	assert.Equal(t, 20, s.Now())
}

func TestScheduler_TiesAreFIFO(t *testing.T) {
	s := schedule.New()
	a, b, c := newActor("a", 10), newActor("b", 10), newActor("c", 10)
	s.Schedule(a)
	s.Schedule(b)
	s.Schedule(c)

	assert.Same(t, a, s.Next())
	assert.Same(t, b, s.Next())
	assert.Same(t, c, s.Next())
}

func TestScheduler_TimeIsCumulative(t *testing.T) {
	s := schedule.New()
	fast := newActor("fast", 4)
	slow := newActor("slow", 10)
	s.Schedule(fast)
	s.Schedule(slow)

	var order []string
	for range 5 {
		a := s.Next()
		order = append(order, a.Name)
		s.Schedule(a)
	}
	// fast acts at 4, 8; slow at 10; fast at 12, 16.
	assert.Equal(t, []string{"fast", "fast", "slow", "fast", "fast"}, order)
}

func TestScheduler_AddUpdatesExistingEntry(t *testing.T) {
	s := schedule.New()
	a, b := newActor("a", 10), newActor("b", 10)
	s.Add(a, 1)
	s.Add(b, 5)
	s.Add(a, 9)

	assert.Equal(t, 2, s.Len())
	assert.Same(t, b, s.Next())
	assert.Same(t, a, s.Next())
}

func TestScheduler_Remove(t *testing.T) {
	s := schedule.New()
	a, b := newActor("a", 1), newActor("b", 2)
	s.Schedule(a)
	s.Schedule(b)

	assert.True(t, s.Remove(a))
	assert.False(t, s.Contains(a))
	assert.False(t, s.Remove(a))
	assert.Same(t, b, s.Next())
	assert.Equal(t, 0, s.Len())
}

func TestScheduler_PeekAndClear(t *testing.T) {
	s := schedule.New()
	assert.Nil(t, s.Peek())
	a := newActor("a", 3)
	s.Schedule(a)
	assert.Same(t, a, s.Peek())
	assert.Equal(t, 1, s.Len())

	s.Next()
	s.Schedule(a)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Now())
	assert.False(t, s.Contains(a))
}

func TestScheduler_NextPanicsWhenEmpty(t *testing.T) {
	assert.Panics(t, func() { schedule.New().Next() })
}

func TestScheduler_AddPreconditions(t *testing.T) {
	s := schedule.New()
	assert.Panics(t, func() { s.Add(nil, 1) })
	assert.Panics(t, func() { s.Add(newActor("a", 1), -1) })
}

func TestScheduler_OrderProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		costs := rapid.SliceOfN(rapid.IntRange(0, 30), 1, 25).Draw(rt, "costs")
		s := schedule.New()
		actors := make([]*actor.Actor, len(costs))
		for i, c := range costs {
			actors[i] = newActor("m", c)
			s.Add(actors[i], c)
		}

		prevTime, prevIdx := -1, -1
		for s.Len() > 0 {
			a := s.Next()
			idx := indexOf(actors, a)
			require.GreaterOrEqual(rt, idx, 0)
			if s.Now() < prevTime {
				rt.Fatalf("time went backwards: %d after %d", s.Now(), prevTime)
			}
			if s.Now() == prevTime && idx < prevIdx {
				rt.Fatalf("tie at %d not FIFO: %d after %d", s.Now(), idx, prevIdx)
			}
			prevTime, prevIdx = s.Now(), idx
		}
	})
}

func indexOf(actors []*actor.Actor, a *actor.Actor) int {
	for i, x := range actors {
		if x == a {
			return i
		}
	}
	return -1
}
