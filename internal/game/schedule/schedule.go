// Package schedule orders actors by the time at which they may next act.
package schedule

import (
	"container/heap"
	"fmt"

	"github.com/cory-johannsen/crawl/internal/game/actor"
)

type entry struct {
	a     *actor.Actor
	time  int
	seq   uint64
	index int
}

type queue []*entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Scheduler is a priority queue of actors keyed by eligibility time.
// Ties are broken by the order in which entries were added, so Next is
// deterministic for a fixed sequence of calls.
//
// Invariant: an actor has at most one entry.
type Scheduler struct {
	q       queue
	entries map[*actor.Actor]*entry
	now     int
	seq     uint64
}

// New returns an empty Scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{entries: make(map[*actor.Actor]*entry)}
}

// Add makes a eligible cost time units after the current time. An actor that
// is already scheduled is moved to the new time and queued behind any entries
// already waiting at that time.
//
// Precondition: a must be non-nil; cost must be >= 0.
func (s *Scheduler) Add(a *actor.Actor, cost int) {
	if a == nil {
		panic("schedule.Scheduler.Add: actor must not be nil")
	}
	if cost < 0 {
		panic(fmt.Sprintf("schedule.Scheduler.Add: cost must be >= 0, got %d", cost))
	}
	s.seq++
	if e, ok := s.entries[a]; ok {
		e.time = s.now + cost
		e.seq = s.seq
		heap.Fix(&s.q, e.index)
		return
	}
	e := &entry{a: a, time: s.now + cost, seq: s.seq}
	s.entries[a] = e
	heap.Push(&s.q, e)
}

// Schedule adds a with its own speed as the cost.
func (s *Scheduler) Schedule(a *actor.Actor) {
	s.Add(a, a.Speed)
}

// Next removes and returns the earliest actor and advances the clock to its time.
//
// Precondition: the scheduler must not be empty.
func (s *Scheduler) Next() *actor.Actor {
	if s.q.Len() == 0 {
		panic("schedule.Scheduler.Next: scheduler is empty")
	}
	e := heap.Pop(&s.q).(*entry)
	delete(s.entries, e.a)
	s.now = e.time
	return e.a
}

// Peek returns the earliest actor without removing it, or nil when empty.
func (s *Scheduler) Peek() *actor.Actor {
	if s.q.Len() == 0 {
		return nil
	}
	return s.q[0].a
}

// Remove evicts a.
//
// Postcondition: Returns false if a was not scheduled.
func (s *Scheduler) Remove(a *actor.Actor) bool {
	e, ok := s.entries[a]
	if !ok {
		return false
	}
	heap.Remove(&s.q, e.index)
	delete(s.entries, a)
	return true
}

// Clear evicts every entry and resets the clock.
func (s *Scheduler) Clear() {
	s.q = nil
	s.entries = make(map[*actor.Actor]*entry)
	s.now = 0
}

// Len returns the number of scheduled actors.
func (s *Scheduler) Len() int { return s.q.Len() }

// Contains reports whether a is scheduled.
func (s *Scheduler) Contains(a *actor.Actor) bool {
	_, ok := s.entries[a]
	return ok
}

// Now returns the time of the most recently returned actor.
func (s *Scheduler) Now() int { return s.now }
