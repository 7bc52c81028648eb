// Package behavior implements the monster decision strategies. A Behavior is
// selected by the kind string on the monster's template, so new archetypes are
// added by registering a Behavior rather than changing the orchestrator.
package behavior

import (
	"codeberg.org/anaseto/gruid"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/session"
)

// Commander applies a monster's movement intent.
type Commander interface {
	// MoveMonster moves m one step to to, or attacks the player standing there.
	// Returns dungeon.ErrNoMoreSteps if the step is not a legal move.
	MoveMonster(m *actor.Actor, to gruid.Point) error
}

// Behavior decides and performs one turn for a monster.
type Behavior interface {
	// Act runs m's turn. It reports whether the monster took its turn.
	//
	// Precondition: s, m and cmd must be non-nil; m must be alive and on s.Map.
	Act(s *session.Session, m *actor.Actor, cmd Commander) bool
}

// Func adapts a function to Behavior.
type Func func(s *session.Session, m *actor.Actor, cmd Commander) bool

// Act calls f.
func (f Func) Act(s *session.Session, m *actor.Actor, cmd Commander) bool {
	return f(s, m, cmd)
}

func position(a *actor.Actor) gruid.Point {
	return gruid.Point{X: a.X, Y: a.Y}
}

func adjacent(p, q gruid.Point) bool {
	d := p.Sub(q)
	return abs(d.X)+abs(d.Y) == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
