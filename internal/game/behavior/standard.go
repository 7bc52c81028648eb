package behavior

import (
	"errors"
	"fmt"

	"codeberg.org/anaseto/gruid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/session"
)

// StandardMoveAndAttack is the default monster behavior.
//
// An unaware monster looks for the player within its awareness radius and
// becomes alerted on sight. An alerted monster steps along the shortest path
// toward the player every turn, whether or not it still sees the player, and
// forgets the player once it has been alerted for more than s.AlertDecay turns.
// The turn on which the monster spots the player counts as its first alerted turn.
type StandardMoveAndAttack struct{}

// Act implements Behavior.
//
// Postcondition: the walkability grid is unchanged except for a step applied by cmd.
func (StandardMoveAndAttack) Act(s *session.Session, m *actor.Actor, cmd Commander) bool {
	p := s.Player
	wasAlerted := m.Alert.IsAlerted()
	if !wasAlerted {
		s.FOV.Compute(m.X, m.Y, m.Awareness, true)
		if !s.FOV.IsInFov(p.X, p.Y) {
			return true
		}
		s.Log.Add(fmt.Sprintf("%s is eager to fight %s", m.Name, p.Name))
		s.Logger.Debug("monster alerted", zap.String("monster", m.ID), zap.String("name", m.Name))
		m.Alert = actor.Alerted(1)
	}

	path, err := pathBetween(s, position(m), position(p))
	switch {
	case errors.Is(err, dungeon.ErrNoPath):
		s.Log.Add(fmt.Sprintf("%s waits for a turn", m.Name))
		s.Logger.Debug("path not found", zap.String("monster", m.ID))
	case err != nil:
		panic(fmt.Sprintf("behavior.StandardMoveAndAttack: path query: %v", err))
	default:
		if step, ok := firstStep(path, position(m)); ok {
			if err := cmd.MoveMonster(m, step); errors.Is(err, dungeon.ErrNoMoreSteps) {
				s.Log.Add(fmt.Sprintf("%s growls in frustration", m.Name))
				s.Logger.Debug("step rejected", zap.String("monster", m.ID), zap.Int("x", step.X), zap.Int("y", step.Y))
			} else if err != nil {
				panic(fmt.Sprintf("behavior.StandardMoveAndAttack: move: %v", err))
			}
		}
	}

	if wasAlerted {
		m.Alert = m.Alert.Advance(s.AlertDecay)
	}
	return true
}

// pathBetween queries a path with both endpoints marked walkable, restoring
// them before it returns.
func pathBetween(s *session.Session, from, to gruid.Point) ([]gruid.Point, error) {
	restore := s.Map.MarkWalkable(from, to)
	defer restore()
	return s.Paths.ShortestPath(from, to)
}

// firstStep returns the first cell of path, skipping from when the path
// begins there and continues.
func firstStep(path []gruid.Point, from gruid.Point) (gruid.Point, bool) {
	if len(path) == 0 {
		return gruid.Point{}, false
	}
	if path[0] == from && len(path) > 1 {
		return path[1], true
	}
	return path[0], true
}
