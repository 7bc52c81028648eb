package behavior

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/session"
)

// Stationary never moves. It attacks the player when the player stands on a
// cardinally adjacent cell.
type Stationary struct{}

// Act implements Behavior.
func (Stationary) Act(s *session.Session, m *actor.Actor, cmd Commander) bool {
	pp := position(s.Player)
	if !adjacent(position(m), pp) {
		return true
	}
	if err := cmd.MoveMonster(m, pp); errors.Is(err, dungeon.ErrNoMoreSteps) {
		s.Log.Add(fmt.Sprintf("%s growls in frustration", m.Name))
		s.Logger.Debug("step rejected", zap.String("monster", m.ID), zap.Int("x", pp.X), zap.Int("y", pp.Y))
	} else if err != nil {
		panic(fmt.Sprintf("behavior.Stationary: attack: %v", err))
	}
	return true
}
