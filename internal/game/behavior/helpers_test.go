package behavior_test

import (
	"codeberg.org/anaseto/gruid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/msglog"
	"github.com/cory-johannsen/crawl/internal/game/schedule"
	"github.com/cory-johannsen/crawl/internal/game/session"
)

// openRoom returns a w x h map whose border is wall and interior is floor.
func openRoom(w, h int) *dungeon.Map {
	m := dungeon.NewMap(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.SetCellProperties(x, y, true, true)
		}
	}
	return m
}

// newSession places the player and monster on m and returns a session around them.
func newSession(m *dungeon.Map, player, mon *actor.Actor) *session.Session {
	m.AddPlayer(player)
	if mon != nil {
		m.AddMonster(mon)
	}
	return &session.Session{
		Map:        m,
		Player:     player,
		Log:        msglog.New(zap.NewNop()),
		Scheduler:  schedule.New(),
		Logger:     zap.NewNop(),
		AlertDecay: session.DefaultAlertDecay,
		FOV:        dungeon.NewFieldOfView(m),
		Paths:      dungeon.NewPathFinder(m),
	}
}

func player(x, y int) *actor.Actor {
	p := actor.NewPlayer(actor.PlayerStats{Name: "Rogue", Awareness: 8, Speed: 10, Attack: "1d4", Health: 30})
	p.X, p.Y = x, y
	return p
}

func monster(x, y, awareness int) *actor.Actor {
	return actor.NewMonster(&actor.Template{
		ID: "goblin", Name: "Goblin", Symbol: "g", Awareness: awareness, Speed: 10, Attack: "1d3", MaxHealth: 6,
	}, x, y)
}

// gridCommander applies steps directly to the map, counting attacks on the player.
type gridCommander struct {
	s       *session.Session
	moves   []gruid.Point
	attacks int
	reject  bool
}

func (c *gridCommander) MoveMonster(m *actor.Actor, to gruid.Point) error {
	if c.reject {
		return dungeon.ErrNoMoreSteps
	}
	if to.X == c.s.Player.X && to.Y == c.s.Player.Y {
		c.attacks++
		return nil
	}
	if !c.s.Map.SetActorPosition(m, to.X, to.Y) {
		return dungeon.ErrNoMoreSteps
	}
	c.moves = append(c.moves, to)
	return nil
}

func countMessages(msgs []string, want string) int {
	n := 0
	for _, m := range msgs {
		if m == want {
			n++
		}
	}
	return n
}
