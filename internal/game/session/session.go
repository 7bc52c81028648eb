// Package session holds the explicit per-game context threaded through the
// scheduler, orchestrator and behaviors: the current map, the player, the
// message log, the scheduler and the random source.
package session

import (
	"errors"
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/msglog"
	"github.com/cory-johannsen/crawl/internal/game/schedule"
)

// DefaultAlertDecay is the number of alerted turns after which a monster
// forgets the player.
const DefaultAlertDecay = 15

// ErrNoDeeperLevel is returned by Descend on the last level.
var ErrNoDeeperLevel = errors.New("session: no deeper level")

// FieldOfView computes and answers visibility queries.
type FieldOfView interface {
	Compute(x, y, radius int, lightWalls bool)
	IsInFov(x, y int) bool
}

// PathFinder answers shortest-path queries over the current walkability grid.
type PathFinder interface {
	ShortestPath(from, to gruid.Point) ([]gruid.Point, error)
}

// Options configures New.
type Options struct {
	// Player configures the player actor.
	Player actor.PlayerStats
	// AlertDecay is the alert decay threshold; zero means DefaultAlertDecay.
	AlertDecay int
	// Seed is reported in the arrival message.
	Seed int64
	// Random is the session's random source.
	Random dice.Source
	// Logger receives operator-facing events.
	Logger *zap.Logger
}

// Session is the state of one game.
type Session struct {
	// ID uniquely identifies this session.
	ID string
	// Depth is the 1-based index of the current level.
	Depth int
	// Map is the current level's grid.
	Map *dungeon.Map
	// Player is the player actor; it survives level changes.
	Player *actor.Actor
	// Log is the player-facing message log for the current level.
	Log *msglog.Log
	// Scheduler orders the actors on the current level.
	Scheduler *schedule.Scheduler
	// Random is the session's random source.
	Random dice.Source
	// Roller rolls attack dice from Random.
	Roller *dice.Roller
	// Logger receives operator-facing events.
	Logger *zap.Logger
	// AlertDecay is the alerted-turn count above which a monster becomes unaware.
	AlertDecay int
	// GameOver is set when the player dies.
	GameOver bool
	// FOV is the monster field-of-view provider for the current map.
	FOV FieldOfView
	// Paths is the path provider for the current map.
	Paths PathFinder

	levels    []*dungeon.Level
	templates actor.Templates
	seed      int64
}

// New creates a session on the first of levels, placing the player at its
// start and spawning every monster the level names.
//
// Precondition: levels must be non-empty; opts.Random and opts.Logger must be non-nil.
// Postcondition: Returns a Session with every actor scheduled, or an error if a
// spawn names an unknown template.
func New(levels []*dungeon.Level, templates actor.Templates, opts Options) (*Session, error) {
	if len(levels) == 0 {
		panic("session.New: levels must not be empty")
	}
	if opts.Random == nil || opts.Logger == nil {
		panic("session.New: random and logger must not be nil")
	}
	decay := opts.AlertDecay
	if decay == 0 {
		decay = DefaultAlertDecay
	}
	s := &Session{
		ID:         uuid.NewString(),
		Player:     actor.NewPlayer(opts.Player),
		Scheduler:  schedule.New(),
		Random:     opts.Random,
		Roller:     dice.NewLoggedRoller(opts.Random, opts.Logger),
		AlertDecay: decay,
		levels:     levels,
		templates:  templates,
		seed:       opts.Seed,
	}
	s.Logger = opts.Logger.With(zap.String("session", s.ID))
	if err := s.enter(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Level returns the blueprint of the current level.
func (s *Session) Level() *dungeon.Level { return s.levels[s.Depth-1] }

// Descend moves the player to the next level when standing on the down
// staircase. The map, message log and scheduler are replaced; the player keeps
// health and gold.
//
// Postcondition: Returns false with no change if the player is not on the stairs;
// returns ErrNoDeeperLevel on the last level.
func (s *Session) Descend() (bool, error) {
	if !s.Map.CanMoveDownToNextLevel() {
		return false, nil
	}
	if s.Depth >= len(s.levels) {
		return false, ErrNoDeeperLevel
	}
	if err := s.enter(s.Depth); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) enter(idx int) error {
	lvl := s.levels[idx]
	m := lvl.Build()

	monsters := make([]*actor.Actor, 0, len(lvl.Spawns))
	for _, sp := range lvl.Spawns {
		tmpl, ok := s.templates[sp.TemplateID]
		if !ok {
			return fmt.Errorf("level %q: unknown monster template %q", lvl.Name, sp.TemplateID)
		}
		monsters = append(monsters, actor.NewMonster(tmpl, sp.At.X, sp.At.Y))
	}

	s.Scheduler.Clear()
	for _, mon := range monsters {
		m.AddMonster(mon)
		s.Scheduler.Schedule(mon)
	}
	s.Player.X, s.Player.Y = lvl.PlayerStart.X, lvl.PlayerStart.Y
	m.AddPlayer(s.Player)
	s.Scheduler.Schedule(s.Player)

	s.Depth = idx + 1
	s.Map = m
	s.FOV = dungeon.NewFieldOfView(m)
	s.Paths = dungeon.NewPathFinder(m)
	s.Log = msglog.New(s.Logger)
	s.Log.Add(fmt.Sprintf("%s arrives on level %d", s.Player.Name, s.Depth))
	if idx == 0 {
		s.Log.Add(fmt.Sprintf("Level created with seed '%d'", s.seed))
	}
	s.Logger.Info("level entered",
		zap.Int("depth", s.Depth),
		zap.String("level", lvl.Name),
		zap.Int("monsters", len(monsters)),
	)
	return nil
}
