package command

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/behavior"
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/session"
)

// Orchestrator is the only mutator of actor positions. It applies player
// input, runs monster turns in scheduler order, and resolves the attacks a
// move into an occupied cell triggers.
//
// Invariant: while IsPlayerTurn is true the player has no scheduler entry;
// EndPlayerTurn restores it.
type Orchestrator struct {
	s            *session.Session
	behaviors    *behavior.Registry
	logger       *zap.Logger
	isPlayerTurn bool
}

// NewOrchestrator returns an Orchestrator for s. Control starts with the monsters.
//
// Precondition: s and behaviors must be non-nil.
func NewOrchestrator(s *session.Session, behaviors *behavior.Registry) *Orchestrator {
	if s == nil {
		panic("command.NewOrchestrator: session must not be nil")
	}
	if behaviors == nil {
		panic("command.NewOrchestrator: behaviors must not be nil")
	}
	return &Orchestrator{s: s, behaviors: behaviors, logger: s.Logger}
}

// Session returns the game context this Orchestrator drives.
func (o *Orchestrator) Session() *session.Session { return o.s }

// IsPlayerTurn reports whether control is waiting on player input.
func (o *Orchestrator) IsPlayerTurn() bool { return o.isPlayerTurn }

// MovePlayer steps the player one cell in dir. Stepping into a monster
// attacks it instead.
//
// Postcondition: Returns true iff the player's turn was consumed. Returns
// false without effect outside the player's turn. Moving refreshes the
// player's field of view.
func (o *Orchestrator) MovePlayer(dir Direction) bool {
	if !o.isPlayerTurn || o.s.GameOver {
		return false
	}
	p := o.s.Player
	to := gruid.Point{X: p.X, Y: p.Y}.Add(dir.Delta())
	if dir == None || !o.s.Map.InBounds(to.X, to.Y) {
		return false
	}
	if mon := o.s.Map.MonsterAt(to.X, to.Y); mon != nil {
		o.attack(p, mon)
		return true
	}
	return o.s.Map.SetActorPosition(p, to.X, to.Y)
}

// DescendStairs takes the player down when standing on the staircase.
//
// Postcondition: Returns true iff the level changed, which consumes the turn;
// the caller ends the turn with EndPlayerTurn as after a move. Outside the
// player's turn it returns false and does nothing.
func (o *Orchestrator) DescendStairs() (bool, error) {
	if !o.isPlayerTurn || o.s.GameOver {
		return false, nil
	}
	ok, err := o.s.Descend()
	if ok {
		o.s.Scheduler.Remove(o.s.Player)
	}
	return ok, err
}

// EndPlayerTurn reschedules the player and hands control to the monsters.
func (o *Orchestrator) EndPlayerTurn() {
	o.s.Scheduler.Schedule(o.s.Player)
	o.isPlayerTurn = false
	o.logger.Debug("actor scheduled",
		zap.String("actor", o.s.Player.ID),
		zap.Int("now", o.s.Scheduler.Now()),
	)
}

// ActivateMonsters runs monster turns in scheduler order until the player is
// next to act or the game ends. It does nothing during the player's turn.
//
// Precondition: the scheduler must not run empty; the player is always
// scheduled outside its own turn.
func (o *Orchestrator) ActivateMonsters() {
	for !o.isPlayerTurn && !o.s.GameOver {
		a := o.s.Scheduler.Next()
		if a.IsPlayer() {
			o.isPlayerTurn = true
			return
		}
		b, err := o.behaviors.For(a.Behavior)
		if err != nil {
			panic(fmt.Sprintf("command.Orchestrator.ActivateMonsters: %s: %v", a.Name, err))
		}
		b.Act(o.s, a, o)
		if a.IsDead() {
			continue
		}
		o.s.Scheduler.Schedule(a)
		o.logger.Debug("actor scheduled",
			zap.String("actor", a.ID),
			zap.String("alert", a.Alert.String()),
			zap.Int("now", o.s.Scheduler.Now()),
		)
	}
}

// MoveMonster moves m one cardinal step to to, or attacks the player standing
// there.
//
// Postcondition: Returns dungeon.ErrNoMoreSteps and changes nothing if to is not
// adjacent to m or cannot be entered.
func (o *Orchestrator) MoveMonster(m *actor.Actor, to gruid.Point) error {
	d := to.Sub(gruid.Point{X: m.X, Y: m.Y})
	if d.X*d.X+d.Y*d.Y != 1 {
		return dungeon.ErrNoMoreSteps
	}
	p := o.s.Player
	if to.X == p.X && to.Y == p.Y {
		o.attack(m, p)
		return nil
	}
	if !o.s.Map.SetActorPosition(m, to.X, to.Y) {
		return dungeon.ErrNoMoreSteps
	}
	return nil
}

func (o *Orchestrator) attack(attacker, defender *actor.Actor) {
	res, err := combat.Resolve(attacker, defender, o.s.Roller)
	if err != nil {
		panic(fmt.Sprintf("command.Orchestrator: %v", err))
	}
	o.s.Log.Add(res.Message())
	if res.Outcome == combat.Killed {
		o.resolveDeath(defender)
	}
}

func (o *Orchestrator) resolveDeath(defender *actor.Actor) {
	if defender.IsPlayer() {
		o.s.Log.Add(fmt.Sprintf("  %s was killed, GAME OVER MAN!", defender.Name))
		o.s.GameOver = true
		o.logger.Info("player died", zap.Int("depth", o.s.Depth), zap.Int("gold", defender.Gold))
		return
	}
	o.s.Map.RemoveMonster(defender)
	o.s.Scheduler.Remove(defender)
	o.s.Player.Gold += defender.Gold
	o.s.Log.Add(fmt.Sprintf("  %s died and dropped %d gold", defender.Name, defender.Gold))
	o.logger.Debug("monster died", zap.String("monster", defender.ID), zap.Int("gold", defender.Gold))
}
