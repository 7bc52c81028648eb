// Package actor provides the player and monster entities moved by the turn engine.
package actor

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind distinguishes the player from monsters.
type Kind int

const (
	KindPlayer Kind = iota
	KindMonster
)

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Actor is a player or monster on the grid.
//
// Position, Health and Alert are mutated only by the turn engine; presentation
// layers read them through the accessor methods once per render pass.
type Actor struct {
	// ID uniquely identifies this actor for its lifetime.
	ID string
	// Kind is KindPlayer or KindMonster.
	Kind Kind
	// TemplateID is the monster template this actor was spawned from; empty for the player.
	TemplateID string
	// Name is the display name used in log messages.
	Name string
	// Symbol is the glyph drawn on the map.
	Symbol rune
	// Color is a presentation hint, e.g. "green".
	Color string
	// Awareness is the field-of-view radius the actor perceives within.
	Awareness int
	// Speed is the scheduler time cost of one turn; lower acts more often.
	Speed int
	// Attack is the dice expression rolled when this actor attacks.
	Attack string
	// Defense is subtracted from incoming damage.
	Defense int
	// Health is the current health.
	Health int
	// MaxHealth is the maximum health.
	MaxHealth int
	// Gold is carried gold, transferred to the player on a monster's death.
	Gold int
	// Behavior names the behavior strategy kind; monsters only.
	Behavior string
	// X and Y are the actor's grid coordinates.
	X, Y int
	// Alert is the monster's alertness; always Unaware for the player.
	Alert Alert
}

// PlayerStats configures NewPlayer.
type PlayerStats struct {
	Name      string
	Awareness int
	Speed     int
	Attack    string
	Defense   int
	Health    int
}

// NewPlayer creates the player actor.
//
// Precondition: stats.Name must be non-empty; Speed and Health must be >= 1.
// Postcondition: Health == MaxHealth == stats.Health; Symbol is '@'.
func NewPlayer(stats PlayerStats) *Actor {
	if stats.Name == "" {
		panic("actor.NewPlayer: name must not be empty")
	}
	if stats.Speed < 1 || stats.Health < 1 {
		panic(fmt.Sprintf("actor.NewPlayer: speed and health must be >= 1, got %d/%d", stats.Speed, stats.Health))
	}
	return &Actor{
		ID:        uuid.NewString(),
		Kind:      KindPlayer,
		Name:      stats.Name,
		Symbol:    '@',
		Color:     "white",
		Awareness: stats.Awareness,
		Speed:     stats.Speed,
		Attack:    stats.Attack,
		Defense:   stats.Defense,
		Health:    stats.Health,
		MaxHealth: stats.Health,
	}
}

// NewMonster creates a monster from tmpl at (x, y).
//
// Precondition: tmpl must be non-nil and valid.
// Postcondition: Health equals tmpl.MaxHealth; Alert is Unaware.
func NewMonster(tmpl *Template, x, y int) *Actor {
	return &Actor{
		ID:         uuid.NewString(),
		Kind:       KindMonster,
		TemplateID: tmpl.ID,
		Name:       tmpl.Name,
		Symbol:     []rune(tmpl.Symbol)[0],
		Color:      tmpl.Color,
		Awareness:  tmpl.Awareness,
		Speed:      tmpl.Speed,
		Attack:     tmpl.Attack,
		Defense:    tmpl.Defense,
		Health:     tmpl.MaxHealth,
		MaxHealth:  tmpl.MaxHealth,
		Gold:       tmpl.Gold,
		Behavior:   tmpl.BehaviorKind(),
		X:          x,
		Y:          y,
	}
}

// IsPlayer reports whether a is the player.
func (a *Actor) IsPlayer() bool { return a.Kind == KindPlayer }

// IsDead reports whether a has no health left.
func (a *Actor) IsDead() bool { return a.Health <= 0 }

// Position returns the actor's grid coordinates.
func (a *Actor) Position() (x, y int) { return a.X, a.Y }

// ApplyDamage reduces Health by amount, flooring at zero.
//
// Precondition: amount >= 0.
// Postcondition: Health >= 0.
func (a *Actor) ApplyDamage(amount int) {
	a.Health -= amount
	if a.Health < 0 {
		a.Health = 0
	}
}

// HealthFraction returns Health/MaxHealth in [0, 1]; 0 when MaxHealth is 0.
func (a *Actor) HealthFraction() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return float64(a.Health) / float64(a.MaxHealth)
}

// String returns the display name.
func (a *Actor) String() string { return a.Name }
