// Package combat resolves a single melee exchange between two actors.
package combat

import (
	"fmt"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/dice"
)

// Outcome classifies an attack.
type Outcome int

const (
	// Hit dealt at least one point of damage without killing.
	Hit Outcome = iota
	// Blocked dealt no damage.
	Blocked
	// Killed reduced the target to zero health.
	Killed
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Blocked:
		return "blocked"
	case Killed:
		return "killed"
	default:
		return "unknown"
	}
}

// AttackResult holds the outcome of a single attack.
type AttackResult struct {
	// Attacker and Target are the participants.
	Attacker, Target *actor.Actor
	// Roll is the attacker's damage roll.
	Roll dice.RollResult
	// Damage is the health removed from Target.
	Damage int
	// Outcome classifies the attack.
	Outcome Outcome
}

// Message returns the log line describing the attack.
func (r AttackResult) Message() string {
	if r.Damage == 0 {
		return fmt.Sprintf("%s attacks %s but does no damage", r.Attacker.Name, r.Target.Name)
	}
	return fmt.Sprintf("%s hits %s for %d damage", r.Attacker.Name, r.Target.Name, r.Damage)
}
