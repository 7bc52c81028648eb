package combat

import (
	"fmt"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/dice"
)

// Roller rolls dice expressions.
type Roller interface {
	RollExpr(expr string) (dice.RollResult, error)
}

// Resolve rolls attacker's attack dice, subtracts target's defense and applies
// the remainder to target.
//
// Precondition: attacker and target must be non-nil and alive; roller must be non-nil.
// Postcondition: Damage >= 0; target.Health is reduced by Damage, flooring at zero.
// Returns an error only if attacker's attack expression does not parse.
func Resolve(attacker, target *actor.Actor, roller Roller) (AttackResult, error) {
	if attacker == nil || target == nil {
		panic("combat.Resolve: attacker and target must not be nil")
	}
	if attacker.IsDead() || target.IsDead() {
		panic(fmt.Sprintf("combat.Resolve: %s and %s must both be alive", attacker.Name, target.Name))
	}
	roll, err := roller.RollExpr(attacker.Attack)
	if err != nil {
		return AttackResult{}, fmt.Errorf("rolling attack for %s: %w", attacker.Name, err)
	}
	dmg := max(0, roll.Total()-target.Defense)
	target.ApplyDamage(dmg)

	out := Hit
	switch {
	case target.IsDead():
		out = Killed
	case dmg == 0:
		out = Blocked
	}
	return AttackResult{Attacker: attacker, Target: target, Roll: roll, Damage: dmg, Outcome: out}, nil
}
