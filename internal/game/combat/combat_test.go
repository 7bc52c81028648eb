package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/dice"
)

// fixedSource returns the same value for every Intn call, clamped to n-1.
type fixedSource struct{ val int }

func (f fixedSource) Intn(n int) int {
	if f.val >= n {
		return n - 1
	}
	return f.val
}

func fighter(name, attack string, defense, health int) *actor.Actor {
	return &actor.Actor{ID: name, Name: name, Attack: attack, Defense: defense, Health: health, MaxHealth: health}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "hit", combat.Hit.String())
	assert.Equal(t, "blocked", combat.Blocked.String())
	assert.Equal(t, "killed", combat.Killed.String())
	assert.Equal(t, "unknown", combat.Outcome(99).String())
}

func TestResolve_Hit(t *testing.T) {
	roller := dice.NewLoggedRoller(fixedSource{val: 3}, zap.NewNop())
	att := fighter("Rat", "1d6+1", 0, 5)
	def := fighter("Rogue", "1d4", 2, 20)

	res, err := combat.Resolve(att, def, roller)
	require.NoError(t, err)
	// 1d6 with Intn=3 rolls 4; +1 = 5; minus defense 2 = 3.
	assert.Equal(t, 3, res.Damage)
	assert.Equal(t, combat.Hit, res.Outcome)
	assert.Equal(t, 17, def.Health)
	assert.Equal(t, "Rat hits Rogue for 3 damage", res.Message())
}

func TestResolve_Blocked(t *testing.T) {
	roller := dice.NewLoggedRoller(fixedSource{val: 0}, zap.NewNop())
	att := fighter("Rat", "1d2", 0, 5)
	def := fighter("Knight", "1d4", 10, 20)

	res, err := combat.Resolve(att, def, roller)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Damage)
	assert.Equal(t, combat.Blocked, res.Outcome)
	assert.Equal(t, 20, def.Health)
	assert.Equal(t, "Rat attacks Knight but does no damage", res.Message())
}

func TestResolve_Killed(t *testing.T) {
	roller := dice.NewLoggedRoller(fixedSource{val: 5}, zap.NewNop())
	att := fighter("Rogue", "1d6", 0, 20)
	def := fighter("Rat", "1d2", 0, 3)

	res, err := combat.Resolve(att, def, roller)
	require.NoError(t, err)
	assert.Equal(t, combat.Killed, res.Outcome)
	assert.True(t, def.IsDead())
	assert.Equal(t, 0, def.Health)
}

func TestResolve_BadAttackExpression(t *testing.T) {
	roller := dice.NewLoggedRoller(fixedSource{}, zap.NewNop())
	_, err := combat.Resolve(fighter("Odd", "lots", 0, 1), fighter("Rat", "1d2", 0, 3), roller)
	assert.ErrorContains(t, err, "Odd")
}

func TestResolve_PanicsOnDeadParticipant(t *testing.T) {
	roller := dice.NewLoggedRoller(fixedSource{}, zap.NewNop())
	assert.Panics(t, func() {
		_, _ = combat.Resolve(fighter("A", "1d2", 0, 1), fighter("B", "1d2", 0, 0), roller)
	})
	assert.Panics(t, func() {
		_, _ = combat.Resolve(nil, fighter("B", "1d2", 0, 1), roller)
	})
}

func TestResolve_DamageProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		val := rapid.IntRange(0, 11).Draw(rt, "val")
		defense := rapid.IntRange(0, 15).Draw(rt, "defense")
		health := rapid.IntRange(1, 30).Draw(rt, "health")
		roller := dice.NewLoggedRoller(fixedSource{val: val}, zap.NewNop())
		def := fighter("B", "1d2", defense, health)

		res, err := combat.Resolve(fighter("A", "2d6", 0, 1), def, roller)
		require.NoError(rt, err)
		assert.GreaterOrEqual(rt, res.Damage, 0)
		assert.Equal(rt, max(0, res.Roll.Total()-defense), res.Damage)
		assert.Equal(rt, max(0, health-res.Damage), def.Health)
	})
}
