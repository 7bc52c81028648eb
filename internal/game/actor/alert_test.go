package actor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/internal/game/actor"
)

func TestAlert_ZeroValueIsUnaware(t *testing.T) {
	var a actor.Alert
	n, ok := a.Turns()
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.Equal(t, actor.Unaware(), a)
	assert.Equal(t, "unaware", a.String())
}

func TestAlerted_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { actor.Alerted(0) })
	assert.Panics(t, func() { actor.Alerted(-3) })
}

func TestAlert_Advance_PanicsWhenUnaware(t *testing.T) {
	assert.Panics(t, func() { actor.Unaware().Advance(15) })
}

func TestAlert_Advance_DecaysAfterFifteen(t *testing.T) {
	a := actor.Alerted(15).Advance(15)
	assert.False(t, a.IsAlerted())
}

func TestAlert_String_Alerted(t *testing.T) {
	assert.Equal(t, "alerted(3)", actor.Alerted(3).String())
}

// TestProperty_Alert_AdvanceIncrementsOrDecays verifies that advancing an
// alerted count k either yields k+1 (k+1 <= decay) or unaware (k+1 > decay).
func TestProperty_Alert_AdvanceIncrementsOrDecays(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		decay := rapid.IntRange(1, 50).Draw(rt, "decay")
		k := rapid.IntRange(1, decay).Draw(rt, "k")
		next := actor.Alerted(k).Advance(decay)
		n, ok := next.Turns()
		if k+1 > decay {
			assert.False(rt, ok)
			return
		}
		assert.True(rt, ok)
		assert.Equal(rt, k+1, n)
	})
}

// TestProperty_Alert_NeverNegative verifies repeated advancing never yields a
// negative count and returns to unaware within decay turns.
func TestProperty_Alert_NeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		decay := rapid.IntRange(1, 30).Draw(rt, "decay")
		a := actor.Alerted(1)
		for i := 0; i < decay; i++ {
			n, ok := a.Turns()
			assert.GreaterOrEqual(rt, n, 0)
			if !ok {
				return
			}
			a = a.Advance(decay)
		}
		assert.False(rt, a.IsAlerted())
	})
}
