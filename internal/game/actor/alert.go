package actor

import "fmt"

// Alert is a monster's alertness: either unaware, or alerted for a number of
// consecutive turns. The zero value is unaware.
//
// Invariant: an alerted value always counts at least one turn.
type Alert struct {
	turns int
}

// Unaware returns the unaware state.
func Unaware() Alert { return Alert{} }

// Alerted returns the alerted state counting turns.
//
// Precondition: turns >= 1.
func Alerted(turns int) Alert {
	if turns < 1 {
		panic(fmt.Sprintf("actor.Alerted: turns must be >= 1, got %d", turns))
	}
	return Alert{turns: turns}
}

// Turns returns the alerted turn count and true, or 0 and false when unaware.
func (a Alert) Turns() (int, bool) {
	return a.turns, a.turns > 0
}

// IsAlerted reports whether the state is alerted.
func (a Alert) IsAlerted() bool { return a.turns > 0 }

// Advance counts one more alerted turn. Once the count exceeds decay the
// monster forgets its target and the result is Unaware.
//
// Precondition: a is alerted; decay >= 1.
func (a Alert) Advance(decay int) Alert {
	if a.turns < 1 {
		panic("actor.Alert.Advance: monster is not alerted")
	}
	next := a.turns + 1
	if next > decay {
		return Unaware()
	}
	return Alert{turns: next}
}

// String renders "unaware" or "alerted(n)".
func (a Alert) String() string {
	if n, ok := a.Turns(); ok {
		return fmt.Sprintf("alerted(%d)", n)
	}
	return "unaware"
}
