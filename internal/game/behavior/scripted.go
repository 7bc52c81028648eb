package behavior

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/session"
)

// Scripted lets a Lua hook decide whether the monster pursues this turn.
//
// The hook is called as hook(name, turns_alerted, distance, health_fraction),
// where turns_alerted is 0 for an unaware monster and distance is the
// Manhattan distance to the player. A false return makes the monster hold
// still this turn, though an alerted monster's alert still advances. Any other
// result, a missing hook, or a script error hands the turn to Fallback.
type Scripted struct {
	Hook     string
	Caller   ScriptCaller
	Fallback Behavior
	Logger   *zap.Logger
}

// Act implements Behavior.
func (b *Scripted) Act(s *session.Session, m *actor.Actor, cmd Commander) bool {
	turns, _ := m.Alert.Turns()
	d := position(m).Sub(position(s.Player))
	ret, err := b.Caller.CallHook(b.Hook,
		lua.LString(m.Name),
		lua.LNumber(turns),
		lua.LNumber(abs(d.X)+abs(d.Y)),
		lua.LNumber(m.HealthFraction()),
	)
	if err != nil {
		b.Logger.Warn("behavior hook failed; using fallback",
			zap.String("hook", b.Hook),
			zap.String("monster", m.ID),
			zap.Error(err),
		)
		return b.Fallback.Act(s, m, cmd)
	}
	if ret == lua.LFalse {
		if m.Alert.IsAlerted() {
			m.Alert = m.Alert.Advance(s.AlertDecay)
		}
		return true
	}
	return b.Fallback.Act(s, m, cmd)
}
