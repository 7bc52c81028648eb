package behavior_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/behavior"
	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/session"
	"github.com/cory-johannsen/crawl/internal/scripting"
)

const cowardScript = `
function coward(name, turns, distance, health)
	if health <= 0.5 and distance > 1 then
		return false
	end
	return true
end
`

func luaRegistry(t *testing.T) *behavior.Registry {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coward.lua"), []byte(cowardScript), 0644))
	mgr := scripting.NewManager(dice.NewLoggedRoller(dice.NewSeededSource(1), zap.NewNop()), zap.NewNop())
	require.NoError(t, mgr.Load(dir, 0))
	t.Cleanup(mgr.Close)
	return behavior.NewRegistry(mgr, zap.NewNop())
}

func TestScripted_LuaHookDrivesMonster(t *testing.T) {
	reg := luaRegistry(t)
	b, err := reg.For("scripted:coward")
	require.NoError(t, err)

	t.Run("wounded monster hangs back", func(t *testing.T) {
		mon := monster(5, 5, 5)
		mon.Health = 2
		s := newSession(openRoom(11, 11), player(5, 8), mon)
		cmd := &gridCommander{s: s}

		b.Act(s, mon, cmd)

		assert.Empty(t, cmd.moves)
		assert.False(t, mon.Alert.IsAlerted())
	})

	t.Run("healthy monster pursues", func(t *testing.T) {
		mon := monster(5, 5, 5)
		s := newSession(openRoom(11, 11), player(5, 8), mon)
		cmd := &gridCommander{s: s}

		b.Act(s, mon, cmd)

		assert.Equal(t, actor.Alerted(1), mon.Alert)
		assert.Len(t, cmd.moves, 1)
	})
}

func TestScripted_HeldTurnsStillDecayAlert(t *testing.T) {
	reg := luaRegistry(t)
	b, err := reg.For("scripted:coward")
	require.NoError(t, err)

	mon := monster(5, 5, 5)
	mon.Health = 2
	mon.Alert = actor.Alerted(session.DefaultAlertDecay)
	s := newSession(openRoom(11, 11), player(5, 8), mon)
	cmd := &gridCommander{s: s}

	b.Act(s, mon, cmd)

	assert.Empty(t, cmd.moves)
	assert.Equal(t, actor.Unaware(), mon.Alert)
}

func TestScripted_MissingLuaHookFallsBack(t *testing.T) {
	reg := luaRegistry(t)
	b, err := reg.For("scripted:berserk")
	require.NoError(t, err)

	mon := monster(5, 5, 5)
	s := newSession(openRoom(11, 11), player(5, 8), mon)
	cmd := &gridCommander{s: s}

	b.Act(s, mon, cmd)

	assert.Len(t, cmd.moves, 1)
}
