package msglog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/crawl/internal/game/msglog"
)

func TestLog_AddPreservesOrder(t *testing.T) {
	l := msglog.New(zap.NewNop())
	l.Add("first")
	l.Add("second")
	l.Add("third")

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"first", "second", "third"}, l.Messages())
}

func TestLog_Recent(t *testing.T) {
	l := msglog.New(zap.NewNop())
	assert.Empty(t, l.Recent(3))
	for i := range 5 {
		l.Add(fmt.Sprintf("m%d", i))
	}
	assert.Equal(t, []string{"m3", "m4"}, l.Recent(2))
	assert.Len(t, l.Recent(10), 5)
	assert.Nil(t, l.Recent(0))
}

func TestLog_Since(t *testing.T) {
	l := msglog.New(zap.NewNop())
	l.Add("old")
	mark := l.Len()
	l.Add("new1")
	l.Add("new2")

	assert.Equal(t, []string{"new1", "new2"}, l.Since(mark))
	assert.Nil(t, l.Since(l.Len()))
	assert.Nil(t, l.Since(-1))
}

func TestLog_MessagesIsACopy(t *testing.T) {
	l := msglog.New(zap.NewNop())
	l.Add("a")
	msgs := l.Messages()
	msgs[0] = "mutated"
	assert.Equal(t, []string{"a"}, l.Messages())
}

func TestLog_MirrorsToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := msglog.New(zap.New(core))
	l.Add("Rat is eager to fight Rogue")

	entries := logs.FilterMessage("message").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Rat is eager to fight Rogue", entries[0].ContextMap()["text"])
}

func TestNew_PanicsOnNilLogger(t *testing.T) {
	assert.Panics(t, func() { msglog.New(nil) })
}

func TestLog_RecentIsSuffixProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		msgs := rapid.SliceOf(rapid.String()).Draw(rt, "msgs")
		n := rapid.IntRange(1, 20).Draw(rt, "n")
		l := msglog.New(zap.NewNop())
		for _, m := range msgs {
			l.Add(m)
		}
		got := l.Recent(n)
		want := msgs[max(0, len(msgs)-n):]
		if len(got) != len(want) {
			rt.Fatalf("len %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				rt.Fatalf("index %d: %q, want %q", i, got[i], want[i])
			}
		}
	})
}
