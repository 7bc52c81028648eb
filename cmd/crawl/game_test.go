package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/behavior"
	"github.com/cory-johannsen/crawl/internal/game/command"
	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/session"
)

const corridor = "#####\n#@.>#\n#####\n"

func newTestGame(t *testing.T, layouts []string, legend map[string]string, templates actor.Templates) (*game, *session.Session, *strings.Builder) {
	t.Helper()
	levels := make([]*dungeon.Level, 0, len(layouts))
	for i, layout := range layouts {
		lvl, err := dungeon.ParseLevel(string(rune('A'+i)), layout, legend)
		require.NoError(t, err)
		levels = append(levels, lvl)
	}
	s, err := session.New(levels, templates, session.Options{
		Player: actor.PlayerStats{Name: "Rogue", Awareness: 5, Speed: 10, Attack: "1d4", Health: 10},
		Seed:   7,
		Random: dice.NewSeededSource(7),
		Logger: zap.NewNop(),
	})
	require.NoError(t, err)
	out := &strings.Builder{}
	g := newGame(command.NewOrchestrator(s, behavior.NewRegistry(nil, zap.NewNop())), command.DefaultRegistry(), out)
	return g, s, out
}

func TestGame_QuitPrintsArrivalAndFrame(t *testing.T) {
	g, _, out := newTestGame(t, []string{corridor}, nil, nil)

	require.NoError(t, g.Run(strings.NewReader("q\nl\n")))

	text := out.String()
	assert.Contains(t, text, "Rogue arrives on level 1\n")
	assert.Contains(t, text, "Level created with seed '7'\n")
	assert.Contains(t, text, "#@.>#\n")
	assert.Contains(t, text, "10/10")
	assert.NotContains(t, text, "#.@>#", "input after quit is ignored")
}

func TestGame_MovesAndDescends(t *testing.T) {
	g, s, out := newTestGame(t, []string{corridor, corridor}, nil, nil)

	require.NoError(t, g.Run(strings.NewReader(">\nl 2\n>\nl 2\n>\n")))

	text := out.String()
	assert.Contains(t, text, "There are no stairs here.")
	assert.Contains(t, text, "#..@#\n")
	assert.Contains(t, text, "Rogue arrives on level 2\n")
	assert.Contains(t, text, "The stairs go no deeper.")
	assert.Equal(t, 2, s.Depth)
	assert.Equal(t, 1, strings.Count(text, "Level created with seed"))
}

func TestGame_RejectsBadInput(t *testing.T) {
	g, s, out := newTestGame(t, []string{corridor}, nil, nil)

	require.NoError(t, g.Run(strings.NewReader("dance\nl 0\nh\n?\n")))

	text := out.String()
	assert.Contains(t, text, `Unknown command "dance"`)
	assert.Contains(t, text, "repeat count must be a number")
	assert.Contains(t, text, "You can't go that way.")
	assert.Contains(t, text, "Take the stairs down")
	assert.Equal(t, 1, s.Player.X, "no input moved the player")
}

func TestGame_EndsWhenPlayerDies(t *testing.T) {
	templates := actor.Templates{
		"ogre": {ID: "ogre", Name: "Ogre", Symbol: "O", Awareness: 5, Speed: 10, Attack: "1d2+50", MaxHealth: 30},
	}
	g, s, out := newTestGame(t, []string{"#####\n#@O.#\n#####\n"}, map[string]string{"O": "ogre"}, templates)

	require.NoError(t, g.Run(strings.NewReader("l\n")))

	assert.True(t, s.GameOver)
	text := out.String()
	assert.Contains(t, text, "Ogre is eager to fight Rogue")
	assert.Contains(t, text, "Rogue was killed, GAME OVER MAN!")
	assert.NotContains(t, text, "> ", "no prompt after death")
}

func TestRender_HidesUnexploredAndUnseen(t *testing.T) {
	layout := "###########\n#@........#\n#########.#\n#k........#\n###########\n"
	templates := actor.Templates{
		"kobold": {ID: "kobold", Name: "Kobold", Symbol: "k", Awareness: 1, Speed: 10, Attack: "1d2", MaxHealth: 3},
	}
	_, s, _ := newTestGame(t, []string{layout}, map[string]string{"k": "kobold"}, templates)

	frame := render(s)

	lines := strings.Split(frame, "\n")
	assert.True(t, strings.HasPrefix(lines[1], "#@...."), lines[1])
	assert.Less(t, len(lines[1]), len("#@........#"), "cells beyond awareness stay hidden")
	assert.Empty(t, lines[3])
	assert.NotContains(t, frame, "k", "kobold behind the wall is not drawn")
	assert.Contains(t, lines[5], "Depth 1")
}
