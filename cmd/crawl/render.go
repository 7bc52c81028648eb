package main

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/session"
)

const healthBarWidth = 20

// render draws the explored part of the current level, the monsters the
// player can see, and a status line.
func render(s *session.Session) string {
	m := s.Map
	rows := s.Level().Rows

	var sb strings.Builder
	for y := 0; y < m.Height(); y++ {
		line := make([]rune, m.Width())
		glyphs := []rune(rows[y])
		for x := range line {
			line[x] = ' '
			if !m.IsExplored(x, y) {
				continue
			}
			switch a := m.ActorAt(x, y); {
			case a != nil && a.IsPlayer():
				line[x] = dungeon.GlyphPlayerStart
			case a != nil && m.IsInPlayerFov(x, y):
				line[x] = a.Symbol
			default:
				line[x] = terrain(glyphs, x)
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}

	p := s.Player
	filled := min(max(int(p.HealthFraction()*healthBarWidth), 0), healthBarWidth)
	fmt.Fprintf(&sb, "%s  HP [%s%s] %d/%d  Gold %d  Depth %d\n",
		p.Name,
		strings.Repeat("=", filled), strings.Repeat(" ", healthBarWidth-filled),
		p.Health, p.MaxHealth, p.Gold, s.Depth,
	)
	return sb.String()
}

// terrain maps a layout glyph to what is drawn once the cell is explored.
// Spawn markers and the player start are floor.
func terrain(row []rune, x int) rune {
	if x >= len(row) {
		return dungeon.GlyphVoid
	}
	switch g := row[x]; g {
	case dungeon.GlyphWall, dungeon.GlyphVoid, dungeon.GlyphStairsDown:
		return g
	default:
		return dungeon.GlyphFloor
	}
}
