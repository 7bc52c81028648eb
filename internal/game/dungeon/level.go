package dungeon

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"codeberg.org/anaseto/gruid"
	"gopkg.in/yaml.v3"
)

// Layout glyphs. Any other glyph must appear in the level legend, where it
// names the monster template spawned on a floor cell.
const (
	GlyphWall        = '#'
	GlyphVoid        = ' '
	GlyphFloor       = '.'
	GlyphPlayerStart = '@'
	GlyphStairsDown  = '>'
)

// Spawn places one monster template on a cell.
type Spawn struct {
	TemplateID string
	At         gruid.Point
}

// Level is a parsed level blueprint. Build produces a fresh Map from it.
type Level struct {
	Name        string
	Rows        []string
	Width       int
	Height      int
	PlayerStart gruid.Point
	Stairs      gruid.Point
	HasStairs   bool
	Spawns      []Spawn
}

type levelFile struct {
	Level levelData `yaml:"level"`
}

type levelData struct {
	Name   string            `yaml:"name"`
	Layout string            `yaml:"layout"`
	Legend map[string]string `yaml:"legend"`
}

// LoadLevelFromBytes parses a single level YAML document.
//
// Precondition: data must be a valid YAML level document.
// Postcondition: Returns a Level with exactly one player start, or a non-nil error.
func LoadLevelFromBytes(data []byte) (*Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing level YAML: %w", err)
	}
	return ParseLevel(f.Level.Name, f.Level.Layout, f.Level.Legend)
}

// ParseLevel builds a Level from an ASCII layout. Short rows are padded with
// void, which behaves like wall.
func ParseLevel(name, layout string, legend map[string]string) (*Level, error) {
	if name == "" {
		return nil, fmt.Errorf("level name must not be empty")
	}
	glyphs := make(map[rune]string, len(legend))
	for k, id := range legend {
		r := []rune(k)
		if len(r) != 1 {
			return nil, fmt.Errorf("level %q: legend key %q must be a single character", name, k)
		}
		switch r[0] {
		case GlyphWall, GlyphVoid, GlyphFloor, GlyphPlayerStart, GlyphStairsDown:
			return nil, fmt.Errorf("level %q: legend key %q is reserved", name, k)
		}
		if id == "" {
			return nil, fmt.Errorf("level %q: legend key %q has no template", name, k)
		}
		glyphs[r[0]] = id
	}

	rows := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	if len(rows) == 0 || (len(rows) == 1 && rows[0] == "") {
		return nil, fmt.Errorf("level %q: layout must not be empty", name)
	}
	lvl := &Level{Name: name, Height: len(rows)}
	for _, row := range rows {
		lvl.Width = max(lvl.Width, len([]rune(row)))
	}

	starts := 0
	for y, row := range rows {
		for x, g := range []rune(row) {
			p := gruid.Point{X: x, Y: y}
			switch g {
			case GlyphWall, GlyphVoid, GlyphFloor:
			case GlyphPlayerStart:
				lvl.PlayerStart = p
				starts++
			case GlyphStairsDown:
				if lvl.HasStairs {
					return nil, fmt.Errorf("level %q: more than one down staircase", name)
				}
				lvl.Stairs = p
				lvl.HasStairs = true
			default:
				id, ok := glyphs[g]
				if !ok {
					return nil, fmt.Errorf("level %q: unknown glyph %q at (%d,%d)", name, g, x, y)
				}
				lvl.Spawns = append(lvl.Spawns, Spawn{TemplateID: id, At: p})
			}
		}
		lvl.Rows = append(lvl.Rows, row)
	}
	if starts != 1 {
		return nil, fmt.Errorf("level %q: expected exactly one player start, found %d", name, starts)
	}
	return lvl, nil
}

// Build returns a new Map carrying this level's terrain and staircase. No
// actors are placed.
func (l *Level) Build() *Map {
	m := NewMap(l.Width, l.Height)
	for y, row := range l.Rows {
		for x, g := range []rune(row) {
			if g == GlyphWall || g == GlyphVoid {
				continue
			}
			m.SetCellProperties(x, y, true, true)
		}
	}
	if l.HasStairs {
		m.SetStairsDown(l.Stairs.X, l.Stairs.Y)
	}
	return m
}

// LoadLevels reads every *.yaml file in dir and returns the levels ordered by
// file name, which is the order they are descended.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns at least one level, or a non-nil error.
func LoadLevels(dir string) ([]*Level, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading level dir %q: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	levels := make([]*Level, 0, len(names))
	for _, n := range names {
		data, err := os.ReadFile(filepath.Join(dir, n))
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", n, err)
		}
		lvl, err := LoadLevelFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", n, err)
		}
		levels = append(levels, lvl)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels found in %q", dir)
	}
	return levels, nil
}
