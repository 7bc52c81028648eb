package actor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/crawl/internal/game/dice"
)

// DefaultBehavior is the behavior kind used when a template names none.
const DefaultBehavior = "standard"

// Template defines a reusable monster archetype loaded from YAML.
type Template struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Symbol    string `yaml:"symbol"`
	Color     string `yaml:"color"`
	Awareness int    `yaml:"awareness"`
	Speed     int    `yaml:"speed"`
	Attack    string `yaml:"attack"`
	Defense   int    `yaml:"defense"`
	MaxHealth int    `yaml:"max_health"`
	Gold      int    `yaml:"gold"`
	// Behavior selects the behavior strategy: "standard", "stationary" or
	// "scripted:<hook>". Empty means DefaultBehavior.
	Behavior string `yaml:"behavior"`
}

// BehaviorKind returns Behavior, or DefaultBehavior when unset.
func (t *Template) BehaviorKind() string {
	if t.Behavior == "" {
		return DefaultBehavior
	}
	return t.Behavior
}

// Validate checks that the template satisfies basic invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty, Symbol is a single
// rune, Awareness >= 0, Speed >= 1, MaxHealth >= 1, Defense and Gold >= 0, and
// Attack parses as a dice expression.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("monster template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("monster template %q: name must not be empty", t.ID)
	}
	if utf8.RuneCountInString(t.Symbol) != 1 {
		return fmt.Errorf("monster template %q: symbol must be a single character, got %q", t.ID, t.Symbol)
	}
	if t.Awareness < 0 {
		return fmt.Errorf("monster template %q: awareness must be >= 0", t.ID)
	}
	if t.Speed < 1 {
		return fmt.Errorf("monster template %q: speed must be >= 1", t.ID)
	}
	if t.MaxHealth < 1 {
		return fmt.Errorf("monster template %q: max_health must be >= 1", t.ID)
	}
	if t.Defense < 0 || t.Gold < 0 {
		return fmt.Errorf("monster template %q: defense and gold must be >= 0", t.ID)
	}
	if _, err := dice.Parse(t.Attack); err != nil {
		return fmt.Errorf("monster template %q: attack: %w", t.ID, err)
	}
	return nil
}

// LoadTemplateFromBytes parses a single monster template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// Templates indexes monster templates by ID.
type Templates map[string]*Template

// IDs returns the template IDs in sorted order.
func (ts Templates) IDs() []string {
	ids := make([]string, 0, len(ts))
	for id := range ts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadTemplates reads all *.yaml files in dir and indexes the parsed templates by ID.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse, validate
// or duplicate-ID failure.
func LoadTemplates(dir string) (Templates, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading monster dir %q: %w", dir, err)
	}

	templates := make(Templates)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		if _, dup := templates[tmpl.ID]; dup {
			return nil, fmt.Errorf("loading %q: duplicate template id %q", path, tmpl.ID)
		}
		templates[tmpl.ID] = tmpl
	}
	return templates, nil
}
