package behavior

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/actor"
)

// Built-in behavior kinds.
const (
	KindStandard   = "standard"
	KindStationary = "stationary"
	// ScriptedPrefix prefixes kinds of the form "scripted:<hook>".
	ScriptedPrefix = "scripted:"
)

// ScriptCaller evaluates Lua hooks for scripted behaviors.
type ScriptCaller interface {
	// CallHook calls the named global Lua function.
	// Returns (LNil, nil) if the function is not defined.
	CallHook(hook string, args ...lua.LValue) (lua.LValue, error)
}

// Registry indexes Behaviors by kind.
//
// Invariant: each kind is registered at most once.
type Registry struct {
	behaviors map[string]Behavior
	caller    ScriptCaller
	logger    *zap.Logger
}

// NewRegistry returns a Registry holding the standard and stationary
// behaviors. caller may be nil, in which case scripted kinds are rejected.
//
// Precondition: logger must be non-nil.
func NewRegistry(caller ScriptCaller, logger *zap.Logger) *Registry {
	if logger == nil {
		panic("behavior.NewRegistry: logger must not be nil")
	}
	r := &Registry{
		behaviors: make(map[string]Behavior),
		caller:    caller,
		logger:    logger,
	}
	r.behaviors[KindStandard] = StandardMoveAndAttack{}
	r.behaviors[KindStationary] = Stationary{}
	return r
}

// Register stores b under kind.
//
// Precondition: kind must be non-empty and not use ScriptedPrefix; b must be non-nil.
// Postcondition: returns error on kind collision.
func (r *Registry) Register(kind string, b Behavior) error {
	if kind == "" || strings.HasPrefix(kind, ScriptedPrefix) {
		panic(fmt.Sprintf("behavior.Registry.Register: invalid kind %q", kind))
	}
	if b == nil {
		panic("behavior.Registry.Register: behavior must not be nil")
	}
	if _, exists := r.behaviors[kind]; exists {
		return fmt.Errorf("behavior.Registry: kind %q already registered", kind)
	}
	r.behaviors[kind] = b
	return nil
}

// For returns the Behavior for kind. Scripted kinds are created on first use.
//
// Postcondition: returns an error for unknown kinds, and for scripted kinds
// when the registry has no ScriptCaller.
func (r *Registry) For(kind string) (Behavior, error) {
	if b, ok := r.behaviors[kind]; ok {
		return b, nil
	}
	hook, ok := strings.CutPrefix(kind, ScriptedPrefix)
	if !ok {
		return nil, fmt.Errorf("unknown behavior kind %q", kind)
	}
	if hook == "" {
		return nil, fmt.Errorf("behavior kind %q names no hook", kind)
	}
	if r.caller == nil {
		return nil, fmt.Errorf("behavior kind %q requires scripting, which is disabled", kind)
	}
	b := &Scripted{Hook: hook, Caller: r.caller, Fallback: StandardMoveAndAttack{}, Logger: r.logger}
	r.behaviors[kind] = b
	return b, nil
}

// Check resolves the behavior kind of every template so bad content fails at
// startup instead of on a monster's first turn.
func (r *Registry) Check(templates actor.Templates) error {
	for _, id := range templates.IDs() {
		if _, err := r.For(templates[id].BehaviorKind()); err != nil {
			return fmt.Errorf("monster template %q: %w", id, err)
		}
	}
	return nil
}
