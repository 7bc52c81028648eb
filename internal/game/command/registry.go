package command

import (
	"fmt"
	"slices"
	"strings"
)

// Registry maps command names and aliases to Command definitions.
type Registry struct {
	commands map[string]*Command // canonical name → command
	aliases  map[string]string   // alias → canonical name
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a canonical name or alias.
// Postcondition: Returns a Registry or an error on name/alias collisions.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string),
	}
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Handler == HandlerMove && cmd.Direction == None {
			return nil, fmt.Errorf("move command %q has no direction", cmd.Name)
		}
		if r.taken(cmd.Name) {
			return nil, fmt.Errorf("duplicate command name or alias: %q", cmd.Name)
		}
		r.commands[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			if r.taken(alias) {
				return nil, fmt.Errorf("alias %q of %q is already in use", alias, cmd.Name)
			}
			r.aliases[alias] = cmd.Name
		}
	}
	return r, nil
}

func (r *Registry) taken(word string) bool {
	_, isName := r.commands[word]
	_, isAlias := r.aliases[word]
	return isName || isAlias
}

// DefaultRegistry creates a Registry with all built-in commands.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by name or alias.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Command, bool) {
	if cmd, ok := r.commands[input]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[input]; ok {
		return r.commands[canonical], true
	}
	return nil, false
}

// Commands returns all registered commands ordered by category, then name.
func (r *Registry) Commands() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	slices.SortFunc(result, func(a, b *Command) int {
		if c := strings.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return result
}

// Help renders one line per command: name, aliases and help text.
func (r *Registry) Help() string {
	var sb strings.Builder
	for _, cmd := range r.Commands() {
		fmt.Fprintf(&sb, "%-8s %-18s %s\n", cmd.Name, strings.Join(cmd.Aliases, " "), cmd.Help)
	}
	return sb.String()
}
