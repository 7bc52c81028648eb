// Package command turns player input and scheduled monster turns into map
// mutations. It holds the input keymap and the turn Orchestrator.
package command

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategorySystem   = "system"
)

// Handler identifiers mapping commands to Orchestrator operations.
const (
	HandlerMove    = "move"
	HandlerDescend = "descend"
	HandlerQuit    = "quit"
	HandlerHelp    = "help"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names and keys for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command.
	Category string
	// Handler names the operation the command performs.
	Handler string
	// Direction is the step direction; set only for HandlerMove.
	Direction Direction
}

// BuiltinCommands returns the built-in commands. Each direction answers to
// its vi key and its WASD key.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "up", Aliases: []string{"k", "w", "north"}, Help: "Move up", Category: CategoryMovement, Handler: HandlerMove, Direction: Up},
		{Name: "down", Aliases: []string{"j", "s", "south"}, Help: "Move down", Category: CategoryMovement, Handler: HandlerMove, Direction: Down},
		{Name: "left", Aliases: []string{"h", "a", "west"}, Help: "Move left", Category: CategoryMovement, Handler: HandlerMove, Direction: Left},
		{Name: "right", Aliases: []string{"l", "d", "east"}, Help: "Move right", Category: CategoryMovement, Handler: HandlerMove, Direction: Right},
		{Name: "descend", Aliases: []string{">", "stairs"}, Help: "Take the stairs down", Category: CategoryMovement, Handler: HandlerDescend},

		{Name: "quit", Aliases: []string{"q", "exit"}, Help: "Leave the game", Category: CategorySystem, Handler: HandlerQuit},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
	}
}
