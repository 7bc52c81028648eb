package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/cory-johannsen/crawl/internal/game/command"
	"github.com/cory-johannsen/crawl/internal/game/msglog"
	"github.com/cory-johannsen/crawl/internal/game/session"
)

// game drives an Orchestrator from lines of player input.
type game struct {
	orch     *command.Orchestrator
	commands *command.Registry
	out      io.Writer

	// log and seen track which messages have already been printed; the
	// session replaces its log on every new level.
	log  *msglog.Log
	seen int
}

func newGame(orch *command.Orchestrator, commands *command.Registry, out io.Writer) *game {
	return &game{orch: orch, commands: commands, out: out}
}

// Run plays until the input ends, the player quits, or the player dies.
func (g *game) Run(in io.Reader) error {
	s := g.orch.Session()
	g.orch.ActivateMonsters()
	g.flush()
	if s.GameOver {
		return nil
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprint(g.out, "> ")
	for scanner.Scan() {
		quit := g.handle(scanner.Text())
		g.flush()
		if quit || s.GameOver {
			return nil
		}
		fmt.Fprint(g.out, "> ")
	}
	return scanner.Err()
}

// handle executes one line of input and reports whether the player quit.
func (g *game) handle(line string) bool {
	res, err := command.Parse(line)
	if err != nil {
		fmt.Fprintln(g.out, err)
		return false
	}
	if res.Command == "" {
		return false
	}
	cmd, ok := g.commands.Resolve(res.Command)
	if !ok {
		fmt.Fprintf(g.out, "Unknown command %q. Type ? for help.\n", res.Command)
		return false
	}

	switch cmd.Handler {
	case command.HandlerQuit:
		return true
	case command.HandlerHelp:
		fmt.Fprint(g.out, g.commands.Help())
	case command.HandlerMove:
		for i := 0; i < res.Count && !g.orch.Session().GameOver; i++ {
			if !g.orch.MovePlayer(cmd.Direction) {
				fmt.Fprintln(g.out, "You can't go that way.")
				break
			}
			g.endTurn()
		}
	case command.HandlerDescend:
		ok, err := g.orch.DescendStairs()
		switch {
		case errors.Is(err, session.ErrNoDeeperLevel):
			fmt.Fprintln(g.out, "The stairs go no deeper.")
		case err != nil:
			fmt.Fprintf(g.out, "The stairs are blocked: %v\n", err)
		case !ok:
			fmt.Fprintln(g.out, "There are no stairs here.")
		default:
			g.endTurn()
		}
	}
	return false
}

func (g *game) endTurn() {
	g.orch.EndPlayerTurn()
	g.orch.ActivateMonsters()
}

// flush prints unseen messages followed by the current frame.
func (g *game) flush() {
	s := g.orch.Session()
	if g.log != s.Log {
		g.log, g.seen = s.Log, 0
	}
	for _, msg := range g.log.Since(g.seen) {
		fmt.Fprintln(g.out, msg)
	}
	g.seen = g.log.Len()
	fmt.Fprint(g.out, render(s))
}
