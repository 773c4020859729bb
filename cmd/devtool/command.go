package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
)

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry holds the subcommands, kept sorted by name
type Registry struct {
	commands []Command
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds cmd, replacing any command with the same name
func (r *Registry) Register(cmd Command) {
	i, found := slices.BinarySearchFunc(r.commands, cmd.Name(), func(c Command, name string) int {
		return strings.Compare(c.Name(), name)
	})
	if found {
		r.commands[i] = cmd
		return
	}
	r.commands = slices.Insert(r.commands, i, cmd)
}

func (r *Registry) Get(name string) (Command, bool) {
	i, found := slices.BinarySearchFunc(r.commands, name, func(c Command, name string) int {
		return strings.Compare(c.Name(), name)
	})
	if !found {
		return nil, false
	}
	return r.commands[i], true
}

func (r *Registry) PrintHelp() {
	fmt.Println("Usage: devtool <command> [args...]")
	fmt.Println("\nCommands:")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range r.commands {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Name(), c.Description())
	}
	_ = tw.Flush()
}
