// Package command implements the hitkit subcommands.
package command

import (
	"flag"
	"io"
)

// Command is one subcommand of the hitkit binary.
type Command interface {
	Name() string
	// Description is a one line summary for the help listing.
	Description() string
	Usage() string
	// SetupFlags registers the command's flags before arguments are parsed.
	SetupFlags(fs *flag.FlagSet)
	// Execute runs the command with the arguments left after flag parsing.
	Execute(args []string, stdout, stderr io.Writer) error
}

// BaseCommand carries the metadata every command has. Embed it and override
// what differs.
type BaseCommand struct {
	name        string
	description string
	usage       string
}

func NewBaseCommand(name, description, usage string) *BaseCommand {
	return &BaseCommand{name: name, description: description, usage: usage}
}

func (c *BaseCommand) Name() string        { return c.name }
func (c *BaseCommand) Description() string { return c.description }
func (c *BaseCommand) Usage() string       { return c.usage }

func (c *BaseCommand) SetupFlags(*flag.FlagSet) {}
