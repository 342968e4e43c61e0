package command

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// HelpCommand lists the commands, or describes one.
type HelpCommand struct {
	*BaseCommand
	registry *Registry
}

func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{
		BaseCommand: NewBaseCommand("help", "Display help information for commands", "help [command]"),
		registry:    registry,
	}
}

func (c *HelpCommand) Execute(args []string, stdout, stderr io.Writer) error {
	switch len(args) {
	case 0:
		_, _ = fmt.Fprintln(stdout, "hitkit - hit testing and interaction playground")
		_, _ = fmt.Fprintln(stdout, "")
		_, _ = fmt.Fprintln(stdout, "Usage: hitkit <command> [options] [args...]")
		_, _ = fmt.Fprintln(stdout, "")
		_, _ = fmt.Fprintln(stdout, "Commands:")
		w := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
		for _, name := range c.registry.List() {
			if cmd, err := c.registry.Get(name); err == nil {
				_, _ = fmt.Fprintf(w, "  %s\t%s\n", name, cmd.Description())
			}
		}
		return w.Flush()
	case 1:
		cmd, err := c.registry.Get(args[0])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "Usage: hitkit %s\n\n%s\n", cmd.Usage(), cmd.Description())
		return nil
	}
	return fmt.Errorf("help takes at most one command, got %d", len(args))
}

type VersionCommand struct {
	*BaseCommand
	version string
}

func NewVersionCommand(version string) *VersionCommand {
	return &VersionCommand{
		BaseCommand: NewBaseCommand("version", "Display version information", "version"),
		version:     version,
	}
}

func (c *VersionCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	_, _ = fmt.Fprintf(stdout, "hitkit version %s\n", c.version)
	return nil
}
