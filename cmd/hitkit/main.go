package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/idursun/hitkit/internal/command"
	"github.com/idursun/hitkit/internal/config"
)

var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(stderr io.Writer) (*config.Config, error) {
	cfg := config.Default()
	warnings, err := cfg.LoadFile()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		_, _ = fmt.Fprintf(stderr, "Warning: %s\n", w)
	}
	if cfg.UI.Theme != "" {
		colors, err := config.LoadTheme(cfg.UI.Theme, cfg.UI.Colors)
		if err != nil {
			return nil, err
		}
		cfg.UI.Colors = colors
	}
	return cfg, nil
}

func newRegistry(cfg *config.Config) *command.Registry {
	registry := command.NewRegistry()
	registry.Register(command.NewHelpCommand(registry))
	registry.Register(command.NewVersionCommand(Version))
	registry.Register(command.NewPlayCommand(cfg))
	registry.Register(command.NewReplayCommand(cfg))
	return registry
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(stderr)
	if err != nil {
		return err
	}
	registry := newRegistry(cfg)

	name := "play"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	if name == "-h" || name == "--help" {
		name = "help"
	}
	cmd, err := registry.Get(name)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: hitkit %s\n\n%s\n\nOptions:\n", cmd.Usage(), cmd.Description())
		fs.PrintDefaults()
	}
	cmd.SetupFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return cmd.Execute(fs.Args(), stdout, stderr)
}
