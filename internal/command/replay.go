package command

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/idursun/hitkit/internal/config"
	"github.com/idursun/hitkit/internal/logging"
	"github.com/idursun/hitkit/internal/replay"
	hctx "github.com/idursun/hitkit/internal/ui/context"
)

// ErrExpectations is wrapped when a scenario ran but some frames failed
// their expectations.
var ErrExpectations = errors.New("expectations failed")

// ReplayCommand runs a recorded scenario through the engine and prints one
// line per frame.
type ReplayCommand struct {
	*BaseCommand
	cfg       *config.Config
	json      bool
	useConfig bool
	verbose   bool
}

func NewReplayCommand(cfg *config.Config) *ReplayCommand {
	return &ReplayCommand{
		BaseCommand: NewBaseCommand("replay", "Replay a scenario file and report each frame", "replay [options] <scenario.toml>"),
		cfg:         cfg,
	}
}

func (c *ReplayCommand) SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.json, "json", false, "Print results as JSON")
	fs.BoolVar(&c.useConfig, "use-config", false, "Use the interaction settings from the config file instead of the library defaults")
	fs.BoolVar(&c.verbose, "v", false, "Log engine decisions to stderr")
}

func (c *ReplayCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("replay needs exactly one scenario file, got %d", len(args))
	}
	scenario, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	opts := hctx.DefaultOptions()
	if c.useConfig {
		opts = hctx.OptionsFromConfig(c.cfg.Interaction)
	}
	logger := logging.Discard()
	if c.verbose {
		logger = logging.New(stderr, slog.LevelDebug)
	}

	results, err := replay.Run(scenario, opts, logger)
	if err != nil {
		return err
	}
	if c.json {
		err = replay.WriteJSON(stdout, results)
	} else {
		err = replay.WriteText(stdout, results)
	}
	if err != nil {
		return err
	}
	if n := replay.Failed(results); n > 0 {
		return fmt.Errorf("%w: %d of %d frames", ErrExpectations, n, len(results))
	}
	return nil
}
