package command

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/idursun/hitkit/internal/config"
	"github.com/idursun/hitkit/internal/logging"
	"github.com/idursun/hitkit/internal/ui/playground"
)

// ErrNotTerminal is returned when play is started without a terminal.
var ErrNotTerminal = errors.New("play needs an interactive terminal")

const ringSize = 200

// PlayCommand runs the interactive playground.
type PlayCommand struct {
	*BaseCommand
	cfg     *config.Config
	noColor bool

	isTerminal func() bool
	run        func(tea.Model) error
	sessionID  func() string
}

func NewPlayCommand(cfg *config.Config) *PlayCommand {
	return &PlayCommand{
		BaseCommand: NewBaseCommand("play", "Open the interactive hit test playground", "play [options]"),
		cfg:         cfg,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		run: func(m tea.Model) error {
			_, err := tea.NewProgram(m).Run()
			return err
		},
		sessionID: uuid.NewString,
	}
}

func (c *PlayCommand) SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.noColor, "no-color", false, "Disable theme colours")
}

func (c *PlayCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	if !c.isTerminal() {
		return ErrNotTerminal
	}

	level, err := logging.ParseLevel(c.cfg.Log.Level)
	if err != nil {
		return err
	}
	fileLogger, closer, err := logging.Open(c.cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	ring := logging.NewRing(ringSize, level)
	logger := slog.New(logging.Tee{ring, fileLogger.Handler()}).With("session", c.sessionID())

	cfg := *c.cfg
	if c.noColor || termenv.EnvNoColor() {
		cfg.UI.Colors = nil
	}

	logger.Info("playground started")
	m := playground.New(&cfg, logger, playground.WithRing(ring))
	if err := c.run(playground.NewProgram(m)); err != nil {
		return fmt.Errorf("playground: %w", err)
	}
	logger.Info("playground closed")
	return nil
}
