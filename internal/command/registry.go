package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/idursun/hitkit/internal/suggest"
)

// ErrUnknownCommand is wrapped by Get when no command has the name.
var ErrUnknownCommand = errors.New("unknown command")

type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd, replacing any command of the same name.
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get returns the named command. The error suggests the closest name when
// there is a plausible one.
func (r *Registry) Get(name string) (Command, error) {
	if cmd, ok := r.commands[name]; ok {
		return cmd, nil
	}
	if s, ok := suggest.Closest(name, r.List()); ok {
		return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownCommand, name, s)
	}
	return nil, fmt.Errorf("%w %q, expected one of: %s", ErrUnknownCommand, name, strings.Join(r.List(), ", "))
}

// List returns the command names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
