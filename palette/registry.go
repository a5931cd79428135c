package palette

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/agnivade/levenshtein"
)

var ErrDuplicateID = errors.New("duplicate command id")
var ErrUnknownCommand = errors.New("unknown command")

// the maximum edit distance for an id to be suggested on a lookup miss
const suggestDistance = 3

// Index addresses a command in its registry. It stays valid for the
// lifetime of the registry.
type Index int

// DuplicatePolicy decides what happens when a command is registered
// with an ID that is already taken.
type DuplicatePolicy int

const (
	// DuplicateReject fails the registration with ErrDuplicateID.
	DuplicateReject DuplicatePolicy = iota

	// DuplicateReplace overwrites the existing command, keeping its index.
	DuplicateReplace
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateReject:
		return "reject"
	case DuplicateReplace:
		return "replace"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy parses "reject" or "replace".
func ParseDuplicatePolicy(value string) (DuplicatePolicy, error) {
	switch value {
	case "", "reject":
		return DuplicateReject, nil
	case "replace":
		return DuplicateReplace, nil
	default:
		return 0, fmt.Errorf("parse duplicate policy %q: expected reject or replace", value)
	}
}

// Registry owns the commands in registration order.
// It is not safe for concurrent use.
type Registry struct {
	commands []Command
	ids      map[string]Index
	policy   DuplicatePolicy
}

func NewRegistry(policy DuplicatePolicy) *Registry {
	return &Registry{
		ids:    map[string]Index{},
		policy: policy,
	}
}

// Register adds the command and returns its index. Commands without
// an ID are never duplicates.
func (r *Registry) Register(cmd Command) (Index, error) {
	if cmd.ID != "" {
		if idx, ok := r.ids[cmd.ID]; ok {
			if r.policy != DuplicateReplace {
				return 0, fmt.Errorf("register %q: %w", cmd.ID, ErrDuplicateID)
			}

			slog.Debug("Replace command", slog.String("id", cmd.ID), slog.Int("index", int(idx)))
			r.commands[idx] = cmd
			return idx, nil
		}
	}

	idx := Index(len(r.commands))
	r.commands = append(r.commands, cmd)

	if cmd.ID != "" {
		r.ids[cmd.ID] = idx
	}

	slog.Debug(
		"Register command",
		slog.String("id", cmd.ID),
		slog.String("detail", cmd.Detail),
		slog.Int("index", int(idx)),
	)

	return idx, nil
}

func (r *Registry) Len() int {
	return len(r.commands)
}

// Get returns the command at idx, or nil if there is none. The pointer is
// valid until the next call to Register.
func (r *Registry) Get(idx Index) *Command {
	if idx < 0 || int(idx) >= len(r.commands) {
		return nil
	}

	return &r.commands[idx]
}

// All returns the commands in registration order. The slice is owned by the registry.
func (r *Registry) All() []Command {
	return r.commands
}

func (r *Registry) Lookup(id string) (Index, bool) {
	idx, ok := r.ids[id]
	return idx, ok
}

// Resolve is like Lookup but returns an error wrapping ErrUnknownCommand
// on a miss. The error suggests the closest registered ID, if any is close.
func (r *Registry) Resolve(id string) (Index, error) {
	if idx, ok := r.ids[id]; ok {
		return idx, nil
	}

	if suggestion := r.suggest(id); suggestion != "" {
		return 0, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownCommand, id, suggestion)
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownCommand, id)
}

// suggest returns the registered ID closest to id within suggestDistance.
// On ties the earlier registered command wins.
func (r *Registry) suggest(id string) string {
	best := ""
	bestDistance := suggestDistance + 1

	for idx := range r.commands {
		candidate := r.commands[idx].ID
		if candidate == "" {
			continue
		}

		distance := levenshtein.ComputeDistance(id, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best
}

// Commands is a read-only view of a registry. Commands are added through
// the owner of the registry, which keeps its derived state in sync.
type Commands struct {
	registry *Registry
}

func (c Commands) Len() int {
	return c.registry.Len()
}

// Get returns a copy of the command at idx.
func (c Commands) Get(idx Index) (Command, bool) {
	cmd := c.registry.Get(idx)
	if cmd == nil {
		return Command{}, false
	}

	return *cmd, true
}

// All returns a copy of the commands in registration order.
func (c Commands) All() []Command {
	return slices.Clone(c.registry.All())
}

func (c Commands) Lookup(id string) (Index, bool) {
	return c.registry.Lookup(id)
}

func (c Commands) Resolve(id string) (Index, error) {
	return c.registry.Resolve(id)
}
