// Package cli implements the command registry, argument parser and
// dispatcher. Command semantics (flag sets, derivation hooks, handlers) are
// declared elsewhere; this package only resolves them.
package cli

import (
	"strings"

	"github.com/portadev/porta-cli/internal/options"
)

// Setter applies a raw flag argument to the store. The default setter writes
// the string (or parsed bool) under the flag's option key; commands may
// override it.
type Setter func(st *options.Store, value string) error

// Flag declares a single command-line flag backed by an option key.
type Flag struct {
	Key        string // option key; unique across the whole namespace
	Name       string // long flag name; derived from Key ("_" -> "-") when empty
	Shorthand  string
	Usage      string
	Bool       bool // boolean flags accept --name and --no-name
	NoNegation bool // suppress the --no-name form (the help flag)
	Setter     Setter
}

// FlagName returns the long flag name for f.
func (f Flag) FlagName() string {
	if f.Name != "" {
		return f.Name
	}
	return strings.ReplaceAll(f.Key, "_", "-")
}

// DeriveHook computes an option value from already-resolved options after
// flag parsing. Hooks must use Store.SetIfAbsent so explicit flags win.
type DeriveHook func(st *options.Store) error

// Spec describes one command. Parent extends the flag set one level deep:
// parent flags come first in their own order, the command's flags follow, and
// when both declare the same option key the child's declaration wins while
// keeping the parent's position.
type Spec struct {
	Name         string
	Summary      string
	Parent       *Spec
	Flags        []Flag
	Derive       []DeriveHook
	RequiresFile bool // command takes a mandatory file-path positional
}

// portaDirFlag is implicitly the first flag of every command.
var portaDirFlag = Flag{
	Key:   "porta_dir",
	Usage: "Base directory of the porta repository checkout",
}

// trailingFlags are implicitly appended to every command, in this order.
var trailingFlags = []Flag{
	{Key: "explain", Bool: true, Usage: "Print the external commands that would run, without executing them"},
	{Key: "verbose", Bool: true, Usage: "Print every external command before it runs"},
	{Key: "help", Shorthand: "h", Bool: true, NoNegation: true, Usage: "Show this help and exit"},
}

// resolvedFlags returns the full declaration-ordered flag list:
// porta-dir, parent flags, own flags, then explain/verbose/help.
func (s *Spec) resolvedFlags() []Flag {
	merged := []Flag{portaDirFlag}
	if s.Parent != nil {
		merged = append(merged, s.Parent.Flags...)
	}
	for _, f := range s.Flags {
		if i := flagIndex(merged, f.Key); i >= 0 {
			merged[i] = f // child declaration wins, position follows parent
			continue
		}
		merged = append(merged, f)
	}
	return append(merged, trailingFlags...)
}

// resolvedHooks returns derivation hooks, parent's first.
func (s *Spec) resolvedHooks() []DeriveHook {
	if s.Parent == nil {
		return s.Derive
	}
	hooks := make([]DeriveHook, 0, len(s.Parent.Derive)+len(s.Derive))
	hooks = append(hooks, s.Parent.Derive...)
	return append(hooks, s.Derive...)
}

func flagIndex(flags []Flag, key string) int {
	for i, f := range flags {
		if f.Key == key {
			return i
		}
	}
	return -1
}
