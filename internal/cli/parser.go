package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/portadev/porta-cli/internal/options"
)

// Parser resolves a command's argument vector into the shared options store.
type Parser struct {
	spec     *Spec
	store    *options.Store
	stdout   io.Writer
	defaults map[string]any // pre-flag values, shown in the usage banner
}

// NewParser returns a parser for spec writing into store. Usage output goes
// to stdout. The store's current values are snapshotted as the defaults the
// banner renders; flags applied later never show up as defaults.
func NewParser(spec *Spec, store *options.Store, stdout io.Writer) *Parser {
	defaults := make(map[string]any)
	for _, f := range spec.resolvedFlags() {
		if store.Has(f.Key) {
			defaults[f.Key] = store.Get(f.Key)
		}
	}
	return &Parser{spec: spec, store: store, stdout: stdout, defaults: defaults}
}

// Parse applies args to the store. It returns an *ExitError with code 0 when
// help was requested, code 128 when a required file positional is missing,
// and the underlying pflag error on unknown flags or malformed values. On
// success the command's derivation hooks have run.
func (p *Parser) Parse(args []string) error {
	if p.spec.RequiresFile {
		if len(args) == 0 || strings.HasPrefix(args[0], "-") {
			p.WriteUsage(p.stdout)
			return &ExitError{Code: 128}
		}
		p.store.Set("file", args[0], options.SourceFlag)
		args = args[1:]
	}

	fs := pflag.NewFlagSet(p.spec.Name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard) // errors propagate; usage is ours
	for _, f := range p.spec.resolvedFlags() {
		p.register(fs, f)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if p.store.Bool("help") {
		p.WriteUsage(p.stdout)
		return &ExitError{Code: 0}
	}

	for _, hook := range p.spec.resolvedHooks() {
		if err := hook(p.store); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) register(fs *pflag.FlagSet, f Flag) {
	name := f.FlagName()
	fs.VarP(&flagValue{store: p.store, flag: f}, name, f.Shorthand, f.Usage)
	if f.Bool {
		fs.Lookup(name).NoOptDefVal = "true"
		if f.NoNegation {
			return
		}
		neg := "no-" + name
		fs.Var(&flagValue{store: p.store, flag: f, negated: true}, neg, "")
		fs.Lookup(neg).NoOptDefVal = "true"
	}
}

// flagValue adapts a Flag declaration to pflag.Value, writing parsed values
// straight into the options store at flag-layer precedence.
type flagValue struct {
	store   *options.Store
	flag    Flag
	negated bool
}

func (v *flagValue) Set(raw string) error {
	if v.flag.Setter != nil {
		return v.flag.Setter(v.store, raw)
	}
	if v.flag.Bool {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		if v.negated {
			b = !b
		}
		v.store.Set(v.flag.Key, b, options.SourceFlag)
		return nil
	}
	v.store.Set(v.flag.Key, raw, options.SourceFlag)
	return nil
}

func (v *flagValue) String() string {
	return ""
}

func (v *flagValue) Type() string {
	if v.flag.Bool {
		return "bool"
	}
	return "string"
}
