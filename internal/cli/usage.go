package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteUsage prints the command's usage banner: one line per flag in
// declaration order, with the currently resolved default in parentheses.
func (p *Parser) WriteUsage(w io.Writer) {
	line := "Usage: porta " + p.spec.Name + " [options]"
	if p.spec.RequiresFile {
		line = "Usage: porta " + p.spec.Name + " FILE [options]"
	}
	fmt.Fprintln(w, line)
	if p.spec.Summary != "" {
		fmt.Fprintln(w, p.spec.Summary)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range p.spec.resolvedFlags() {
		fmt.Fprintf(tw, "  %s\t%s\n", flagLabel(f), p.flagUsage(f))
	}
	tw.Flush()
}

func flagLabel(f Flag) string {
	name := f.FlagName()
	var label string
	switch {
	case f.Bool && !f.NoNegation:
		label = "--[no-]" + name
	case f.Bool:
		label = "--" + name
	default:
		label = "--" + name + "=VALUE"
	}
	if f.Shorthand != "" {
		label = "-" + f.Shorthand + ", " + label
	}
	return label
}

// flagUsage renders the description plus the resolved default, when the
// defaults/settings layers held a value for the flag's option key before any
// flags were applied.
func (p *Parser) flagUsage(f Flag) string {
	usage := f.Usage
	v, ok := p.defaults[f.Key]
	if !ok {
		return usage
	}
	switch v := v.(type) {
	case bool:
		return fmt.Sprintf("%s (%t)", usage, v)
	case string:
		if v == "" {
			return usage
		}
		return fmt.Sprintf("%s (%s)", usage, v)
	default:
		return usage
	}
}
