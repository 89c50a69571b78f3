package handlers

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// CommandSummary is one row of the help catalogue.
type CommandSummary struct {
	Name    string
	Summary string
}

// HelpCommand prints the command catalogue. It is also the fallback handler
// for absent or unrecognized command names.
type HelpCommand struct {
	out       io.Writer
	catalogue []CommandSummary
}

func (c *HelpCommand) Run() error {
	fmt.Fprintln(c.out, "porta - command dispatcher for the porta development environment")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Usage: porta <command> [flags] [file]")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Commands:")
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	for _, entry := range c.catalogue {
		fmt.Fprintf(tw, "  %s\t%s\n", entry.Name, entry.Summary)
	}
	tw.Flush()
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Run 'porta <command> --help' for the command's flags.")
	return nil
}
