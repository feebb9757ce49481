package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"netcores-mcp/internal/tools"
)

var (
	toolNameStyle = lipgloss.NewStyle().Bold(true)
	toolTypeStyle = lipgloss.NewStyle().Faint(true)
)

func toolsMain(args []string) {
	if err := runTools(args, os.Stdout); err != nil {
		log.Fatalf("tools failed: %v", err)
	}
}

// runTools lists the catalog, or describes one tool when a name is given.
// Listing never touches the network, so no config is needed.
func runTools(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tools", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return err
	}

	catalog := tools.Catalog(nil)
	if name := fs.Arg(0); name != "" {
		for _, def := range catalog {
			if def.Name == name {
				describeTool(out, def)
				return nil
			}
		}
		return fmt.Errorf("unknown tool %q", name)
	}

	for _, def := range catalog {
		fmt.Fprintf(out, "%s\n    %s\n", toolNameStyle.Render(def.Name), def.Description)
	}
	return nil
}

func describeTool(out io.Writer, def tools.ToolDefinition) {
	fmt.Fprintf(out, "%s\n%s\n", toolNameStyle.Render(def.Name), def.Description)
	if len(def.Args) == 0 {
		fmt.Fprintln(out, "\nNo arguments.")
		return
	}
	fmt.Fprintln(out, "\nArguments:")
	for _, arg := range def.Args {
		var notes []string
		if arg.Required {
			notes = append(notes, "required")
		}
		if arg.Default != nil {
			notes = append(notes, fmt.Sprintf("default %v", arg.Default))
		}
		if len(arg.EnumInts) > 0 {
			notes = append(notes, fmt.Sprintf("one of %v", arg.EnumInts))
		}
		suffix := ""
		if len(notes) > 0 {
			suffix = " (" + strings.Join(notes, ", ") + ")"
		}
		fmt.Fprintf(out, "  %s %s%s\n      %s\n",
			arg.Name, toolTypeStyle.Render(string(arg.Type)), suffix, arg.Description)
	}
}
