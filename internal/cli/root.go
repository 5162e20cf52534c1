// Package cli is the command-line front end of the calculator catalog.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go-calculators/internal/calc"
)

// NewRootCmd builds the calc command tree over registry.
func NewRootCmd(version string, registry *calc.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "calc",
		Short:         "Everyday calculators from the terminal",
		Long:          "calc runs the calculator catalog: finance, health, math and everyday tools.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newListCmd(registry),
		newShowCmd(registry),
		newRunCmd(registry),
		newShareCmd(registry),
		newBatchCmd(registry),
		newTUICmd(registry),
	)
	return cmd
}

func lookup(registry *calc.Registry, slug string) (*calc.Definition, error) {
	d, ok := registry.Get(slug)
	if !ok {
		return nil, fmt.Errorf("unknown calculator %q (see 'calc list')", slug)
	}
	return d, nil
}

// parseSets turns repeated name=value flags into raw inputs.
func parseSets(d *calc.Definition, sets []string) (map[string]string, error) {
	raw := make(map[string]string, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected name=value", s)
		}
		name = strings.TrimSpace(name)
		if _, known := d.Field(name); !known {
			return nil, fmt.Errorf("calculator %q has no field %q", d.Slug, name)
		}
		raw[name] = value
	}
	return raw, nil
}

// completeSlugs offers calculator slugs for the first argument.
func completeSlugs(registry *calc.Registry) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		defs := registry.All()
		slugs := make([]string, 0, len(defs))
		for _, d := range defs {
			slugs = append(slugs, d.Slug+"\t"+d.Title)
		}
		return slugs, cobra.ShellCompDirectiveNoFileComp
	}
}
