package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"go-calculators/internal/batch"
	"go-calculators/internal/calc"
	"go-calculators/internal/share"
	"go-calculators/internal/tui"
)

func newListCmd(registry *calc.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, d := range registry.All() {
				fmt.Fprintf(tw, "%s\t%s\n", d.Slug, d.Title)
			}
			return tw.Flush()
		},
	}
}

func newShowCmd(registry *calc.Registry) *cobra.Command {
	return &cobra.Command{
		Use:               "show <calculator>",
		Short:             "Describe a calculator's inputs",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSlugs(registry),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookup(registry, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n\n", d.Title, d.Description)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tLABEL\tUNIT\tDEFAULT\tOPTIONS")
			for _, f := range d.Fields {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", f.Name, f.Label, f.Unit, f.Default, strings.Join(f.Options, ","))
			}
			return tw.Flush()
		},
	}
}

func newRunCmd(registry *calc.Registry) *cobra.Command {
	var (
		sets   []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:               "run <calculator>",
		Short:             "Compute a result",
		Example:           "  calc run loan --set amount=250000 --set rate=6.5 --set years=30",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSlugs(registry),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookup(registry, args[0])
			if err != nil {
				return err
			}
			raw, err := parseSets(d, sets)
			if err != nil {
				return err
			}
			res, err := d.RunMap(raw)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "input value as name=value (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func printResult(w io.Writer, r calc.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", r.Primary.Label, display(r.Primary))
	for _, v := range r.Secondary {
		fmt.Fprintf(tw, "%s\t%s\n", v.Label, display(v))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(w, "- %s\n", rec)
	}
	if !r.Valid {
		fmt.Fprintln(w, "(incomplete input)")
	}
	return nil
}

func display(v calc.Value) string {
	if v.Unit == "" {
		return v.Display
	}
	return v.Display + " " + v.Unit
}

func newShareCmd(registry *calc.Registry) *cobra.Command {
	var (
		sets   []string
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:               "share <calculator>",
		Short:             "Export a result summary as text, JSON, PDF or XLSX",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSlugs(registry),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookup(registry, args[0])
			if err != nil {
				return err
			}
			f, err := share.ParseFormat(format)
			if err != nil {
				return err
			}
			exporter, err := share.For(f)
			if err != nil {
				return err
			}
			raw, err := parseSets(d, sets)
			if err != nil {
				return err
			}
			res, err := d.RunMap(raw)
			if err != nil {
				return err
			}
			summary := calc.SummarizeMap(d, raw, res)

			if output == "" && (f == share.FormatPDF || f == share.FormatXLSX) {
				output = share.Filename(summary, exporter)
			}
			if output == "" || output == "-" {
				return exporter.Export(cmd.OutOrStdout(), summary)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := exporter.Export(file, summary); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "input value as name=value (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "text, json, pdf or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; binary formats default to a file named after the calculator")
	return cmd
}

func newBatchCmd(registry *calc.Registry) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:               "batch <calculator> <file.xlsx>",
		Short:             "Compute every row of a spreadsheet",
		Long:              "batch reads the first sheet of a workbook. The header row names the fields; each further row is one calculation.",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeSlugs(registry),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookup(registry, args[0])
			if err != nil {
				return err
			}

			if template {
				f, err := os.Create(args[1])
				if err != nil {
					return fmt.Errorf("create %s: %w", args[1], err)
				}
				if err := batch.Template(f, d); err != nil {
					_ = f.Close()
					return err
				}
				return f.Close()
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			report, err := batch.Run(f, d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ROW\tRESULT")
			for _, row := range report.Rows {
				if row.Error != "" {
					fmt.Fprintf(tw, "%d\terror: %s\n", row.Row, row.Error)
					continue
				}
				fmt.Fprintf(tw, "%d\t%s\n", row.Row, display(row.Result.Primary))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d rows, %d failed\n", report.Count, report.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, "write an empty workbook with the header row instead")
	return cmd
}

func newTUICmd(registry *calc.Registry) *cobra.Command {
	return &cobra.Command{
		Use:               "tui <calculator>",
		Short:             "Open a calculator in the interactive terminal UI",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSlugs(registry),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookup(registry, args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(d),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
