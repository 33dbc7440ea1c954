package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/cmmoran/emmetcpp/pkg/action/diff"
	"github.com/cmmoran/emmetcpp/pkg/cppgen"
)

func init() {
	rootCmd.AddCommand(NewDiffCommand())
}

func NewDiffCommand() *cobra.Command {
	var options = cppgen.NewOptions()

	var diffCmd = &cobra.Command{
		Use:   "diff <description>",
		Short: "show how generated files would change",
		Long:  "Render a class description in memory and diff it against the files in the output directory without writing anything",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, args []string) error {
			return applyConfig(c, options)
		},
		RunE: func(c *cobra.Command, args []string) error {
			report, err := diff.Generate(args[0], options)
			if err != nil {
				return err
			}
			if report.Previous != "" && report.Previous != args[0] {
				pterm.Info.Printfln("%s was generated from %s", report.Class, report.Previous)
			}
			for _, d := range report.Files {
				switch {
				case d.Missing:
					pterm.Warning.Printfln("%s does not exist", d.Path)
				case !d.Changed():
					pterm.Info.Printfln("%s is up to date", d.Path)
					continue
				}
				_, _ = fmt.Fprintf(c.OutOrStdout(), "--- %s\n%s\n", d.Path, d.Diff)
			}
			return nil
		},
	}
	addOutputFlags(diffCmd, options)

	return diffCmd
}
