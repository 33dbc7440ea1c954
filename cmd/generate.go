package cmd

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/emmetcpp/pkg/action/generate"
	"github.com/cmmoran/emmetcpp/pkg/cppgen"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

// addOutputFlags registers the flags shared by commands that resolve output files.
func addOutputFlags(c *cobra.Command, options *cppgen.Options) {
	c.Flags().StringVarP(&options.OutDir, "output-directory", "o", ".", "directory the header and source files are written to")
	c.Flags().StringVarP(&options.Manifest, "manifest", "m", cppgen.DefaultManifest, "manifest file recording generated classes, relative to the output directory (\"-\" disables)")
	c.Flags().BoolVar(&options.Override, "override", false, "overwrite existing files")
	c.Flags().BoolVar(&options.Append, "append", false, "append to existing files")
	c.MarkFlagsMutuallyExclusive("override", "append")
}

// applyConfig fills options from viper for every flag that was not set on
// the command line. Keys live under "generate".
func applyConfig(c *cobra.Command, options *cppgen.Options) error {
	if err := viper.BindPFlag("generate.out_dir", c.Flags().Lookup("output-directory")); err != nil {
		return err
	}
	if err := viper.BindPFlag("generate.manifest", c.Flags().Lookup("manifest")); err != nil {
		return err
	}
	opts := []cppgen.Option{
		cppgen.WithOutDir(viper.GetString("generate.out_dir")),
		cppgen.WithManifest(viper.GetString("generate.manifest")),
	}

	if !c.Flags().Changed("override") && !c.Flags().Changed("append") {
		override, appendMode, err := cppgen.ParseMode(viper.GetString("generate.mode"))
		if err != nil {
			return err
		}
		options.Override, options.Append = false, false
		if override {
			opts = append(opts, cppgen.WithOverride())
		}
		if appendMode {
			opts = append(opts, cppgen.WithAppend())
		}
	}

	for _, fn := range opts {
		fn(options)
	}
	return nil
}

func NewGenerateCommand() *cobra.Command {
	var options = cppgen.NewOptions()

	// generateCmd represents the emmetcpp generate command
	var generateCmd = &cobra.Command{
		Use:     "generate <description>",
		Aliases: []string{"gen"},
		Short:   "generate a C++ class",
		Long:    "Generate <Name>.hpp and, for non-template classes, <Name>.cpp from a class description",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, args []string) error {
			return applyConfig(c, options)
		},
		RunE: func(c *cobra.Command, args []string) error {
			report, err := generate.Generate(args[0], options)
			if err != nil {
				return err
			}
			for _, f := range report.Files {
				kind := "Source"
				if filepath.Ext(f) == ".hpp" {
					kind = "Header"
				}
				pterm.Success.Printfln("%s file generated successfully at %s", kind, f)
			}
			return nil
		},
	}
	addOutputFlags(generateCmd, options)

	return generateCmd
}
