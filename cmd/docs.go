package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cinderworks/solgen/internal/config"
	"github.com/cinderworks/solgen/internal/docs"
)

var docsCmd = &cobra.Command{
	Use:   "generate-docs",
	Short: "Extract annotated documentation from test sources into markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = viper.BindPFlag("docs_input", cmd.Flags().Lookup("input"))
		_ = viper.BindPFlag("docs_output", cmd.Flags().Lookup("output"))

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		build := func() error {
			assembler, err := docs.ScanDir(cfg.DocsInput, cfg.TestPatterns)
			if err != nil {
				return err
			}
			written, err := assembler.WriteDocs(cfg.DocsOutput)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d documentation files to %s\n", len(written), cfg.DocsOutput)
			return nil
		}

		if err := build(); err != nil {
			return err
		}

		watch, _ := cmd.Flags().GetBool("watch")
		if !watch {
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "watching %s for changes...\n", cfg.DocsInput)
		return docs.Watch(cmd.Context(), cfg.DocsInput, cfg.TestPatterns, cfg.DocsOutput, func(written []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rebuilt %d documentation files\n", len(written))
		})
	},
}

func init() {
	docsCmd.Flags().String("input", "", "directory to scan for annotated tests")
	docsCmd.Flags().String("output", "", "directory for rendered documentation")
	docsCmd.Flags().Bool("watch", false, "rebuild documentation when sources change")

	rootCmd.AddCommand(docsCmd)
}
