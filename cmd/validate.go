package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinderworks/solgen/internal/config"
	"github.com/cinderworks/solgen/internal/verify"
)

// errIncomplete signals the exit-1 contract without extra noise; the report
// already told the user what is missing.
var errIncomplete = errors.New("verification incomplete")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Verify generated projects against the required artifact checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		compile, _ := cmd.Flags().GetBool("compile")
		test, _ := cmd.Flags().GetBool("test")
		if full, _ := cmd.Flags().GetBool("full"); full {
			compile, test = true, true
		}

		runner := &verify.Runner{
			Dir:           cfg.OutputDir,
			RequireDeploy: cfg.RequireDeployScript,
			Compile:       compile,
			Test:          test,
		}
		if compile || test {
			tool := verify.NewHardhatTool(cfg.HardhatPath, cfg.Verbose)
			if err := tool.Validate(); err != nil {
				return err
			}
			runner.Build = tool
		}

		summary, err := runner.Run(cmd.Context())
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := verify.WriteJSON(cmd.OutOrStdout(), summary); err != nil {
				return err
			}
		} else {
			verify.Print(cmd.OutOrStdout(), summary)
		}

		if record, _ := cmd.Flags().GetBool("record"); record {
			history, err := verify.OpenHistory(cfg.HistoryDB)
			if err != nil {
				return err
			}
			defer history.Close()
			if _, err := history.RecordRun(summary); err != nil {
				return err
			}
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "recorded run in %s\n", cfg.HistoryDB)
			}
		}

		if !summary.AllComplete {
			cmd.SilenceUsage = true
			return errIncomplete
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("compile", false, "compile each complete project with hardhat")
	validateCmd.Flags().Bool("test", false, "run each complete project's test suite")
	validateCmd.Flags().Bool("full", false, "shorthand for --compile --test")
	validateCmd.Flags().Bool("json", false, "emit the report as JSON")
	validateCmd.Flags().Bool("record", false, "store this run in the verification history")

	rootCmd.AddCommand(validateCmd)
}
