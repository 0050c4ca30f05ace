package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinderworks/solgen/internal/config"
	"github.com/cinderworks/solgen/internal/scaffold"
)

var createExampleCmd = &cobra.Command{
	Use:   "create-example <name>",
	Short: "Scaffold one example project from its registry definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		result, err := engine.GenerateExample(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "generated %s (%d files)\n", args[0], len(result.CreatedPaths))
		return nil
	},
}

var createCategoryCmd = &cobra.Command{
	Use:   "create-category <name|all>",
	Short: "Scaffold every example in a category, or all categories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		if args[0] == "all" {
			result, err := engine.GenerateAll()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d files\n", len(result.CreatedPaths))
			if len(result.Failures) > 0 {
				for _, f := range result.Failures {
					fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s: %v\n", f.Item, f.Err)
				}
				return fmt.Errorf("%d categories failed to generate", len(result.Failures))
			}
			return nil
		}

		result, err := engine.GenerateCategory(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "generated category %s (%d files)\n", args[0], len(result.CreatedPaths))
		return nil
	},
}

// newEngine builds a scaffold engine from the loaded configuration.
func newEngine() (*scaffold.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	reg, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	return scaffold.New(reg, cfg.OutputDir), nil
}

func init() {
	rootCmd.AddCommand(createExampleCmd)
	rootCmd.AddCommand(createCategoryCmd)
}
