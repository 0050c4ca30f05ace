package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinderworks/solgen/internal/config"
)

var listCmd = &cobra.Command{
	Use:       "list [examples|categories]",
	Short:     "List registered examples or categories",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"examples", "categories"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		reg, err := buildRegistry(cfg)
		if err != nil {
			return err
		}

		what := "examples"
		if len(args) == 1 {
			what = args[0]
		}

		switch what {
		case "examples":
			for _, name := range reg.ExampleNames() {
				def, err := reg.Example(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", name, def.Title)
			}
		case "categories":
			for _, name := range reg.CategoryNames() {
				cat, err := reg.Category(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s (%d examples)\n", name, cat.Title, len(cat.Examples))
			}
		default:
			return fmt.Errorf("unknown listing %q (want examples or categories)", what)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
