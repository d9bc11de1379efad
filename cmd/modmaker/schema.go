package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/validation"
)

func init() {
	rootCmd.AddCommand(newSchemaCmd())
}

func newSchemaCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "schema <" + strings.Join(validation.Kinds(), "|") + ">",
		Short: "Print the JSON Schema of a generated document",
		Long: `Print the JSON Schema modmaker validates a document kind against. Point an
editor at it to get completion while writing documents by hand.

Examples:
  modmaker schema recipe
  modmaker schema item --out schemas/item.schema.json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: validation.Kinds(),
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			data, err := validation.SchemaJSON(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			path, err := writeFile(cc, out, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the schema to this file instead of stdout")

	return cmd
}
