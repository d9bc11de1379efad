package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/TinyTaru/VintagestoryModmaker/internal/application/errors"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/validation"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <" + strings.Join(validation.Kinds(), "|") + "> <file.json>",
		Short: "Check a JSON document against its schema",
		Long: `Check a hand-written or generated JSON document against the schema for its
kind. Every failing location is listed.

Examples:
  modmaker validate recipe assets/mymod/recipes/grid/pickaxe.json
  modmaker validate modinfo modinfo.json`,
		Args: cobra.ExactArgs(2),
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			return runValidate(cc, cmd, args[0], args[1])
		}),
	}

	return cmd
}

func runValidate(cc *CommandContext, cmd *cobra.Command, kind, file string) error {
	//nolint:gosec // G304: the user names the file to validate
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	err = cc.Container.DocumentValidator().Validate(kind, data)
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s\n", file, verr.Message)
		for _, detail := range verr.Details {
			fmt.Fprintf(out, "  - %s\n", detail)
		}
		return fmt.Errorf("%s is not a valid %s document", file, kind)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s document\n", file, kind)
	return nil
}
