package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lacquerai/readnum/internal/prompt"
)

// schemaCmd prints the JSON schema of the report written by --output json
var schemaCmd = &cobra.Command{
	Use:    "schema",
	Short:  "Output the JSON schema of the report",
	Long:   `Output the JSON schema of the report printed by readnum --output json.`,
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := prompt.NewReportSchema()
		if err != nil {
			return fmt.Errorf("generating schema: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
