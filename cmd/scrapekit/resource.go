package main

import (
	"github.com/spf13/cobra"

	"scrapekit/pkg/resource"
)

type tableOutput struct {
	Columns []string       `json:"columns" yaml:"columns"`
	Rows    []resource.Row `json:"rows" yaml:"rows"`
}

// NewResourceCmd creates the command that prints a bundled table.
func NewResourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource <path>",
		Short: "Print a bundled CSV resource",
		Long: `Print a CSV file bundled under resources/, for example:

  scrapekit resource data/countries.csv --limit 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd, cfg)
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}
			column, err := cmd.Flags().GetString("where")
			if err != nil {
				return err
			}
			value, err := cmd.Flags().GetString("equals")
			if err != nil {
				return err
			}

			table, err := resource.Load(args[0])
			if err != nil {
				return err
			}
			if column != "" {
				table = table.Filter(column, value)
			}

			rows := table.Rows
			if limit > 0 && limit < len(rows) {
				rows = rows[:limit]
			}

			return writeOutput(cmd.OutOrStdout(), format, tableOutput{Columns: table.Columns, Rows: rows})
		},
	}

	cmd.Flags().String("format", "json", "Output format (json or yaml)")
	cmd.Flags().Int("limit", 0, "Print at most this many rows (0 prints all)")
	cmd.Flags().String("where", "", "Only print rows whose value in this column matches --equals")
	cmd.Flags().String("equals", "", "Value the --where column must equal")

	return cmd
}
