package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scrapekit/pkg/useragent"
)

// NewUserAgentCmd creates the command that prints random User-Agents.
func NewUserAgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "useragent",
		Short: "Print random User-Agent strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return err
			}
			if all {
				for _, ua := range useragent.All() {
					fmt.Fprintln(cmd.OutOrStdout(), ua)
				}
				return nil
			}

			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), useragent.Random())
			}
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 1, "Number of User-Agents to print")
	cmd.Flags().Bool("all", false, "Print the whole list instead")

	return cmd
}
