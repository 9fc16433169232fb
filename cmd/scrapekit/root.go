package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"scrapekit/internal/config"
)

// NewRootCmd creates the root command and registers every subcommand.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrapekit",
		Short: "Helpers for scraping clients: bundled data, user agents and proxies",
		Long: `scrapekit exposes the helpers a scraping client relies on:
bundled CSV resources, randomized User-Agent headers and the Crawlera
proxy settings. Bundled resources can also be imported into SQLite.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print the loaded configuration")

	cmd.AddCommand(NewResourceCmd())
	cmd.AddCommand(NewUserAgentCmd())
	cmd.AddCommand(NewProxyCmd())
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewImportsCmd())
	cmd.AddCommand(NewGenConfigCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		config.PrintConfig(cfg)
	}
	return cfg, nil
}

// outputFormat returns the --format flag when given, else the configured format.
func outputFormat(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if cmd.Flags().Changed("format") {
		return cmd.Flags().GetString("format")
	}
	return cfg.Output.Format, nil
}

func writeOutput(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// NewGenConfigCmd creates the command that writes a default config file.
func NewGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-config [path]",
		Short: "Generate a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.SaveConfigTemplate(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default config generated: %s\n", path)
			return nil
		},
	}
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scrapekit v%s\n", Version)
		},
	}
}
