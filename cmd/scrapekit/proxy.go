package main

import (
	"errors"

	"github.com/spf13/cobra"

	"scrapekit/pkg/proxy"
)

var errNoAPIKey = errors.New("no API key: pass --api-key or set SCRAPEKIT_PROXY_API_KEY")

// NewProxyCmd creates the command that prints the Crawlera proxy mapping.
func NewProxyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Print the Crawlera proxy mapping for an API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd, cfg)
			if err != nil {
				return err
			}

			apiKey := cfg.Proxy.APIKey
			if cmd.Flags().Changed("api-key") {
				if apiKey, err = cmd.Flags().GetString("api-key"); err != nil {
					return err
				}
			}
			if apiKey == "" {
				return errNoAPIKey
			}

			return writeOutput(cmd.OutOrStdout(), format, proxy.Proxies(apiKey))
		},
	}

	cmd.Flags().String("api-key", "", "Zyte (Crawlera) API key")
	cmd.Flags().String("format", "json", "Output format (json or yaml)")

	return cmd
}
