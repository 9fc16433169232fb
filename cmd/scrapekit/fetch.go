package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"scrapekit/internal/config"
	"scrapekit/internal/logger"
	"scrapekit/pkg/scraper"
)

func scraperConfig(cfg *config.Config) scraper.Config {
	return scraper.Config{
		Timeout:   cfg.Scraper.Timeout,
		APIKey:    cfg.Proxy.APIKey,
		UserAgent: cfg.Scraper.UserAgent,
	}
}

// NewFetchCmd creates the command that sends one GET request the way a
// scraper would: configured timeout, rotating User-Agent, Crawlera proxy.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Send one GET request through the configured scraping client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New("fetch")
			id := logger.GenerateID()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			maxBytes, err := cmd.Flags().GetInt64("max-bytes")
			if err != nil {
				return err
			}

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, args[0], nil)
			if err != nil {
				return fmt.Errorf("invalid url: %w", err)
			}

			resp, err := scraper.NewClient(scraperConfig(cfg)).Do(req)
			if err != nil {
				log.Error(id, "GET %s failed: %v", args[0], err)
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= http.StatusBadRequest {
				log.Warn(id, "GET %s returned %s", args[0], resp.Status)
			} else {
				log.Info(id, "GET %s returned %s", args[0], resp.Status)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Status)
			if _, err := io.Copy(cmd.OutOrStdout(), io.LimitReader(resp.Body, maxBytes)); err != nil {
				return fmt.Errorf("failed to read response: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Int64("max-bytes", 64<<10, "Print at most this many bytes of the body")

	return cmd
}
