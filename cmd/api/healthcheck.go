package main

import (
	"fmt"
	"net/http"
	"time"

	"pet-api/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

func newHealthcheckCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Probe GET /health on the local server (for container HEALTHCHECK)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			client, err := httpclient.New(fmt.Sprintf("http://127.0.0.1:%d", cfg.Port), timeout)
			if err != nil {
				return err
			}

			var out struct {
				Status string `json:"status"`
			}
			if err := client.DoJSON(cmd.Context(), http.MethodGet, "/health", nil, &out); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.Status)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "request timeout")
	return cmd
}
