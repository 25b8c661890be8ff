// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trip-planner/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planner over HTTP",
	Long: `Serve exposes the routed pipelines as an HTTP API:

  GET  /healthz   liveness probe
  POST /v1/route  classify a request ({"text": "..."})
  POST /v1/plan   run the routed pipeline ({"text": "..."})`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		planner, err := buildPlanner(cmd.Context(), cfg, os.Stderr)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)
		return server.New(planner).Run(cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config, :8080)")

	rootCmd.AddCommand(serveCmd)
}
