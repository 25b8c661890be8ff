// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route <request>",
	Short: "Classify a travel request without running a pipeline",
	Long: `Route shows which pipeline a request would take: full, clarify,
candidates_only, or itinerary_only. The deterministic rule router decides
first; when its confidence is below the fallback threshold the LLM router
is consulted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig()
		planner, err := buildPlanner(cmd.Context(), cfg, os.Stderr)
		if err != nil {
			return err
		}

		decision := planner.Route(cmd.Context(), strings.Join(args, " "))

		out, err := json.MarshalIndent(decision, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)
}
