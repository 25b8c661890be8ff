// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <request>",
	Short: "Run a travel request through its routed pipeline",
	Long: `Plan classifies the request and executes the selected pipeline end to
end. A full request extracts the traveler profile, generates destination
candidates, validates each across five concurrent checks (optionally
grounded in web search), aggregates the verdicts, and synthesizes a final
itinerary. The result is printed as JSON.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		var diag io.Writer = os.Stderr
		if quiet {
			diag = io.Discard
		}

		cfg := resolveConfig()
		planner, err := buildPlanner(cmd.Context(), cfg, diag)
		if err != nil {
			return err
		}

		result, err := planner.Run(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	planCmd.Flags().Bool("quiet", false, "suppress stage diagnostics on stderr")

	rootCmd.AddCommand(planCmd)
}
