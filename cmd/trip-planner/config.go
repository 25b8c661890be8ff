// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	yaml "go.yaml.in/yaml/v3"

	"github.com/pdiddy/trip-planner/internal/cse"
	"github.com/pdiddy/trip-planner/internal/httputil"
	"github.com/pdiddy/trip-planner/internal/llm"
	"github.com/pdiddy/trip-planner/internal/pipeline"
	"github.com/pdiddy/trip-planner/pkg/types"
)

// Secret file names under .secrets/.
const (
	secretOpenAIKey = "openai-api-key"
	secretGeminiKey = "gemini-api-key"
	secretCSEKey    = "google-cse-api-key"
	secretCXWeather = "google-cse-cx-weather"
	secretCXSafety  = "google-cse-cx-safety"
)

// resolveConfig builds the immutable pipeline configuration from the
// config file, environment, and loaded secrets. Components receive this
// value; none of them reads the process environment at call sites.
func resolveConfig() types.PipelineConfig {
	viper.SetDefault("generator.provider", string(types.ProviderOpenAI))
	viper.SetDefault("search.max_results", 5)
	viper.SetDefault("router.fallback_threshold", 0.7)
	viper.SetDefault("validation.max_concurrency", 5)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.user_agent", httputil.DefaultUserAgent)

	provider := types.GeneratorProvider(viper.GetString("generator.provider"))
	generatorSecret := secretOpenAIKey
	if provider == types.ProviderGemini {
		generatorSecret = secretGeminiKey
	}

	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}

	return types.PipelineConfig{
		Generator: types.GeneratorConfig{
			Provider: provider,
			Model:    viper.GetString("generator.model"),
			APIKey:   secretDefault(generatorSecret, viper.GetString("generator.api_key")),
		},
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			APIKey:     secretDefault(secretCSEKey, viper.GetString("search.api_key")),
			CXWeather:  secretDefault(secretCXWeather, viper.GetString("search.cx_weather")),
			CXSafety:   secretDefault(secretCXSafety, viper.GetString("search.cx_safety")),
			MaxResults: viper.GetInt("search.max_results"),
		},
		Router: types.RouterConfig{
			FallbackThreshold: viper.GetFloat64("router.fallback_threshold"),
		},
		Validation: types.ValidationConfig{
			MaxConcurrency: viper.GetInt("validation.max_concurrency"),
		},
		Server: types.ServerConfig{
			Addr: viper.GetString("server.addr"),
		},
	}
}

// buildPlanner wires the generator, search client, and pipelines from the
// resolved config. Diagnostics go to w.
func buildPlanner(ctx context.Context, cfg types.PipelineConfig, w io.Writer) (*pipeline.Planner, error) {
	gen, err := llm.New(ctx, cfg.Generator)
	if err != nil {
		return nil, err
	}

	var search *cse.Client
	if cfg.Search.APIKey != "" {
		search = cse.NewClient(cfg.Search, os.Stderr)
	}
	if search == nil {
		return pipeline.New(gen, nil, cfg, w), nil
	}
	return pipeline.New(gen, search, cfg, w), nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration as YAML",
	Long: `Config shows the configuration the planner would run with after merging
the config file, environment, and .secrets/ overrides. Key material is
redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig()
		cfg.Generator.APIKey = redactSecret(cfg.Generator.APIKey)
		cfg.Search.APIKey = redactSecret(cfg.Search.APIKey)

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func redactSecret(v string) string {
	if v == "" {
		return ""
	}
	return "<set>"
}

func init() {
	rootCmd.AddCommand(configCmd)
}
