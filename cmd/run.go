package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dayoung/studypal/internal/app"
	"github.com/dayoung/studypal/internal/assistant"
	"github.com/dayoung/studypal/internal/summarize"
)

// runApp builds the dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveAPIConfig(cmd)
	if err != nil {
		return err
	}

	suggester := assistant.NewFromEnv()
	if assistant.ConfigFromEnv().APIKey == "" {
		fmt.Fprintln(os.Stderr, "ANTHROPIC_API_KEY not set; calendar suggestions use the built-in pool.")
	}

	return app.Run(app.Options{
		Client:    summarize.NewClient(cfg),
		Suggester: suggester,
	})
}

// resolveAPIConfig returns the backend config using the --api-url flag
// (highest priority), then STUDYPAL_API_URL, then the default.
func resolveAPIConfig(cmd *cobra.Command) (summarize.Config, error) {
	cfg := summarize.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.BaseURL = u
	}
	if err := cfg.Validate(); err != nil {
		return summarize.Config{}, err
	}
	return cfg, nil
}
