package cmd

import (
	"fmt"
	"os"

	"github.com/inkinquiry/cmdmaster/internal/app"
	"github.com/inkinquiry/cmdmaster/internal/llm"
	"github.com/inkinquiry/cmdmaster/internal/progress"
	"github.com/inkinquiry/cmdmaster/internal/store"
	"github.com/inkinquiry/cmdmaster/internal/tutorial"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tracker := progress.New(ctx, st.KV())

	opts := app.Options{
		Tracker: tracker,
	}

	cfg, ok := llmConfig()
	if !ok {
		fmt.Fprintln(os.Stderr, "No LLM API key configured.")
		fmt.Fprintln(os.Stderr, "AI tutorials will be unavailable.")
	} else {
		provider, err := llm.NewProvider(ctx, cfg, st.LLMEvents())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI tutorials will be unavailable.")
		} else {
			opts.Tutorials = tutorial.NewService(provider, tutorial.DefaultConfig())
		}
	}

	return app.Run(opts)
}

// llmConfig prefers explicit CMDMASTER_* settings, then probes the
// standard provider key env vars.
func llmConfig() (llm.Config, bool) {
	explicit := os.Getenv("CMDMASTER_LLM_PROVIDER") != "" ||
		os.Getenv("CMDMASTER_GEMINI_API_KEY") != "" ||
		os.Getenv("CMDMASTER_OPENAI_API_KEY") != "" ||
		os.Getenv("CMDMASTER_ANTHROPIC_API_KEY") != ""
	if explicit {
		return llm.ConfigFromEnv(), true
	}
	return llm.DiscoverConfig()
}
