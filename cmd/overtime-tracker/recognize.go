package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsuanlin/overtime-tracker/internal/common"
	"github.com/hsuanlin/overtime-tracker/internal/llm"
	"github.com/hsuanlin/overtime-tracker/internal/llm/openai"
	"github.com/hsuanlin/overtime-tracker/internal/pipeline"
	"github.com/hsuanlin/overtime-tracker/internal/store"
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize <image>...",
	Short: "Recognize one batch of overtime form images",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecognize,
}

func runRecognize(cmd *cobra.Command, args []string) error {
	cfg, err := common.Load(configPath, nil)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := openai.NewClient(openai.Config{
		APIKey:               cfg.OpenAI.APIKey,
		BaseURL:              cfg.OpenAI.BaseURL,
		Model:                cfg.OpenAI.Model,
		Timeout:              cfg.OpenAI.Timeout(),
		InputRatePerMillion:  cfg.OpenAI.InputRatePerMillion,
		OutputRatePerMillion: cfg.OpenAI.OutputRatePerMillion,
	}, slog.Default())

	recognizer := pipeline.NewRecognizer(client, store.NewStore(slog.Default()), cfg.Output.Dir, slog.Default())

	// The blocking call runs on a worker goroutine; this context only waits
	// for the single completion handoff.
	outcome := <-recognizer.ProcessAsync(context.Background(), args)
	if outcome.Err != nil {
		return recognizeFailure(outcome.Err)
	}

	rec := outcome.Result.Record
	fmt.Printf("Recognized %d entries from %d image(s)\n", rec.TotalEntries, rec.Metadata.ImageCount)
	fmt.Printf("Tokens: %d prompt + %d completion = %d total\n",
		rec.TokenUsage.PromptTokens, rec.TokenUsage.CompletionTokens, rec.TokenUsage.TotalTokens)
	fmt.Printf("Cost: $%.6f\n", rec.CostUSD)
	fmt.Printf("Saved: %s\n", outcome.Result.Path)
	return nil
}

// recognizeFailure maps the error taxonomy to actionable messaging.
func recognizeFailure(err error) error {
	switch {
	case errors.Is(err, llm.ErrAuthentication):
		fmt.Fprintln(os.Stderr, "The API key was rejected; check OPENAI_API_KEY.")
	case errors.Is(err, llm.ErrConnection):
		fmt.Fprintln(os.Stderr, "Could not reach the API; check your network connection.")
	case errors.Is(err, llm.ErrRateLimited):
		fmt.Fprintln(os.Stderr, "API quota exhausted; wait a while before retrying.")
	}
	return err
}
