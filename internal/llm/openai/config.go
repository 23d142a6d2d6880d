package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hsuanlin/overtime-tracker/internal/pricing"
)

// Config for the OpenAI vision client.
type Config struct {
	APIKey               string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL              string        // default https://api.openai.com/v1
	Model                string        // e.g. "gpt-5-mini-2025-08-07"
	Timeout              time.Duration // http client timeout
	InputRatePerMillion  float64       // USD per 1M prompt tokens
	OutputRatePerMillion float64       // USD per 1M completion tokens
}

// Client submits encoded images for structured recognition. It holds no
// session state across calls.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-5-mini-2025-08-07"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.InputRatePerMillion <= 0 {
		cfg.InputRatePerMillion = pricing.DefaultInputRatePerMillion
	}
	if cfg.OutputRatePerMillion <= 0 {
		cfg.OutputRatePerMillion = pricing.DefaultOutputRatePerMillion
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
