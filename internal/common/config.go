package common

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// placeholderAPIKey is the sample value shipped in .env templates; it is
// rejected so a copy-pasted template fails fast instead of burning a round
// trip on a 401.
const placeholderAPIKey = "sk-your-api-key-here"

// Config holds all application configuration.
type Config struct {
	OpenAI OpenAIConfig `koanf:"openai"`
	Output OutputConfig `koanf:"output"`
}

// OpenAIConfig holds the extraction credential and model selection.
type OpenAIConfig struct {
	APIKey               string  `koanf:"apikey"`
	Model                string  `koanf:"model"`
	BaseURL              string  `koanf:"baseurl"`
	TimeoutSeconds       int     `koanf:"timeoutseconds"`
	InputRatePerMillion  float64 `koanf:"inputrate"`
	OutputRatePerMillion float64 `koanf:"outputrate"`
}

// OutputConfig holds where session files are written.
type OutputConfig struct {
	Dir string `koanf:"dir"`
}

// Timeout returns the HTTP timeout for extraction calls.
func (c OpenAIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load builds the configuration from struct defaults, an optional YAML file,
// and environment variables, in ascending precedence. The environment
// contract is OPENAI_API_KEY, OPENAI_MODEL, OPENAI_BASE_URL and OUTPUT_DIR.
func Load(path string, logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	k := koanf.New(".")

	err := k.Load(structs.Provider(Config{
		OpenAI: OpenAIConfig{
			Model:          "gpt-5-mini-2025-08-07",
			TimeoutSeconds: 120,
		},
		Output: OutputConfig{
			Dir: "./output",
		},
	}, "koanf"), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if os.IsNotExist(err) {
				logger.Info("config.file.absent", "path", path)
			} else {
				return Config{}, fmt.Errorf("load config file %s: %w", path, err)
			}
		} else {
			logger.Info("config.file.loaded", "path", path)
		}
	}

	err = k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			switch key {
			case "OPENAI_API_KEY":
				return "openai.apikey", value
			case "OPENAI_MODEL":
				return "openai.model", value
			case "OPENAI_BASE_URL":
				return "openai.baseurl", value
			case "OUTPUT_DIR":
				return "output.dir", value
			}
			return "", nil
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration once, before any extraction call, and
// prepares the output directory.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.OpenAI.APIKey == placeholderAPIKey {
		return fmt.Errorf("OPENAI_API_KEY is still the placeholder value; set a real credential")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(c.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", c.Output.Dir, err)
	}
	return nil
}
