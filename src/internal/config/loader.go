// FILE: src/internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

// Legacy environment variable names used by the original crawler
// deployment. Kept as a fallback source so existing cron setups keep
// working without a config file.
const (
	envLegacyChannel = "slack_channel"
	envLegacyWebhook = "slack_webhook_url"
)

// Overrides carries CLI flag values applied on top of the layered config.
// Empty string fields mean "not set on the command line".
type Overrides struct {
	ConfigFile string
	LogFile    string
	Channel    string
	WebhookURL string
	Quiet      bool
	LogOutput  string
	LogLevel   string
}

// Load builds the configuration from defaults, the optional TOML file,
// environment variables and CLI overrides, then validates it.
// Precedence: CLI > VATNOTIFY_* env > file > legacy env > defaults.
func Load(ov *Overrides) (*Config, error) {
	configPath := GetConfigPath(ov)

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix("VATNOTIFY_").
		WithFile(configPath).
		WithEnvTransform(envTransform).
		WithSources(
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if ov != nil && ov.ConfigFile != "" {
			return nil, fmt.Errorf("config file not found: %s", ov.ConfigFile)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig, ""); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	applyLegacyEnv(finalConfig)
	applyOverrides(finalConfig, ov)

	return finalConfig, finalConfig.validate()
}

// applyLegacyEnv fills channel and webhook URL from the original env
// variable names when nothing above them in the chain set a value.
func applyLegacyEnv(cfg *Config) {
	if cfg.Channel == "" {
		cfg.Channel = os.Getenv(envLegacyChannel)
	}
	if cfg.WebhookURL == "" {
		cfg.WebhookURL = os.Getenv(envLegacyWebhook)
	}
}

func applyOverrides(cfg *Config, ov *Overrides) {
	if ov == nil {
		return
	}
	if ov.LogFile != "" {
		cfg.LogFile = ov.LogFile
	}
	if ov.Channel != "" {
		cfg.Channel = ov.Channel
	}
	if ov.WebhookURL != "" {
		cfg.WebhookURL = ov.WebhookURL
	}
	if ov.Quiet {
		cfg.Quiet = true
	}
	if ov.LogOutput != "" {
		cfg.Logging.Output = ov.LogOutput
	}
	if ov.LogLevel != "" {
		cfg.Logging.Level = ov.LogLevel
	}
}

func envTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	return "VATNOTIFY_" + env
}

// GetConfigPath resolves the TOML config file location.
func GetConfigPath(ov *Overrides) string {
	if ov != nil && ov.ConfigFile != "" {
		return ov.ConfigFile
	}

	if configFile := os.Getenv("VATNOTIFY_CONFIG_FILE"); configFile != "" {
		return configFile
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "vatnotify.toml")
	}

	return "vatnotify.toml"
}
