// FILE: src/internal/config/validation.go
package config

import (
	"fmt"
	"net/url"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

// validate checks the configuration before any work starts. Missing
// channel or webhook values fail here rather than at POST time.
func (c *Config) validate() error {
	if err := lconfig.NonEmpty(c.Channel); err != nil {
		return fmt.Errorf("missing channel (set %s or channel in config)", envLegacyChannel)
	}
	if strings.HasPrefix(c.Channel, "#") {
		return fmt.Errorf("channel must not include the leading '#': %s", c.Channel)
	}

	if err := lconfig.NonEmpty(c.WebhookURL); err != nil {
		return fmt.Errorf("missing webhook URL (set %s or webhook_url in config)", envLegacyWebhook)
	}
	u, err := url.Parse(c.WebhookURL)
	if err != nil {
		return fmt.Errorf("invalid webhook URL '%s': %w", c.WebhookURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid webhook URL scheme '%s' (must be http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("webhook URL has no host: %s", c.WebhookURL)
	}

	if err := lconfig.NonEmpty(c.LogFile); err != nil {
		return fmt.Errorf("missing log file path")
	}

	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid timeout_seconds: %d (must be positive)", c.TimeoutSeconds)
	}

	return validateLogConfig(&c.Logging)
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"stdout": true, "stderr": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	return nil
}
