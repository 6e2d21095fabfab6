// FILE: src/internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := defaults()
	cfg.Channel = "vat"
	cfg.WebhookURL = "https://hooks.example.com/services/T/B/x"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validConfig().validate())
	})

	t.Run("MissingChannel", func(t *testing.T) {
		cfg := validConfig()
		cfg.Channel = ""
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing channel")
	})

	t.Run("ChannelWithHash", func(t *testing.T) {
		cfg := validConfig()
		cfg.Channel = "#vat"
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "leading '#'")
	})

	t.Run("MissingWebhookURL", func(t *testing.T) {
		cfg := validConfig()
		cfg.WebhookURL = ""
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing webhook URL")
	})

	t.Run("BadScheme", func(t *testing.T) {
		cfg := validConfig()
		cfg.WebhookURL = "ftp://hooks.example.com/x"
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheme")
	})

	t.Run("NoHost", func(t *testing.T) {
		cfg := validConfig()
		cfg.WebhookURL = "https:///services/T/B/x"
		assert.Error(t, cfg.validate())
	})

	t.Run("MissingLogFile", func(t *testing.T) {
		cfg := validConfig()
		cfg.LogFile = ""
		assert.Error(t, cfg.validate())
	})

	t.Run("ZeroTimeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.TimeoutSeconds = 0
		assert.Error(t, cfg.validate())
	})

	t.Run("InvalidLogOutput", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Output = "both"
		assert.Error(t, cfg.validate())
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Level = "trace"
		assert.Error(t, cfg.validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("LegacyEnv", func(t *testing.T) {
		t.Setenv("slack_channel", "vat-crawler")
		t.Setenv("slack_webhook_url", "https://hooks.example.com/services/T/B/x")

		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, "vat-crawler", cfg.Channel)
		assert.Equal(t, "https://hooks.example.com/services/T/B/x", cfg.WebhookURL)
		assert.Equal(t, "vat_abcd_crawler.log", cfg.LogFile)
		assert.Equal(t, "VAT Notifications", cfg.Username)
		assert.Equal(t, ":volcano:", cfg.IconEmoji)
	})

	t.Run("OverridesWinOverLegacyEnv", func(t *testing.T) {
		t.Setenv("slack_channel", "from-env")
		t.Setenv("slack_webhook_url", "https://hooks.example.com/env")

		cfg, err := Load(&Overrides{
			Channel:    "from-flag",
			WebhookURL: "https://hooks.example.com/flag",
			LogFile:    "other.log",
			Quiet:      true,
		})
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.Channel)
		assert.Equal(t, "https://hooks.example.com/flag", cfg.WebhookURL)
		assert.Equal(t, "other.log", cfg.LogFile)
		assert.True(t, cfg.Quiet)
	})

	t.Run("MissingValuesFailFast", func(t *testing.T) {
		t.Setenv("slack_channel", "")
		t.Setenv("slack_webhook_url", "")

		_, err := Load(nil)
		assert.Error(t, err)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		t.Setenv("slack_channel", "")
		t.Setenv("slack_webhook_url", "")

		path := filepath.Join(t.TempDir(), "vatnotify.toml")
		content := "channel = \"file-channel\"\n" +
			"webhook_url = \"https://hooks.example.com/file\"\n" +
			"log_file = \"crawl.log\"\n\n" +
			"[logging]\n" +
			"level = \"debug\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(&Overrides{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "file-channel", cfg.Channel)
		assert.Equal(t, "https://hooks.example.com/file", cfg.WebhookURL)
		assert.Equal(t, "crawl.log", cfg.LogFile)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("ExplicitConfigFileMissing", func(t *testing.T) {
		_, err := Load(&Overrides{ConfigFile: filepath.Join(t.TempDir(), "absent.toml")})
		assert.Error(t, err)
	})
}
