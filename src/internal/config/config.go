// FILE: src/internal/config/config.go
package config

// Config is the complete runtime configuration of vatnotify.
type Config struct {
	// Channel is the target chat channel, without the leading '#'
	Channel string `toml:"channel"`

	// WebhookURL is the full webhook endpoint URL
	WebhookURL string `toml:"webhook_url"`

	// LogFile is the crawler log file to summarize
	LogFile string `toml:"log_file"`

	// Username is the display name of the notification sender
	Username string `toml:"username"`

	// IconEmoji is the sender icon, e.g. ":volcano:"
	IconEmoji string `toml:"icon_emoji"`

	// TimeoutSeconds bounds the webhook request
	TimeoutSeconds int64 `toml:"timeout_seconds"`

	// Quiet suppresses console output
	Quiet bool `toml:"quiet"`

	Logging LogConfig `toml:"logging"`
}

// LogConfig configures the diagnostic logger, not the crawler log input.
type LogConfig struct {
	// Output mode: "stdout", "stderr", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`
}

func defaults() *Config {
	return &Config{
		LogFile:        "vat_abcd_crawler.log",
		Username:       "VAT Notifications",
		IconEmoji:      ":volcano:",
		TimeoutSeconds: 10,
		Logging: LogConfig{
			// Diagnostics default to stderr so stdout stays clean for
			// the line list, payload and status prints
			Output: "stderr",
			Level:  "info",
		},
	}
}
