// FILE: src/cmd/vatnotify/main.go
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"vatnotify/src/internal/config"
	"vatnotify/src/internal/report"
	"vatnotify/src/internal/slack"
	"vatnotify/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

func main() {
	if err := parseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Initialize output handler with quiet mode
	InitOutputHandler(*quiet)

	// Handle version flag
	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Load configuration with CLI overrides
	cfg, err := config.Load(&config.Overrides{
		ConfigFile: *configFile,
		LogFile:    *logFile,
		Channel:    *channel,
		WebhookURL: *webhookURL,
		Quiet:      *quiet,
		LogOutput:  *logOutput,
		LogLevel:   *logLevel,
	})
	if err != nil {
		FatalError(1, "Failed to load config: %v\n", err)
	}

	// Config file may enable quiet mode even when the flag did not
	output.SetQuiet(cfg.Quiet)

	if err := initializeLogger(cfg); err != nil {
		FatalError(1, "Failed to initialize logger: %v\n", err)
	}
	defer shutdownLogger()

	logger.Info("msg", "vatnotify starting",
		"version", version.String(),
		"log_file", cfg.LogFile,
		"channel", cfg.Channel,
		"dry_run", *dryRun)

	if err := run(cfg); err != nil {
		logger.Error("msg", "Notification failed", "error", err)
		shutdownLogger()
		FatalError(1, "Error: %v\n", err)
	}
}

// run executes the single pass: read the log, build the payload, post it.
func run(cfg *config.Config) error {
	rep, err := report.Scan(cfg.LogFile)
	if err != nil {
		return err
	}

	logger.Info("msg", "Log file summarized",
		"total_lines", rep.TotalLines(),
		"info_lines", rep.InfoLines,
		"reduced_lines", len(rep.Reduced))

	// Console contract: raw line list, then the payload, then the status
	for _, line := range rep.Lines {
		Print("%s\n", line)
	}

	msg := slack.NewMessage(cfg.Channel, cfg.Username, cfg.IconEmoji, rep)

	body, err := slack.Encode(msg)
	if err != nil {
		return err
	}
	Print("%s\n", body)

	if *dryRun {
		logger.Info("msg", "Dry run, skipping webhook delivery")
		return nil
	}

	client := slack.NewClient(cfg.WebhookURL, time.Duration(cfg.TimeoutSeconds)*time.Second, logger)
	status, err := client.Post(body)
	if err != nil {
		return err
	}

	Print("%d\n", status)
	return nil
}

// initializeLogger sets up the diagnostic logger based on configuration
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	if cfg.Quiet {
		// In quiet mode, disable ALL logging output
		if err := logger.ApplyConfigString(
			"disable_file=true",
			"enable_stdout=false",
			"level=255"); err != nil {
			return err
		}
		return logger.Start()
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	configArgs := []string{
		fmt.Sprintf("level=%d", levelValue),
		"disable_file=true",
	}

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "enable_stdout=false")

	case "stdout":
		configArgs = append(configArgs,
			"enable_stdout=true",
			"stdout_target=stdout")

	case "stderr":
		configArgs = append(configArgs,
			"enable_stdout=true",
			"stdout_target=stderr")

	default:
		return fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	if err := logger.ApplyConfigString(configArgs...); err != nil {
		return err
	}
	return logger.Start()
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort - can't log the shutdown error
			Error("Logger shutdown error: %v\n", err)
		}
	}
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
