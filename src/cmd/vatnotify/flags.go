// FILE: src/cmd/vatnotify/flags.go
package main

import (
	"flag"
	"fmt"
	"os"
)

// Command-line flags
var (
	// General flags
	configFile  = flag.String("config", "", "Config file path")
	logFile     = flag.String("log-file", "", "Crawler log file to summarize (overrides config)")
	channel     = flag.String("channel", "", "Target channel without the leading '#' (overrides config)")
	webhookURL  = flag.String("webhook-url", "", "Webhook endpoint URL (overrides config)")
	dryRun      = flag.Bool("dry-run", false, "Build and print the payload without posting it")
	quiet       = flag.Bool("quiet", false, "Suppress console output")
	showVersion = flag.Bool("version", false, "Show version information")

	// Logging flags
	logOutput = flag.String("log-output", "", "Diagnostic log output: stdout, stderr, none (overrides config)")
	logLevel  = flag.String("log-level", "", "Diagnostic log level: debug, info, warn, error (overrides config)")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "vatnotify - VAT ABCD crawler log notification\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")

	fmt.Fprintf(os.Stderr, "\nGeneral:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -log-file string\n\tCrawler log file to summarize (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -channel string\n\tTarget channel without the leading '#' (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -webhook-url string\n\tWebhook endpoint URL (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -dry-run\n\tBuild and print the payload without posting it\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress console output\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")

	fmt.Fprintf(os.Stderr, "\nLogging:\n")
	fmt.Fprintf(os.Stderr, "  -log-output string\n\tDiagnostic log output: stdout, stderr, none (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-level string\n\tDiagnostic log level: debug, info, warn, error (overrides config)\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Summarize the crawler log and post to the configured webhook\n")
	fmt.Fprintf(os.Stderr, "  %s\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "  # Inspect the payload without sending anything\n")
	fmt.Fprintf(os.Stderr, "  %s --dry-run\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "  # Post a different log file to a different channel\n")
	fmt.Fprintf(os.Stderr, "  %s --log-file /var/log/crawl.log --channel vat-test\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  slack_channel          Target channel (legacy crawler deployment name)\n")
	fmt.Fprintf(os.Stderr, "  slack_webhook_url      Webhook endpoint URL (legacy crawler deployment name)\n")
	fmt.Fprintf(os.Stderr, "  VATNOTIFY_CONFIG_FILE  Config file path\n")
	fmt.Fprintf(os.Stderr, "  VATNOTIFY_*            Any config field, e.g. VATNOTIFY_CHANNEL\n")
}

func parseFlags() error {
	flag.Parse()

	// Validate log-output flag if provided
	if *logOutput != "" {
		validOutputs := map[string]bool{
			"stdout": true, "stderr": true, "none": true,
		}
		if !validOutputs[*logOutput] {
			return fmt.Errorf("invalid log-output: %s (valid: stdout, stderr, none)", *logOutput)
		}
	}

	// Validate log-level flag if provided
	if *logLevel != "" {
		if _, err := parseLogLevel(*logLevel); err != nil {
			return fmt.Errorf("invalid log-level: %s (valid: debug, info, warn, error)", *logLevel)
		}
	}

	return nil
}
