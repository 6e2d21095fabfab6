// FILE: src/internal/report/report.go
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Marker identifying informational log lines. Classification is a plain
// substring test, the crawler does not emit structured levels.
const infoMarker = "[INFO]"

// Report holds the line counts and the retained lines of one crawler log.
type Report struct {
	// Lines is every line of the log file in original order.
	Lines []string

	// Reduced is Lines with informational lines removed, order preserved.
	Reduced []string

	// InfoLines counts lines containing the informational marker.
	InfoLines int
}

// TotalLines returns the number of lines read from the log file.
func (r *Report) TotalLines() int {
	return len(r.Lines)
}

// Summary renders the one-sentence count summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("[SUMMARY] Log contains %d lines and %dx %s.",
		r.TotalLines(), r.InfoLines, infoMarker)
}

// Detail returns the non-informational lines joined by newlines.
// Empty when every line was informational or the log was empty.
func (r *Report) Detail() string {
	return strings.Join(r.Reduced, "\n")
}

// Scan reads the log file at path and classifies its lines.
// A missing or unreadable file is an error.
func Scan(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	rep := &Report{}

	// ReadString instead of a Scanner: crawler lines have no length
	// bound and must be read whole, not rejected at a token limit
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			text := strings.TrimSuffix(line, "\n")
			text = strings.TrimSuffix(text, "\r")
			rep.Lines = append(rep.Lines, text)
			if strings.Contains(text, infoMarker) {
				rep.InfoLines++
			} else {
				rep.Reduced = append(rep.Reduced, text)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read log file '%s': %w", path, err)
		}
	}

	return rep, nil
}
