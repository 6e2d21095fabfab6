// FILE: src/cmd/vatnotify/output_test.go
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCapturedHandler(quiet bool) (*OutputHandler, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &OutputHandler{quiet: quiet, stdout: stdout, stderr: stderr}, stdout, stderr
}

func TestOutputHandler(t *testing.T) {
	t.Run("PrintWritesStdout", func(t *testing.T) {
		o, stdout, stderr := newCapturedHandler(false)
		o.Print("lines: %d\n", 3)
		assert.Equal(t, "lines: 3\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("QuietSuppressesPrint", func(t *testing.T) {
		o, stdout, _ := newCapturedHandler(true)
		o.Print("lines: %d\n", 3)
		assert.Empty(t, stdout.String())
	})

	t.Run("QuietStillReportsErrors", func(t *testing.T) {
		o, stdout, stderr := newCapturedHandler(true)
		o.Error("Failed to load config: %s\n", "missing channel")
		assert.Empty(t, stdout.String())
		assert.Equal(t, "Failed to load config: missing channel\n", stderr.String())
	})

	t.Run("SetQuiet", func(t *testing.T) {
		o, stdout, _ := newCapturedHandler(false)
		o.SetQuiet(true)
		o.Print("suppressed\n")
		assert.Empty(t, stdout.String())
	})
}
