package tinylog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticReporter_Output(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(DiagnosticOptions{Output: &buf})

	reporter.Report(errors.New("disk full"), errMsgWriteFailed)

	out := buf.String()
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, errMsgWriteFailed)
	assert.Contains(t, out, InternalTag)
}

func TestDiagnosticReporter_RollingFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tinylog-diag.log")

	reporter := NewDiagnosticReporter(DiagnosticOptions{
		FilePath:       path,
		FileMaxBackups: 1,
		FileMaxAgeDays: 1,
		FileMaxSizeMB:  1,
	})

	reporter.Report(errors.New("socket closed"), errMsgWriteFailed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "socket closed")
}

func TestDiagnosticReporter_NilErrorReport(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(DiagnosticOptions{Output: &buf})

	reporter.Report(nil, errMsgEnqueueAfterStop)

	assert.Contains(t, buf.String(), errMsgEnqueueAfterStop)
}
