package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastehub/tastehub-go/pkg/log"
)

func exportEvents() []log.Event {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	return []log.Event{
		{Timestamp: ts, SessionID: "abc12345", Kind: log.KindStart, Label: "kolkata",
			Remaining: 1800, Configured: 1800, OldPhase: "IDLE", NewPhase: "RUNNING"},
		{Timestamp: ts.Add(time.Second), SessionID: "abc12345", Kind: log.KindAlert, Label: "kolkata",
			Configured: 1800, Mode: "prep", Error: "muted"},
	}
}

func TestExportToJSONL(t *testing.T) {
	path := createTestLogFile(t, exportEvents())
	outPath := filepath.Join(t.TempDir(), "out.jsonl")

	require.NoError(t, RunExport(path, "jsonl", outPath, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "START", first["kind"])
	assert.Equal(t, "2026-01-28T10:15:32.123456Z", first["timestamp"])
	assert.Equal(t, float64(1800), first["remaining"])
	assert.Equal(t, "RUNNING", first["new_phase"])
	assert.NotContains(t, first, "error")

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "ALERT", second["kind"])
	assert.Equal(t, "muted", second["error"])
}

func TestExportToCSV(t *testing.T) {
	path := createTestLogFile(t, exportEvents())

	var buf bytes.Buffer
	require.NoError(t, RunExport(path, "csv", "", &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "timestamp", rows[0][0])
	assert.Equal(t, []string{
		"2026-01-28T10:15:32.123456Z", "abc12345", "START", "kolkata",
		"1800", "1800", "IDLE", "RUNNING", "", "",
	}, rows[1])
	assert.Equal(t, "muted", rows[2][9])
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, exportEvents())

	var buf bytes.Buffer
	err := RunExport(path, "xml", "", &buf)
	assert.ErrorContains(t, err, "unknown format")
}
