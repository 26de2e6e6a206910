package commands

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tastehub/tastehub-go/pkg/log"
)

// jsonEvent is the JSONL export shape. Kind is exported by name.
type jsonEvent struct {
	Timestamp  string `json:"timestamp"`
	SessionID  string `json:"session_id"`
	Kind       string `json:"kind"`
	Label      string `json:"label,omitempty"`
	Remaining  int    `json:"remaining"`
	Configured int    `json:"configured"`
	OldPhase   string `json:"old_phase,omitempty"`
	NewPhase   string `json:"new_phase,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Error      string `json:"error,omitempty"`
}

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// RunExport exports the log file to the specified format. An empty output
// writes to w.
func RunExport(path, format, output string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toJSON(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func toJSON(event log.Event) jsonEvent {
	return jsonEvent{
		Timestamp:  event.Timestamp.UTC().Format(timestampLayout),
		SessionID:  event.SessionID,
		Kind:       event.Kind.String(),
		Label:      event.Label,
		Remaining:  event.Remaining,
		Configured: event.Configured,
		OldPhase:   event.OldPhase,
		NewPhase:   event.NewPhase,
		Mode:       event.Mode,
		Error:      event.Error,
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "kind", "label", "remaining", "configured", "old_phase", "new_phase", "mode", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format(timestampLayout),
			event.SessionID,
			event.Kind.String(),
			event.Label,
			strconv.Itoa(event.Remaining),
			strconv.Itoa(event.Configured),
			event.OldPhase,
			event.NewPhase,
			event.Mode,
			event.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
