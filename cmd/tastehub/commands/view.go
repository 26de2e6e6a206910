// Package commands implements the output of the tastehub CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tastehub/tastehub-go/pkg/countdown"
	"github.com/tastehub/tastehub-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	SessionID string
	Label     string
	Kind      *log.Kind

	// SkipTicks hides TICK events, which dominate long sessions.
	SkipTicks bool
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] KIND label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %-9s", ts, shortenSessionID(event.SessionID), event.Kind.String())
	if event.Label != "" {
		fmt.Fprintf(w, " %s", event.Label)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Remaining: %s / %s\n",
		countdown.FormatTime(event.Remaining),
		countdown.FormatTime(event.Configured))

	if event.IsTransition() {
		fmt.Fprintf(w, "  %s -> %s\n", event.OldPhase, event.NewPhase)
	}
	if event.Mode != "" {
		fmt.Fprintf(w, "  Mode: %s\n", event.Mode)
	}
	if event.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseKindFlag parses an event kind from a command-line flag (case-insensitive).
func ParseKindFlag(s string) (log.Kind, error) {
	k, err := log.ParseKind(s)
	if err != nil {
		return 0, fmt.Errorf("invalid kind: %s (must be one of %s)", s, strings.Join(kindNames(), ", "))
	}
	return k, nil
}

func kindNames() []string {
	names := make([]string, 0, len(allKinds))
	for _, k := range allKinds {
		names = append(names, strings.ToLower(k.String()))
	}
	return names
}

var allKinds = []log.Kind{
	log.KindStart, log.KindPause, log.KindResume, log.KindReset, log.KindConfigure,
	log.KindTick, log.KindComplete, log.KindClose, log.KindMode, log.KindAlert,
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		SessionID: filter.SessionID,
		Label:     filter.Label,
		Kind:      filter.Kind,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		if filter.SkipTicks && event.Kind == log.KindTick {
			continue
		}

		formatEvent(output, event)
	}

	return nil
}
