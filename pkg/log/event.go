package log

import (
	"fmt"
	"strings"
	"time"
)

// Event represents a timer event captured by an engine or cooking timer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the engine that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Label is a caller-chosen name for the session, usually the recipe ID.
	Label string `cbor:"4,keyasint,omitempty"`

	// Remaining is the remaining seconds after the event was applied.
	Remaining int `cbor:"5,keyasint"`

	// Configured is the configured duration in seconds after the event.
	Configured int `cbor:"6,keyasint"`

	// OldPhase and NewPhase describe the phase transition, if any.
	OldPhase string `cbor:"7,keyasint,omitempty"`
	NewPhase string `cbor:"8,keyasint,omitempty"`

	// Mode is the cooking timer mode (prep, cook, custom).
	Mode string `cbor:"9,keyasint,omitempty"`

	// Error carries a failure message, e.g. an alert that could not be delivered.
	Error string `cbor:"10,keyasint,omitempty"`
}

// Kind classifies the event type.
type Kind uint8

const (
	// KindStart indicates the countdown was started.
	KindStart Kind = 0
	// KindPause indicates the countdown was suspended.
	KindPause Kind = 1
	// KindResume indicates a paused countdown continued.
	KindResume Kind = 2
	// KindReset indicates the countdown was restored to its configured duration.
	KindReset Kind = 3
	// KindConfigure indicates the configured duration changed.
	KindConfigure Kind = 4
	// KindTick indicates one second elapsed.
	KindTick Kind = 5
	// KindComplete indicates the countdown reached zero.
	KindComplete Kind = 6
	// KindClose indicates the engine was released by its owner.
	KindClose Kind = 7
	// KindMode indicates the cooking timer switched mode.
	KindMode Kind = 8
	// KindAlert indicates a completion alert was dispatched.
	KindAlert Kind = 9
)

var kindNames = map[Kind]string{
	KindStart:     "START",
	KindPause:     "PAUSE",
	KindResume:    "RESUME",
	KindReset:     "RESET",
	KindConfigure: "CONFIGURE",
	KindTick:      "TICK",
	KindComplete:  "COMPLETE",
	KindClose:     "CLOSE",
	KindMode:      "MODE",
	KindAlert:     "ALERT",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseKind converts a case-insensitive kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == upper {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown event kind: %q", s)
}

// IsTransition reports whether the event changed the engine phase.
func (e Event) IsTransition() bool {
	return e.NewPhase != "" && e.OldPhase != e.NewPhase
}
