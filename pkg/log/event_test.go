package log

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindStart, "START"},
		{KindPause, "PAUSE"},
		{KindResume, "RESUME"},
		{KindReset, "RESET"},
		{KindConfigure, "CONFIGURE"},
		{KindTick, "TICK"},
		{KindComplete, "COMPLETE"},
		{KindClose, "CLOSE"},
		{KindMode, "MODE"},
		{KindAlert, "ALERT"},
		{Kind(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("complete")
	if err != nil {
		t.Fatalf("ParseKind(complete) error: %v", err)
	}
	if k != KindComplete {
		t.Errorf("ParseKind(complete) = %v, want COMPLETE", k)
	}

	k, err = ParseKind(" Tick ")
	if err != nil || k != KindTick {
		t.Errorf("ParseKind(Tick) = %v, %v", k, err)
	}

	if _, err := ParseKind("boil"); err == nil {
		t.Error("ParseKind(boil) should fail")
	}
}

func TestEventIsTransition(t *testing.T) {
	if (Event{OldPhase: "IDLE", NewPhase: "RUNNING"}).IsTransition() != true {
		t.Error("IDLE->RUNNING should be a transition")
	}
	if (Event{OldPhase: "RUNNING", NewPhase: "RUNNING"}).IsTransition() {
		t.Error("RUNNING->RUNNING should not be a transition")
	}
	if (Event{}).IsTransition() {
		t.Error("empty phases should not be a transition")
	}
}
