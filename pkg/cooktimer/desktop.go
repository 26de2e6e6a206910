package cooktimer

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultDesktopCommand is the freedesktop.org notification client.
const DefaultDesktopCommand = "notify-send"

// DesktopNotifier shows the alert as a desktop notification by running a
// notify-send compatible command with the title and body as arguments.
type DesktopNotifier struct {
	command string
	args    []string
}

// NewDesktopNotifier creates a notifier running command. Extra args are
// passed before the title and body. An empty command selects
// DefaultDesktopCommand.
func NewDesktopNotifier(command string, args ...string) *DesktopNotifier {
	if command == "" {
		command = DefaultDesktopCommand
	}
	return &DesktopNotifier{command: command, args: args}
}

// Notify runs the notification command. A missing command is reported as
// ErrUndeliverable.
func (d *DesktopNotifier) Notify(ctx context.Context, alert Alert) error {
	args := append(append([]string(nil), d.args...), alert.Title, alert.Body)
	out, err := exec.CommandContext(ctx, d.command, args...).CombinedOutput()
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s: %v", ErrUndeliverable, d.command, err)
	}
	if msg := strings.TrimSpace(string(out)); msg != "" {
		return fmt.Errorf("%s: %w: %s", d.command, err, msg)
	}
	return fmt.Errorf("%s: %w", d.command, err)
}
