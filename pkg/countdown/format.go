package countdown

import "fmt"

// FormatTime renders seconds as MM:SS, or HH:MM:SS once the value reaches
// one hour. Each component is zero-padded to two digits; hours grow past
// two digits for very long durations. Negative input is treated as zero.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
