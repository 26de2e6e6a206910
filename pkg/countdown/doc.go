// Package countdown implements the countdown timer engine used by the
// cooking timer.
//
// An Engine tracks the seconds remaining in one countdown, whether it is
// running or paused, and invokes a completion callback exactly once when the
// count reaches zero.
//
// # Phases
//
//	Idle    --Start-->         Running
//	Running --Pause-->         Paused
//	Paused  --Resume-->        Running
//	Running --tick reaches 0-> Idle (fires OnComplete)
//	any     --Reset-->         Idle (remaining = configured)
//
// Operations that do not apply to the current phase are no-ops. No
// transition returns an error.
//
// # Tick Source
//
// Decrements are driven by a recurring 1-second tick installed through a
// TickerFunc. Each engine owns at most one live ticker. Start and Resume
// stop the previous ticker before installing a new one, and Reset, Close and
// completion stop it. Ticks delivered by a ticker that has already been
// replaced are discarded, so a late tick can never double-decrement.
//
// Tests use countdowntest.ManualTicker to advance ticks deterministically.
//
// # Reconfiguration
//
// SetConfiguredSeconds applies the new duration to the remaining time
// immediately, even while a countdown is running, and does not stop the
// countdown. Owners wanting a clean restart call Reset first.
//
// # Teardown
//
// The owner must call Close on every exit path. A closed engine never
// installs another ticker.
package countdown
