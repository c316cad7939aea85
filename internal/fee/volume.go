package fee

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultAccount is the accumulator key used by single-account engines.
const DefaultAccount = "default"

// volumeWindow tracks notional traded by one account inside the current
// calendar-month window.
type volumeWindow struct {
	windowStart time.Time
	accumulated decimal.Decimal
}

// VolumeTracker accumulates traded notional per account over calendar-month
// windows. Tiered strategies consult it to select the active rate tier.
//
// The read-modify-write of one account's window runs under a single lock so
// concurrent order callbacks are tiered and accumulated in a consistent
// order: two simultaneous orders must not both bill at a stale tier.
type VolumeTracker struct {
	mu       sync.Mutex
	accounts map[string]*volumeWindow
}

// NewVolumeTracker creates an empty tracker. Accumulators are created lazily
// on the first order for an account.
func NewVolumeTracker() *VolumeTracker {
	return &VolumeTracker{
		accounts: make(map[string]*volumeWindow),
	}
}

// monthStart truncates t to the start of its calendar month in UTC.
func monthStart(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Bill runs the billing callback with the volume accumulated before this
// order, then adds the order's notional contribution. The order that crosses
// a tier threshold is billed at the pre-crossing tier; only subsequent orders
// benefit from the new tier.
//
// When t falls in a later calendar month than the window start, the
// accumulated volume resets to zero before billing, so the account returns to
// the lowest tier at the start of each window. An order timestamped before
// the window start does not reset; it bills against the current window.
//
// If bill returns an error, the notional is not accumulated and the window is
// left exactly as it was.
func (v *VolumeTracker) Bill(account string, t time.Time, notional decimal.Decimal, bill func(accumulated decimal.Decimal) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	window, ok := v.accounts[account]
	if !ok {
		window = &volumeWindow{
			windowStart: monthStart(t),
			accumulated: decimal.Zero,
		}
		v.accounts[account] = window
	}

	// Only a forward boundary crossing resets the window. An order
	// timestamped before the current window bills against the accumulated
	// volume as-is rather than zeroing it and moving the window backwards.
	start := monthStart(t)
	reset := start.After(window.windowStart)

	accumulated := window.accumulated
	if reset {
		accumulated = decimal.Zero
	}

	if err := bill(accumulated); err != nil {
		return err
	}

	if reset {
		window.windowStart = start
	}

	window.accumulated = accumulated.Add(notional)

	return nil
}

// Accumulated returns the volume the account has traded so far in the window
// containing t. A window boundary crossing reads as zero.
func (v *VolumeTracker) Accumulated(account string, t time.Time) decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()

	window, ok := v.accounts[account]
	if !ok {
		return decimal.Zero
	}

	if !monthStart(t).Equal(window.windowStart) {
		return decimal.Zero
	}

	return window.accumulated
}
