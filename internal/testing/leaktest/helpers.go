// Package leaktest detects goroutines left running by hubs, pools and schedulers.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
const DefaultSettleTimeout = 2 * time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker records the goroutine count at creation and compares later
type GoroutineChecker struct {
	before  int
	timeout time.Duration
	t       testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Let goroutines from earlier tests finish exiting
	runtime.Gosched()
	time.Sleep(pollInterval)

	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		timeout: DefaultSettleTimeout,
		t:       t,
	}
}

// Check fails the test if the count stays above before+tolerance until the timeout
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	if after, ok := settle(target, g.timeout); !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines run or times out
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if current, ok := settle(target, timeout); !ok {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", current, target)
	}
}

func settle(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
