// SPDX-License-Identifier: Unlicense OR MIT

package monotime

import (
	"testing"
	"time"
)

func TestSystemMonotonic(t *testing.T) {
	a := System.Millis()
	time.Sleep(2 * time.Millisecond)
	b := System.Millis()
	if b < a {
		t.Errorf("clock went backwards: %d then %d", a, b)
	}
}

func TestManual(t *testing.T) {
	var c Manual
	c.Advance(499 * time.Millisecond)
	if got := c.Millis(); got != 499 {
		t.Errorf("got %d ms, want 499", got)
	}
	c.Advance(1500 * time.Microsecond)
	if got := c.Millis(); got != 500 {
		t.Errorf("got %d ms, want 500", got)
	}
}
