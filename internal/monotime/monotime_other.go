// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux
// +build !linux

package monotime

import "time"

var start = time.Now()

func now() time.Duration {
	// time.Since uses the monotonic reading of start.
	return time.Since(start)
}
