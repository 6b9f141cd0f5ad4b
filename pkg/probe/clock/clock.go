/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
// Package clock probes date and time facts. The NTP exchange is the only
// probe in the tool with its own deadline; callers treat its failure as a
// degraded reading, never as a failed command.
package clock

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"
)

// Now is the wall-clock source, overridable in tests.
var Now = time.Now

// SyncClock measures the offset between the local clock and server, bounded
// by timeout. The offset is in seconds; positive means the local clock is
// behind.
func SyncClock(server string, timeout time.Duration) (float64, error) {
	resp, err := ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		return 0, fmt.Errorf("synchronizing with %s: %w", server, err)
	}
	if err := resp.Validate(); err != nil {
		return 0, fmt.Errorf("invalid response from %s: %w", server, err)
	}
	return resp.ClockOffset.Seconds(), nil
}
