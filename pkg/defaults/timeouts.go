/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package defaults

import "time"

// Probe timeouts for external lookups.
const (
	// PublicIPTimeout bounds the DNS exchange used to learn the public IP.
	PublicIPTimeout = 5 * time.Second

	// NTPTimeout bounds the NTP exchange. The time probe never fails on
	// expiry; it degrades to a wall-clock reading without a clock offset.
	NTPTimeout = 3 * time.Second

	// LatencyTimeout bounds a single round-trip measurement.
	LatencyTimeout = 5 * time.Second

	// SnapshotTimeout bounds the whole "everything" gather.
	SnapshotTimeout = 30 * time.Second
)
