/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
// Package sysinfo probes local machine telemetry and identity: disks, CPU,
// RAM, and the hostname/username/device-name/OS facts.
package sysinfo

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/my-cli/my/pkg/result"
)

// ListDisks reports every physical mounted filesystem in mount order. The
// same device mounted more than once produces duplicate entries here; the
// aggregator deduplicates by name.
func ListDisks(ctx context.Context) ([]result.Disk, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	disks := []result.Disk{}
	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			return nil, fmt.Errorf("reading usage of %s: %w", p.Mountpoint, err)
		}
		disks = append(disks, result.Disk{
			Name:       p.Device,
			Kind:       p.Fstype,
			TotalBytes: usage.Total,
			FreeBytes:  usage.Free,
		})
	}

	return disks, nil
}
