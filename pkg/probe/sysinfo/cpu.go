/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package sysinfo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/my-cli/my/pkg/result"
)

// CPUInfo reports the processor brand, logical core count, and frequency.
func CPUInfo(ctx context.Context) (result.CPU, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return result.CPU{}, fmt.Errorf("reading cpu info: %w", err)
	}
	if len(infos) == 0 {
		return result.CPU{}, fmt.Errorf("no cpu info available")
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return result.CPU{}, fmt.Errorf("counting cpu cores: %w", err)
	}

	return result.CPU{
		Brand:        infos[0].ModelName,
		Cores:        cores,
		FrequencyMHz: uint64(infos[0].Mhz),
	}, nil
}

// RAMInfo reports memory usage. The probe is infallible: on the rare read
// failure it logs and reports zeroes rather than breaking the mandatory
// snapshot field.
func RAMInfo(ctx context.Context) result.RAM {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		slog.Debug("reading virtual memory failed", "error", err)
		return result.RAM{}
	}
	return result.RAM{
		TotalBytes:     vm.Total,
		UsedBytes:      vm.Used,
		FreeBytes:      vm.Free,
		AvailableBytes: vm.Available,
	}
}
