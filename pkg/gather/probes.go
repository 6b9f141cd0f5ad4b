/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package gather

import (
	"context"
	"net/netip"
	"time"

	"github.com/my-cli/my/pkg/config"
	"github.com/my-cli/my/pkg/probe/clock"
	"github.com/my-cli/my/pkg/probe/netinfo"
	"github.com/my-cli/my/pkg/probe/sysinfo"
	"github.com/my-cli/my/pkg/result"
)

// Probes holds every external collaborator as a function field. The
// gatherer only ever calls through this struct, so tests inject stubs the
// same way the production wiring injects the real probes.
type Probes struct {
	PublicIP   func(ctx context.Context) (netip.Addr, error)
	LocalIP    func() (netip.Addr, error)
	DNSServers func() ([]string, error)
	Interfaces func(all bool) ([]result.Interface, error)
	SyncClock  func() (float64, error)
	Identity   func(ctx context.Context, kind result.NamedKind) (string, error)
	Arch       func() string
	Disks      func(ctx context.Context) ([]result.Disk, error)
	CPU        func(ctx context.Context) (result.CPU, error)
	RAM        func(ctx context.Context) result.RAM
	Latency    func(ctx context.Context) (time.Duration, error)
}

// DefaultProbes wires the production probes with endpoints and deadlines
// from cfg.
func DefaultProbes(cfg *config.Config) *Probes {
	return &Probes{
		PublicIP: func(ctx context.Context) (netip.Addr, error) {
			return netinfo.QueryPublicIP(ctx, cfg.PublicIPResolver, cfg.PublicIPPort, cfg.PublicIPName)
		},
		LocalIP: func() (netip.Addr, error) {
			return netinfo.QueryLocalIP(cfg.LatencyTarget)
		},
		DNSServers: func() ([]string, error) {
			return netinfo.ListDNSServers(cfg.ResolvConfPath)
		},
		Interfaces: netinfo.EnumerateInterfaces,
		SyncClock: func() (float64, error) {
			return clock.SyncClock(cfg.NTPServer, cfg.NTPTimeout.Std())
		},
		Identity: sysinfo.IdentityLookup,
		Arch:     sysinfo.CPUArch,
		Disks:    sysinfo.ListDisks,
		CPU:      sysinfo.CPUInfo,
		RAM:      sysinfo.RAMInfo,
		Latency: func(ctx context.Context) (time.Duration, error) {
			return netinfo.MeasureLatency(ctx, cfg.LatencyTarget)
		},
	}
}
