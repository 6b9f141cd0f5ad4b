/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package gather

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/my-cli/my/pkg/probe/clock"
	"github.com/my-cli/my/pkg/result"
)

// Snapshot runs every probe concurrently and assembles the full snapshot.
// It cannot fail: mandatory fields are computed without fallible calls, and
// each optional field is wrapped in the best-effort combinator, so a failed
// probe only leaves its field absent and a warning on the diagnostic
// stream.
func (g *Gatherer) Snapshot(ctx context.Context) (result.Result, error) {
	snap := result.NewSnapshot()
	snap.Date = result.NewDate(clock.Now())
	snap.Architecture = g.probes.Arch()

	var mu sync.Mutex
	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		t := g.timeFact()
		mu.Lock()
		snap.Time = t
		mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		ram := g.probes.RAM(gctx)
		mu.Lock()
		snap.RAM = ram
		mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		ips := bestEffort("ips", func() ([]result.IP, error) { return g.anyIPs(gctx) })
		mu.Lock()
		snap.IPs = ips
		mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		servers := bestEffort("dns servers", g.dnsServerFacts)
		mu.Lock()
		snap.DNSServers = servers
		mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		ifaces := bestEffort("interfaces", func() ([]result.Interface, error) { return g.interfaceFacts(false) })
		mu.Lock()
		snap.Interfaces = ifaces
		mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		disks := bestEffort("disks", func() ([]result.Disk, error) { return g.diskFacts(gctx) })
		mu.Lock()
		snap.Disks = disks
		mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		cpu := bestEffort("cpu", func() (result.CPU, error) { return g.probes.CPU(gctx) })
		mu.Lock()
		snap.CPU = cpu
		mu.Unlock()
		return nil
	})

	for _, kind := range []result.NamedKind{
		result.KindHostname,
		result.KindUsername,
		result.KindDeviceName,
		result.KindOS,
	} {
		eg.Go(func() error {
			value := bestEffort(string(kind), func() (string, error) { return g.probes.Identity(gctx, kind) })
			mu.Lock()
			switch kind {
			case result.KindHostname:
				snap.Hostname = value
			case result.KindUsername:
				snap.Username = value
			case result.KindDeviceName:
				snap.DeviceName = value
			case result.KindOS:
				snap.OS = value
			}
			mu.Unlock()
			return nil
		})
	}

	// Probe closures never return errors; Wait is a join.
	_ = eg.Wait()

	return result.NewSnapshotResult(snap), nil
}

// bestEffort runs one probe. On failure it emits a single structured
// warning naming the probe category and yields absent; on success it yields
// the value. Every best-effort call site goes through here so log-and-
// continue is not re-implemented per probe.
func bestEffort[T any](category string, probe func() (T, error)) *T {
	value, err := probe()
	if err != nil {
		slog.Warn("probe failed; omitting from snapshot", "category", category, "error", err)
		return nil
	}
	return &value
}
