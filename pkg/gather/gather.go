/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
// Package gather orchestrates probe execution: which probes a command
// needs, how their failures are treated, and how their outcomes reduce into
// one result value.
//
// The default policy is strict: a failing probe fails the command, wrapped
// with context naming the operation. Two paths are best-effort instead: the
// "any" IP category (succeeds while at least one of the public/local probes
// does) and the full snapshot (optional fields simply go absent). In
// best-effort mode every failure is still reported, as a warning on the
// diagnostic stream.
package gather

import (
	"context"
	"log/slog"
	"strings"

	"github.com/my-cli/my/pkg/config"
	"github.com/my-cli/my/pkg/errors"
	"github.com/my-cli/my/pkg/probe/clock"
	"github.com/my-cli/my/pkg/result"
)

// Gatherer runs probes and assembles result values.
type Gatherer struct {
	probes *Probes
}

// New creates a Gatherer with the production probes configured from cfg.
func New(cfg *config.Config) *Gatherer {
	return &Gatherer{probes: DefaultProbes(cfg)}
}

// NewWithProbes creates a Gatherer with injected probes.
func NewWithProbes(p *Probes) *Gatherer {
	return &Gatherer{probes: p}
}

// IPs gathers the addresses for one category. Categories public and local
// are strict. Category any (the default) is best-effort: both probes run
// concurrently, warnings are logged for whichever side fails, and the call
// fails only when both do.
func (g *Gatherer) IPs(ctx context.Context, category result.IPCategory) (result.Result, error) {
	switch category {
	case result.IPPublic:
		addr, err := g.probes.PublicIP(ctx)
		if err != nil {
			return result.Result{}, errors.Wrap(errors.ErrCodeProbeFailure, "looking up public ip failed", err)
		}
		return result.NewList(result.NewIPList([]result.IP{{Category: result.IPPublic, Address: addr}})), nil

	case result.IPLocal:
		addr, err := g.probes.LocalIP()
		if err != nil {
			return result.Result{}, errors.Wrap(errors.ErrCodeProbeFailure, "looking up local ip failed", err)
		}
		return result.NewList(result.NewIPList([]result.IP{{Category: result.IPLocal, Address: addr}})), nil

	case result.IPAny, "":
		ips, err := g.anyIPs(ctx)
		if err != nil {
			return result.Result{}, err
		}
		return result.NewList(result.NewIPList(ips)), nil

	default:
		return result.Result{}, errors.Newf(errors.ErrCodeInvalidRequest, "unknown ip category: %q", category)
	}
}

// anyIPs runs the public and local probes concurrently and keeps whatever
// succeeded, in public-then-local order. Only when both fail does it return
// an aggregate failure.
func (g *Gatherer) anyIPs(ctx context.Context) ([]result.IP, error) {
	var (
		publicAddr, localAddr result.IP
		publicErr, localErr   error
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		addr, err := g.probes.PublicIP(ctx)
		if err != nil {
			publicErr = err
			return
		}
		publicAddr = result.IP{Category: result.IPPublic, Address: addr}
	}()

	addr, err := g.probes.LocalIP()
	if err != nil {
		localErr = err
	} else {
		localAddr = result.IP{Category: result.IPLocal, Address: addr}
	}
	<-done

	// Both sides down is the caller's failure to report; logging it here
	// too would duplicate the diagnostic.
	if publicErr != nil && localErr != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeAggregateFailure, "no ip address available", publicErr,
			map[string]any{"local_error": localErr.Error()})
	}

	ips := []result.IP{}
	if publicErr == nil {
		ips = append(ips, publicAddr)
	} else {
		slog.Warn("looking up public ip failed", "error", publicErr)
	}
	if localErr == nil {
		ips = append(ips, localAddr)
	} else {
		slog.Warn("looking up local ip failed", "error", localErr)
	}

	return ips, nil
}

// DNSServers gathers the system resolvers: collaborator order preserved,
// deduplicated by address, positions assigned 1-indexed after dedup.
func (g *Gatherer) DNSServers(ctx context.Context) (result.Result, error) {
	servers, err := g.dnsServerFacts()
	if err != nil {
		return result.Result{}, errors.Wrap(errors.ErrCodeProbeFailure, "listing dns servers failed", err)
	}
	return result.NewList(result.NewDNSServerList(servers)), nil
}

func (g *Gatherer) dnsServerFacts() ([]result.DNSServer, error) {
	raw, err := g.probes.DNSServers()
	if err != nil {
		return nil, err
	}

	unique := dedupBy(raw, func(addr string) string { return addr })
	servers := make([]result.DNSServer, 0, len(unique))
	for i, addr := range unique {
		servers = append(servers, result.DNSServer{Position: i + 1, Address: addr})
	}
	return servers, nil
}

// Interfaces gathers interface addresses, deduplicated by (name, address).
func (g *Gatherer) Interfaces(ctx context.Context, all bool) (result.Result, error) {
	ifaces, err := g.interfaceFacts(all)
	if err != nil {
		return result.Result{}, errors.Wrap(errors.ErrCodeProbeFailure, "enumerating interfaces failed", err)
	}
	return result.NewList(result.NewInterfaceList(ifaces)), nil
}

func (g *Gatherer) interfaceFacts(all bool) ([]result.Interface, error) {
	ifaces, err := g.probes.Interfaces(all)
	if err != nil {
		return nil, err
	}
	return dedupBy(ifaces, func(i result.Interface) result.Interface { return i }), nil
}

// Disks gathers disk facts, deduplicated by device name.
func (g *Gatherer) Disks(ctx context.Context) (result.Result, error) {
	disks, err := g.diskFacts(ctx)
	if err != nil {
		return result.Result{}, errors.Wrap(errors.ErrCodeProbeFailure, "listing disks failed", err)
	}
	return result.NewList(result.NewDiskList(disks)), nil
}

func (g *Gatherer) diskFacts(ctx context.Context) ([]result.Disk, error) {
	disks, err := g.probes.Disks(ctx)
	if err != nil {
		return nil, err
	}
	return dedupBy(disks, func(d result.Disk) string { return d.Name }), nil
}

// CPU gathers the processor fact.
func (g *Gatherer) CPU(ctx context.Context) (result.Result, error) {
	info, err := g.probes.CPU(ctx)
	if err != nil {
		return result.Result{}, errors.Wrap(errors.ErrCodeProbeFailure, "reading cpu info failed", err)
	}
	return result.NewScalar(info), nil
}

// RAM gathers the memory fact. The underlying probe is infallible.
func (g *Gatherer) RAM(ctx context.Context) (result.Result, error) {
	return result.NewScalar(g.probes.RAM(ctx)), nil
}

// Named gathers one identity fact. Architecture never fails; the other
// kinds are strict.
func (g *Gatherer) Named(ctx context.Context, kind result.NamedKind) (result.Result, error) {
	if kind == result.KindArchitecture {
		return result.NewScalar(result.Named{Kind: kind, Value: g.probes.Arch()}), nil
	}

	value, err := g.probes.Identity(ctx, kind)
	if err != nil {
		label := strings.ReplaceAll(string(kind), "_", " ")
		return result.Result{}, errors.Wrap(errors.ErrCodeProbeFailure, "looking up "+label+" failed", err)
	}
	return result.NewScalar(result.Named{Kind: kind, Value: value}), nil
}

// Date gathers the calendar date. Local, cannot fail.
func (g *Gatherer) Date(ctx context.Context) (result.Result, error) {
	return result.NewScalar(result.NewDate(clock.Now())), nil
}

// Time gathers the time of day with a best-effort clock offset: the NTP
// probe runs under its own deadline and its failure degrades the reading
// instead of failing the command.
func (g *Gatherer) Time(ctx context.Context) (result.Result, error) {
	return result.NewScalar(g.timeFact()), nil
}

// DateTime gathers the combined date and time fact.
func (g *Gatherer) DateTime(ctx context.Context) (result.Result, error) {
	now := clock.Now()
	return result.NewScalar(result.DateTime{
		Date: result.NewDate(now),
		Time: g.timeFact(),
	}), nil
}

func (g *Gatherer) timeFact() result.Time {
	now := clock.Now()
	offset, err := g.probes.SyncClock()
	if err != nil {
		slog.Debug("clock sync failed; omitting offset", "error", err)
		return result.NewTime(now, nil)
	}
	return result.NewTime(now, &offset)
}

// Latency gathers the round-trip measurement.
func (g *Gatherer) Latency(ctx context.Context, target string) (result.Result, error) {
	rtt, err := g.probes.Latency(ctx)
	if err != nil {
		return result.Result{}, errors.Wrap(errors.ErrCodeProbeFailure, "measuring latency failed", err)
	}
	return result.NewScalar(result.Latency{Target: target, RTT: rtt}), nil
}
