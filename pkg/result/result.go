/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
// Package result defines the canonical in-memory model every command
// produces: single probe facts, named lists of facts, and the full Snapshot.
// Exactly one Result is constructed per invocation and both renderers
// project from it; neither renderer re-queries a probe.
package result

import (
	"encoding/json"
	"fmt"
)

// ListKind names a list result. The name becomes the single top-level JSON
// key wrapping the array, so documents stay forward-compatible with added
// metadata.
type ListKind string

const (
	ListIPs        ListKind = "ips"
	ListDNSServers ListKind = "dns_servers"
	ListInterfaces ListKind = "interfaces"
	ListDisks      ListKind = "disks"
)

// List is a named collection result. Only the slice matching Kind is set;
// an empty non-nil slice is a successful probe that found nothing.
type List struct {
	Kind       ListKind
	IPs        []IP
	DNSServers []DNSServer
	Interfaces []Interface
	Disks      []Disk
}

// NewIPList wraps categorized IP addresses.
func NewIPList(ips []IP) List {
	if ips == nil {
		ips = []IP{}
	}
	return List{Kind: ListIPs, IPs: ips}
}

// NewDNSServerList wraps ordered, deduplicated resolvers.
func NewDNSServerList(servers []DNSServer) List {
	if servers == nil {
		servers = []DNSServer{}
	}
	return List{Kind: ListDNSServers, DNSServers: servers}
}

// NewInterfaceList wraps network interface addresses.
func NewInterfaceList(ifaces []Interface) List {
	if ifaces == nil {
		ifaces = []Interface{}
	}
	return List{Kind: ListInterfaces, Interfaces: ifaces}
}

// NewDiskList wraps disk facts.
func NewDiskList(disks []Disk) List {
	if disks == nil {
		disks = []Disk{}
	}
	return List{Kind: ListDisks, Disks: disks}
}

// Len returns the number of items in the populated slice.
func (l List) Len() int {
	switch l.Kind {
	case ListIPs:
		return len(l.IPs)
	case ListDNSServers:
		return len(l.DNSServers)
	case ListInterfaces:
		return len(l.Interfaces)
	case ListDisks:
		return len(l.Disks)
	default:
		return 0
	}
}

// MarshalJSON emits the named wrapper object, e.g. {"disks":[...]}.
func (l List) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case ListIPs:
		return json.Marshal(map[ListKind][]IP{l.Kind: l.IPs})
	case ListDNSServers:
		return json.Marshal(map[ListKind][]DNSServer{l.Kind: l.DNSServers})
	case ListInterfaces:
		return json.Marshal(map[ListKind][]Interface{l.Kind: l.Interfaces})
	case ListDisks:
		return json.Marshal(map[ListKind][]Disk{l.Kind: l.Disks})
	default:
		return nil, fmt.Errorf("invalid list kind: %q", l.Kind)
	}
}

// Result is the tagged union handed to the renderers. Exactly one arm is
// populated; the aggregator fully resolves best-effort degradation before
// constructing one.
type Result struct {
	scalar Fact
	list   *List
	snap   *Snapshot
}

// NewScalar wraps a single fact.
func NewScalar(f Fact) Result {
	return Result{scalar: f}
}

// NewList wraps a named list.
func NewList(l List) Result {
	return Result{list: &l}
}

// NewSnapshotResult wraps a full snapshot.
func NewSnapshotResult(s *Snapshot) Result {
	return Result{snap: s}
}

// Scalar returns the scalar arm, or nil.
func (r Result) Scalar() Fact { return r.scalar }

// List returns the list arm, or nil.
func (r Result) List() *List { return r.list }

// Snapshot returns the snapshot arm, or nil.
func (r Result) Snapshot() *Snapshot { return r.snap }

// MarshalJSON serializes whichever arm is populated: scalar facts as their
// own object, lists as the named wrapper, snapshots as the full document.
func (r Result) MarshalJSON() ([]byte, error) {
	switch {
	case r.snap != nil:
		return json.Marshal(r.snap)
	case r.list != nil:
		return json.Marshal(r.list)
	case r.scalar != nil:
		return json.Marshal(r.scalar)
	default:
		return nil, fmt.Errorf("empty result")
	}
}
