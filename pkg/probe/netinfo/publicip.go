/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
// Package netinfo probes the machine's network environment: public and
// local IP addresses, configured DNS resolvers, interface addresses, and
// round-trip latency. Each probe returns one fact or an error; policy
// (strict vs. best-effort) lives in the gather package, not here.
package netinfo

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"time"

	"github.com/miekg/dns"

	"github.com/my-cli/my/pkg/defaults"
)

// QueryPublicIP asks the given resolver for the A record of name. Resolvers
// like OpenDNS answer myip.opendns.com with the caller's public address.
// Only an IPv4 address is returned.
func QueryPublicIP(ctx context.Context, resolver string, port uint16, name string) (netip.Addr, error) {
	client := &dns.Client{Timeout: defaults.PublicIPTimeout}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeA)

	addr := net.JoinHostPort(resolver, strconv.Itoa(int(port)))
	reply, _, err := client.ExchangeContext(ctx, msg, addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("querying %s via %s: %w", name, addr, err)
	}

	for _, rr := range reply.Answer {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}
		ip, ok := netip.AddrFromSlice(a.A.To4())
		if !ok {
			continue
		}
		return ip, nil
	}

	return netip.Addr{}, fmt.Errorf("no A record for %s from %s", name, addr)
}

// QueryLocalIP reports the source address the kernel picks for outbound
// traffic toward target. No packet is sent; connecting a UDP socket only
// resolves the route.
func QueryLocalIP(target string) (netip.Addr, error) {
	conn, err := net.Dial("udp", target)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("routing toward %s: %w", target, err)
	}
	defer conn.Close()

	local, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return netip.Addr{}, fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}

	ip, ok := netip.AddrFromSlice(local.IP)
	if !ok {
		return netip.Addr{}, fmt.Errorf("invalid local address %v", local.IP)
	}
	return ip.Unmap(), nil
}

// MeasureLatency reports the round-trip time of one DNS exchange with
// target. The exchange itself is throwaway; only the timing matters.
func MeasureLatency(ctx context.Context, target string) (time.Duration, error) {
	client := &dns.Client{Timeout: defaults.LatencyTimeout}

	msg := new(dns.Msg)
	msg.SetQuestion(".", dns.TypeNS)

	_, rtt, err := client.ExchangeContext(ctx, msg, target)
	if err != nil {
		return 0, fmt.Errorf("measuring round trip to %s: %w", target, err)
	}
	return rtt, nil
}
