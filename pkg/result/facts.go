/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package result

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"time"
)

// Fact is one immutable probe result. The set of implementations is closed;
// both renderers switch exhaustively over it.
type Fact interface {
	fact()
}

// IPCategory classifies an IP address as seen from this machine.
type IPCategory string

const (
	IPPublic IPCategory = "public"
	IPLocal  IPCategory = "local"
	IPAny    IPCategory = "any"
)

// IsValid checks whether the category is one of the recognized values.
func (c IPCategory) IsValid() bool {
	switch c {
	case IPPublic, IPLocal, IPAny:
		return true
	default:
		return false
	}
}

// IP is a categorized IP address.
type IP struct {
	Category IPCategory `json:"category"`
	Address  netip.Addr `json:"ip"`
}

func (IP) fact() {}

// DNSServer is one system resolver with its 1-indexed position, assigned
// after deduplication.
type DNSServer struct {
	Position int    `json:"position"`
	Address  string `json:"address"`
}

func (DNSServer) fact() {}

// Interface is a network interface address. Interfaces with several
// addresses produce one entry per address.
type Interface struct {
	Name    string `json:"name"`
	Address string `json:"ip"`
}

func (Interface) fact() {}

// Disk describes one mounted disk.
type Disk struct {
	Name       string `json:"name"`
	Kind       string `json:"type"`
	TotalBytes uint64 `json:"total_space_bytes"`
	FreeBytes  uint64 `json:"free_space_bytes"`
}

func (Disk) fact() {}

// CPU describes the processor.
type CPU struct {
	Brand        string `json:"brand"`
	Cores        int    `json:"cores"`
	FrequencyMHz uint64 `json:"frequency_mhz"`
}

func (CPU) fact() {}

// RAM is the memory usage at the time of the probe.
type RAM struct {
	TotalBytes     uint64 `json:"total_bytes"`
	UsedBytes      uint64 `json:"used_bytes"`
	FreeBytes      uint64 `json:"free_bytes"`
	AvailableBytes uint64 `json:"available_bytes"`
}

func (RAM) fact() {}

// Date is a calendar date with its ISO week number.
type Date struct {
	DayName   string `json:"day_name"`
	DayNumber int    `json:"day_number"`
	MonthName string `json:"month_name"`
	Year      int    `json:"year"`
	Week      int    `json:"week_number"`
}

func (Date) fact() {}

// NewDate builds a Date from a wall-clock reading.
func NewDate(t time.Time) Date {
	_, week := t.ISOWeek()
	return Date{
		DayName:   t.Weekday().String(),
		DayNumber: t.Day(),
		MonthName: t.Month().String(),
		Year:      t.Year(),
		Week:      week,
	}
}

// Time is a time-of-day reading. Offset is the NTP clock offset in seconds;
// nil means the NTP exchange failed or timed out and the reading degraded to
// local wall-clock only.
type Time struct {
	Hour     int      `json:"hour"`
	Minute   int      `json:"minute"`
	Second   int      `json:"second"`
	Timezone string   `json:"timezone"`
	Offset   *float64 `json:"offset,omitempty"`
}

func (Time) fact() {}

// NewTime builds a Time from a wall-clock reading and an optional offset.
func NewTime(t time.Time, offset *float64) Time {
	zone, _ := t.Zone()
	return Time{
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Second:   t.Second(),
		Timezone: zone,
		Offset:   offset,
	}
}

// DateTime combines a Date and a Time taken at the same instant.
type DateTime struct {
	Date Date `json:"date"`
	Time Time `json:"time"`
}

func (DateTime) fact() {}

// NamedKind tags a single-string identity fact. The set is closed; there is
// no string-keyed dispatch and no unrecognized-kind path.
type NamedKind string

const (
	KindHostname     NamedKind = "hostname"
	KindUsername     NamedKind = "username"
	KindDeviceName   NamedKind = "device_name"
	KindOS           NamedKind = "os"
	KindArchitecture NamedKind = "architecture"
)

// IsValid checks whether the kind is one of the recognized values.
func (k NamedKind) IsValid() bool {
	switch k {
	case KindHostname, KindUsername, KindDeviceName, KindOS, KindArchitecture:
		return true
	default:
		return false
	}
}

// Named is an identity fact: one string payload carrying its kind.
type Named struct {
	Kind  NamedKind
	Value string
}

func (Named) fact() {}

// MarshalJSON emits the value under its kind as the only key, e.g.
// {"hostname":"worker-3"}.
func (n Named) MarshalJSON() ([]byte, error) {
	if !n.Kind.IsValid() {
		return nil, fmt.Errorf("invalid named kind: %q", n.Kind)
	}
	return json.Marshal(map[NamedKind]string{n.Kind: n.Value})
}

// Latency is a round-trip measurement against a fixed target.
type Latency struct {
	Target string        `json:"target"`
	RTT    time.Duration `json:"-"`
}

func (Latency) fact() {}

// MarshalJSON emits the round trip in milliseconds.
func (l Latency) MarshalJSON() ([]byte, error) {
	type wire struct {
		Target string  `json:"target"`
		RTTms  float64 `json:"rtt_ms"`
	}
	return json.Marshal(wire{
		Target: l.Target,
		RTTms:  float64(l.RTT.Microseconds()) / 1000,
	})
}
