/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package result

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot aggregates every probe result captured at one instant.
//
// Date, Time, RAM, and Architecture are mandatory: they are computed locally
// without fallible calls (Time's offset sub-field is itself optional). Every
// other field is optional: nil if and only if its probe failed or timed out.
// A present-but-empty list means the probe succeeded and found zero items.
type Snapshot struct {
	ID      string    `json:"id"`
	TakenAt time.Time `json:"taken_at"`

	Date         Date   `json:"date"`
	Time         Time   `json:"time"`
	Architecture string `json:"architecture"`
	RAM          RAM    `json:"ram"`

	Hostname   *string `json:"hostname,omitempty"`
	Username   *string `json:"username,omitempty"`
	DeviceName *string `json:"device_name,omitempty"`
	OS         *string `json:"os,omitempty"`
	CPU        *CPU    `json:"cpu,omitempty"`

	IPs        *[]IP        `json:"ips,omitempty"`
	DNSServers *[]DNSServer `json:"dns_servers,omitempty"`
	Interfaces *[]Interface `json:"interfaces,omitempty"`
	Disks      *[]Disk      `json:"disks,omitempty"`
}

func (*Snapshot) fact() {}

// NewSnapshot creates a Snapshot shell with identity metadata. The gatherer
// fills the fields before the value is handed to a renderer; after that it
// is never mutated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		ID:      uuid.NewString(),
		TakenAt: time.Now().UTC(),
	}
}
