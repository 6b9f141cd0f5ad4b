/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package result

import (
	"encoding/json"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	// Thursday 2026-01-01 falls in ISO week 1.
	ts := time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)
	d := NewDate(ts)

	assert.Equal(t, "Thursday", d.DayName)
	assert.Equal(t, 1, d.DayNumber)
	assert.Equal(t, "January", d.MonthName)
	assert.Equal(t, 2026, d.Year)
	assert.Equal(t, 1, d.Week)
}

func TestNewTime(t *testing.T) {
	ts := time.Date(2026, time.January, 1, 23, 4, 5, 0, time.UTC)

	noOffset := NewTime(ts, nil)
	assert.Equal(t, 23, noOffset.Hour)
	assert.Equal(t, 4, noOffset.Minute)
	assert.Equal(t, 5, noOffset.Second)
	assert.Equal(t, "UTC", noOffset.Timezone)
	assert.Nil(t, noOffset.Offset)

	offset := 0.0421
	withOffset := NewTime(ts, &offset)
	require.NotNil(t, withOffset.Offset)
	assert.InDelta(t, 0.0421, *withOffset.Offset, 1e-9)
}

func TestTimeJSONOmitsAbsentOffset(t *testing.T) {
	ts := time.Date(2026, time.January, 1, 23, 4, 5, 0, time.UTC)

	data, err := json.Marshal(NewTime(ts, nil))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "offset")

	offset := 1.5
	data, err = json.Marshal(NewTime(ts, &offset))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"offset":1.5`)
}

func TestNamedMarshalJSON(t *testing.T) {
	tests := []struct {
		named Named
		want  string
	}{
		{Named{Kind: KindHostname, Value: "worker-3"}, `{"hostname":"worker-3"}`},
		{Named{Kind: KindUsername, Value: "ada"}, `{"username":"ada"}`},
		{Named{Kind: KindDeviceName, Value: "Ada's box"}, `{"device_name":"Ada's box"}`},
		{Named{Kind: KindOS, Value: "Ubuntu 24.04"}, `{"os":"Ubuntu 24.04"}`},
		{Named{Kind: KindArchitecture, Value: "arm64"}, `{"architecture":"arm64"}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.named.Kind), func(t *testing.T) {
			data, err := json.Marshal(tt.named)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestNamedMarshalJSONRejectsInvalidKind(t *testing.T) {
	_, err := json.Marshal(Named{Kind: "bogus", Value: "x"})
	assert.Error(t, err)
}

func TestNamedKindIsValid(t *testing.T) {
	for _, k := range []NamedKind{KindHostname, KindUsername, KindDeviceName, KindOS, KindArchitecture} {
		assert.True(t, k.IsValid(), string(k))
	}
	assert.False(t, NamedKind("").IsValid())
	assert.False(t, NamedKind("devicename").IsValid())
}

func TestListMarshalJSONNamedWrapper(t *testing.T) {
	list := NewDiskList([]Disk{
		{Name: "/dev/sda1", Kind: "ext4", TotalBytes: 100, FreeBytes: 25},
	})

	data, err := json.Marshal(NewList(list))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"disks":[{"name":"/dev/sda1","type":"ext4","total_space_bytes":100,"free_space_bytes":25}]}`,
		string(data))
}

func TestListMarshalJSONEmptyIsArray(t *testing.T) {
	// A successful probe with zero items is an empty array, never null.
	data, err := json.Marshal(NewInterfaceList(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"interfaces":[]}`, string(data))
}

func TestDiskListRoundTrip(t *testing.T) {
	in := NewDiskList([]Disk{
		{Name: "/dev/sda1", Kind: "ext4", TotalBytes: 500, FreeBytes: 100},
		{Name: "/dev/sdb1", Kind: "xfs", TotalBytes: 900, FreeBytes: 450},
	})

	data, err := json.Marshal(NewList(in))
	require.NoError(t, err)

	var decoded struct {
		Disks []Disk `json:"disks"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, in.Disks, decoded.Disks)
}

func TestResultScalarMarshalJSONNoExtraWrapper(t *testing.T) {
	data, err := json.Marshal(NewScalar(CPU{Brand: "Apple M2", Cores: 8, FrequencyMHz: 3500}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"brand":"Apple M2","cores":8,"frequency_mhz":3500}`, string(data))
}

func TestResultExactlyOneArm(t *testing.T) {
	scalar := NewScalar(RAM{TotalBytes: 1})
	assert.NotNil(t, scalar.Scalar())
	assert.Nil(t, scalar.List())
	assert.Nil(t, scalar.Snapshot())

	list := NewList(NewIPList(nil))
	assert.Nil(t, list.Scalar())
	assert.NotNil(t, list.List())
	assert.Nil(t, list.Snapshot())

	snap := NewSnapshotResult(NewSnapshot())
	assert.Nil(t, snap.Scalar())
	assert.Nil(t, snap.List())
	assert.NotNil(t, snap.Snapshot())

	_, err := json.Marshal(Result{})
	assert.Error(t, err)
}

func TestSnapshotJSONOmitsAbsentFields(t *testing.T) {
	snap := NewSnapshot()
	snap.Date = NewDate(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	snap.Time = NewTime(time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC), nil)
	snap.Architecture = "amd64"
	snap.RAM = RAM{TotalBytes: 16 << 30, UsedBytes: 8 << 30, FreeBytes: 4 << 30, AvailableBytes: 7 << 30}

	data, err := json.Marshal(NewSnapshotResult(snap))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	// Mandatory fields are always present.
	for _, key := range []string{"id", "taken_at", "date", "time", "ram", "architecture"} {
		assert.Contains(t, doc, key)
	}

	// Failed probes leave no trace, not even null.
	for _, key := range []string{"ips", "dns_servers", "interfaces", "disks", "cpu", "hostname", "username", "device_name", "os"} {
		assert.NotContains(t, doc, key)
	}
}

func TestSnapshotJSONEmptyListPresent(t *testing.T) {
	snap := NewSnapshot()
	empty := []Interface{}
	snap.Interfaces = &empty

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []any{}, doc["interfaces"])
}

func TestIPMarshal(t *testing.T) {
	ip := IP{Category: IPPublic, Address: netip.MustParseAddr("203.0.113.7")}
	data, err := json.Marshal(ip)
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"public","ip":"203.0.113.7"}`, string(data))
}

func TestLatencyMarshal(t *testing.T) {
	l := Latency{Target: "208.67.222.222:53", RTT: 12500 * time.Microsecond}
	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{"target":"208.67.222.222:53","rtt_ms":12.5}`, string(data))
}
