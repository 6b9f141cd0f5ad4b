/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package gather

import (
	"context"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/my-cli/my/pkg/errors"
	"github.com/my-cli/my/pkg/result"
)

var (
	errDown = errors.New(errors.ErrCodeProbeFailure, "network unreachable")

	publicAddr = netip.MustParseAddr("203.0.113.7")
	localAddr  = netip.MustParseAddr("192.168.1.20")
)

// workingProbes returns a probe set where everything succeeds.
func workingProbes() *Probes {
	return &Probes{
		PublicIP:   func(context.Context) (netip.Addr, error) { return publicAddr, nil },
		LocalIP:    func() (netip.Addr, error) { return localAddr, nil },
		DNSServers: func() ([]string, error) { return []string{"10.0.0.1", "10.0.0.2"}, nil },
		Interfaces: func(bool) ([]result.Interface, error) {
			return []result.Interface{{Name: "en0", Address: "192.168.1.20"}}, nil
		},
		SyncClock: func() (float64, error) { return 0.042, nil },
		Identity: func(_ context.Context, kind result.NamedKind) (string, error) {
			return "value-" + string(kind), nil
		},
		Arch: func() string { return "arm64" },
		Disks: func(context.Context) ([]result.Disk, error) {
			return []result.Disk{{Name: "/dev/sda1", Kind: "ext4", TotalBytes: 100, FreeBytes: 40}}, nil
		},
		CPU: func(context.Context) (result.CPU, error) {
			return result.CPU{Brand: "Test CPU", Cores: 4, FrequencyMHz: 2400}, nil
		},
		RAM: func(context.Context) result.RAM {
			return result.RAM{TotalBytes: 16, UsedBytes: 8, FreeBytes: 4, AvailableBytes: 7}
		},
		Latency: func(context.Context) (time.Duration, error) { return 12 * time.Millisecond, nil },
	}
}

func TestIPsPublicStrict(t *testing.T) {
	g := NewWithProbes(workingProbes())

	res, err := g.IPs(context.Background(), result.IPPublic)
	require.NoError(t, err)

	list := res.List()
	require.NotNil(t, list)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, result.IPPublic, list.IPs[0].Category)
	assert.Equal(t, publicAddr, list.IPs[0].Address)
}

func TestIPsPublicStrictFailure(t *testing.T) {
	p := workingProbes()
	p.PublicIP = func(context.Context) (netip.Addr, error) { return netip.Addr{}, errDown }
	g := NewWithProbes(p)

	_, err := g.IPs(context.Background(), result.IPPublic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "public ip")
	assert.Equal(t, errors.ErrCodeProbeFailure, errors.CodeOf(err))
}

func TestIPsAnyBothSucceed(t *testing.T) {
	g := NewWithProbes(workingProbes())

	res, err := g.IPs(context.Background(), result.IPAny)
	require.NoError(t, err)

	list := res.List()
	require.NotNil(t, list)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, result.IPPublic, list.IPs[0].Category)
	assert.Equal(t, result.IPLocal, list.IPs[1].Category)
}

func TestIPsAnyPartialSuccess(t *testing.T) {
	p := workingProbes()
	p.PublicIP = func(context.Context) (netip.Addr, error) { return netip.Addr{}, errDown }
	g := NewWithProbes(p)

	res, err := g.IPs(context.Background(), result.IPAny)
	require.NoError(t, err)

	list := res.List()
	require.NotNil(t, list)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, result.IPLocal, list.IPs[0].Category)
}

func TestIPsAnyBothFail(t *testing.T) {
	p := workingProbes()
	p.PublicIP = func(context.Context) (netip.Addr, error) { return netip.Addr{}, errDown }
	p.LocalIP = func() (netip.Addr, error) { return netip.Addr{}, errDown }
	g := NewWithProbes(p)

	_, err := g.IPs(context.Background(), result.IPAny)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeAggregateFailure, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "ip")
}

func TestIPsUnknownCategory(t *testing.T) {
	g := NewWithProbes(workingProbes())

	_, err := g.IPs(context.Background(), result.IPCategory("bogus"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestDNSServersDedupAndPositions(t *testing.T) {
	p := workingProbes()
	p.DNSServers = func() ([]string, error) {
		return []string{"10.0.0.1", "10.0.0.2", "10.0.0.1", "10.0.0.3"}, nil
	}
	g := NewWithProbes(p)

	res, err := g.DNSServers(context.Background())
	require.NoError(t, err)

	list := res.List()
	require.NotNil(t, list)
	require.Equal(t, 3, list.Len())
	assert.Equal(t, result.DNSServer{Position: 1, Address: "10.0.0.1"}, list.DNSServers[0])
	assert.Equal(t, result.DNSServer{Position: 2, Address: "10.0.0.2"}, list.DNSServers[1])
	assert.Equal(t, result.DNSServer{Position: 3, Address: "10.0.0.3"}, list.DNSServers[2])
}

func TestDNSServersEmptySuccess(t *testing.T) {
	p := workingProbes()
	p.DNSServers = func() ([]string, error) { return nil, nil }
	g := NewWithProbes(p)

	res, err := g.DNSServers(context.Background())
	require.NoError(t, err)

	list := res.List()
	require.NotNil(t, list)
	assert.Equal(t, 0, list.Len())
	assert.NotNil(t, list.DNSServers)
}

func TestDisksDedupByName(t *testing.T) {
	p := workingProbes()
	p.Disks = func(context.Context) ([]result.Disk, error) {
		return []result.Disk{
			{Name: "/dev/sda1", Kind: "ext4", TotalBytes: 100, FreeBytes: 40},
			{Name: "/dev/sda1", Kind: "ext4", TotalBytes: 100, FreeBytes: 40},
			{Name: "/dev/sdb1", Kind: "xfs", TotalBytes: 200, FreeBytes: 10},
		}, nil
	}
	g := NewWithProbes(p)

	res, err := g.Disks(context.Background())
	require.NoError(t, err)

	list := res.List()
	require.NotNil(t, list)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, "/dev/sda1", list.Disks[0].Name)
	assert.Equal(t, "/dev/sdb1", list.Disks[1].Name)
}

func TestNamedArchitectureNeverFails(t *testing.T) {
	p := workingProbes()
	p.Identity = func(context.Context, result.NamedKind) (string, error) { return "", errDown }
	g := NewWithProbes(p)

	res, err := g.Named(context.Background(), result.KindArchitecture)
	require.NoError(t, err)

	named, ok := res.Scalar().(result.Named)
	require.True(t, ok)
	assert.Equal(t, result.KindArchitecture, named.Kind)
	assert.Equal(t, "arm64", named.Value)
}

func TestNamedStrictFailureNamesOperation(t *testing.T) {
	p := workingProbes()
	p.Identity = func(context.Context, result.NamedKind) (string, error) { return "", errDown }
	g := NewWithProbes(p)

	_, err := g.Named(context.Background(), result.KindDeviceName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device name")
}

func TestTimeDegradesWithoutOffset(t *testing.T) {
	p := workingProbes()
	p.SyncClock = func() (float64, error) { return 0, errDown }
	g := NewWithProbes(p)

	res, err := g.Time(context.Background())
	require.NoError(t, err)

	fact, ok := res.Scalar().(result.Time)
	require.True(t, ok)
	assert.Nil(t, fact.Offset)
}

func TestTimeCarriesOffset(t *testing.T) {
	g := NewWithProbes(workingProbes())

	res, err := g.Time(context.Background())
	require.NoError(t, err)

	fact, ok := res.Scalar().(result.Time)
	require.True(t, ok)
	require.NotNil(t, fact.Offset)
	assert.InDelta(t, 0.042, *fact.Offset, 1e-9)
}

func TestDateTime(t *testing.T) {
	g := NewWithProbes(workingProbes())

	res, err := g.DateTime(context.Background())
	require.NoError(t, err)

	fact, ok := res.Scalar().(result.DateTime)
	require.True(t, ok)
	assert.NotEmpty(t, fact.Date.DayName)
	require.NotNil(t, fact.Time.Offset)
}

func TestLatency(t *testing.T) {
	g := NewWithProbes(workingProbes())

	res, err := g.Latency(context.Background(), "10.0.0.1:53")
	require.NoError(t, err)

	fact, ok := res.Scalar().(result.Latency)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1:53", fact.Target)
	assert.Equal(t, 12*time.Millisecond, fact.RTT)
}

func TestDedupByKeepsFirst(t *testing.T) {
	in := []string{"b", "a", "b", "c", "a"}
	out := dedupBy(in, func(s string) string { return s })
	assert.Equal(t, []string{"b", "a", "c"}, out)
}
