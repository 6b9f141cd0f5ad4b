/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package sysinfo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/my-cli/my/pkg/result"
)

func TestCPUArch(t *testing.T) {
	assert.NotEmpty(t, CPUArch())
}

func TestRAMInfo(t *testing.T) {
	ram := RAMInfo(context.Background())
	assert.NotZero(t, ram.TotalBytes)
	assert.LessOrEqual(t, ram.UsedBytes, ram.TotalBytes)
}

func TestIdentityLookupHostname(t *testing.T) {
	got, err := IdentityLookup(context.Background(), result.KindHostname)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestIdentityLookupUsername(t *testing.T) {
	got, err := IdentityLookup(context.Background(), result.KindUsername)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestIdentityLookupRejectsArchitecture(t *testing.T) {
	_, err := IdentityLookup(context.Background(), result.KindArchitecture)
	assert.Error(t, err)
}

func TestIdentityLookupRejectsUnknownKind(t *testing.T) {
	_, err := IdentityLookup(context.Background(), result.NamedKind("bogus"))
	assert.Error(t, err)
}

func TestPrettyHostname(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{"quoted", "PRETTY_HOSTNAME=\"Ada's Workstation\"\n", "Ada's Workstation", true},
		{"unquoted", "PRETTY_HOSTNAME=lab-box\n", "lab-box", true},
		{"other keys only", "DEPLOYMENT=production\n", "", false},
		{"empty value", "PRETTY_HOSTNAME=\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.content)
			got, ok := prettyHostname(path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrettyHostnameMissingFile(t *testing.T) {
	_, ok := prettyHostname(t.TempDir() + "/machine-info")
	assert.False(t, ok)
}

func TestListDisksIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	disks, err := ListDisks(context.Background())
	if err != nil {
		t.Skipf("disk enumeration unavailable: %v", err)
	}

	for _, d := range disks {
		assert.NotEmpty(t, d.Name)
		assert.GreaterOrEqual(t, d.TotalBytes, d.FreeBytes)
	}
}
