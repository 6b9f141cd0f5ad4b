/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/my-cli/my/pkg/result"
)

const machineInfoPath = "/etc/machine-info"

// CPUArch reports the processor architecture. Infallible.
func CPUArch() string {
	return runtime.GOARCH
}

// IdentityLookup resolves one identity fact. Architecture is handled by
// CPUArch and is rejected here, keeping each kind on exactly one path.
func IdentityLookup(ctx context.Context, kind result.NamedKind) (string, error) {
	switch kind {
	case result.KindHostname:
		return os.Hostname()
	case result.KindUsername:
		u, err := user.Current()
		if err != nil {
			return "", fmt.Errorf("looking up current user: %w", err)
		}
		return u.Username, nil
	case result.KindDeviceName:
		return deviceName()
	case result.KindOS:
		return osName(ctx)
	default:
		return "", fmt.Errorf("no identity lookup for kind %q", kind)
	}
}

// deviceName prefers the pretty hostname from /etc/machine-info and falls
// back to the plain hostname.
func deviceName() (string, error) {
	if pretty, ok := prettyHostname(machineInfoPath); ok {
		return pretty, nil
	}
	return os.Hostname()
}

func prettyHostname(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, found := strings.CutPrefix(line, "PRETTY_HOSTNAME=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"`)
		if value != "" {
			return value, true
		}
	}
	return "", false
}

func osName(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("reading host info: %w", err)
	}
	name := info.Platform
	if info.PlatformVersion != "" {
		name = name + " " + info.PlatformVersion
	}
	if name == "" {
		return "", fmt.Errorf("empty platform name")
	}
	return name, nil
}
