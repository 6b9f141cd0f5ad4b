/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package netinfo

import (
	"fmt"
	"net"

	"github.com/my-cli/my/pkg/result"
)

// EnumerateInterfaces lists interface addresses in enumeration order, one
// entry per address. Unless all is set, loopback and down interfaces are
// skipped.
func EnumerateInterfaces(all bool) ([]result.Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("enumerating interfaces: %w", err)
	}

	out := []result.Interface{}
	for _, iface := range ifaces {
		if !all {
			if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
				continue
			}
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return nil, fmt.Errorf("listing addresses of %s: %w", iface.Name, err)
		}

		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			out = append(out, result.Interface{
				Name:    iface.Name,
				Address: ipNet.IP.String(),
			})
		}
	}

	return out, nil
}
