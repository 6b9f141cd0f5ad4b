/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package netinfo

import (
	"fmt"

	"github.com/miekg/dns"
)

// ListDNSServers reads the resolvers from the system DNS configuration
// (resolv.conf format) in file order. Duplicates are kept; the aggregator
// owns deduplication.
func ListDNSServers(path string) ([]string, error) {
	conf, err := dns.ClientConfigFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return conf.Servers, nil
}
