/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/my-cli/my/pkg/format"
	"github.com/my-cli/my/pkg/result"
)

// Clock-offset bands, in absolute seconds.
const (
	offsetSyncedBound   = 0.1
	offsetSlightlyBound = 1.0
)

func (w *Writer) renderText(res result.Result) error {
	var text string
	switch {
	case res.Snapshot() != nil:
		text = w.snapshotText(res.Snapshot())
	case res.List() != nil:
		text = w.listText(res.List())
	case res.Scalar() != nil:
		text = w.scalarText(res.Scalar())
	default:
		return fmt.Errorf("empty result")
	}

	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(w.out, text)
	return err
}

// scalarText renders one fact as a single formatted line, or a small fixed
// number of lines for the time-carrying facts.
func (w *Writer) scalarText(fact result.Fact) string {
	switch f := fact.(type) {
	case result.Date:
		return dateString(f)
	case result.Time:
		return strings.Join(w.timeLines(f), "\n")
	case result.DateTime:
		lines := append([]string{dateString(f.Date)}, w.timeLines(f.Time)...)
		return strings.Join(lines, "\n")
	case result.Named:
		return f.Value
	case result.CPU:
		return cpuString(f)
	case result.RAM:
		return w.ramString(f)
	case result.Latency:
		return latencyString(f)
	case result.IP:
		return ipString(f)
	case result.DNSServer:
		return dnsServerString(f)
	case result.Interface:
		return interfaceString(f)
	case result.Disk:
		return w.diskString(f)
	default:
		return fmt.Sprintf("%v", fact)
	}
}

// listText renders a named list as newline-joined per-item lines.
func (w *Writer) listText(list *result.List) string {
	lines := []string{}
	switch list.Kind {
	case result.ListIPs:
		for _, ip := range list.IPs {
			lines = append(lines, ipString(ip))
		}
	case result.ListDNSServers:
		for _, s := range list.DNSServers {
			lines = append(lines, dnsServerString(s))
		}
	case result.ListInterfaces:
		for _, i := range list.Interfaces {
			lines = append(lines, interfaceString(i))
		}
	case result.ListDisks:
		for _, d := range list.Disks {
			lines = append(lines, w.diskString(d))
		}
	}
	return strings.Join(lines, "\n")
}

func dateString(d result.Date) string {
	return fmt.Sprintf("%s, %d %s, %d, week %d", d.DayName, d.DayNumber, d.MonthName, d.Year, d.Week)
}

// timeLines renders the primary value line plus the optional clock-offset
// annotation line.
func (w *Writer) timeLines(t result.Time) []string {
	primary := fmt.Sprintf("%s:%s:%02d %s",
		w.styles.bold.Render(fmt.Sprintf("%02d", t.Hour)),
		w.styles.bold.Render(fmt.Sprintf("%02d", t.Minute)),
		t.Second,
		w.styles.accent.Render(t.Timezone))

	if t.Offset == nil {
		return []string{primary}
	}

	annotation := fmt.Sprintf("±%.4f seconds (%s)", *t.Offset, offsetBand(*t.Offset))
	return []string{primary, annotation}
}

// offsetBand labels a clock offset qualitatively by magnitude.
func offsetBand(seconds float64) string {
	abs := math.Abs(seconds)
	switch {
	case abs < offsetSyncedBound:
		return "in sync"
	case abs < offsetSlightlyBound:
		return "slightly off"
	default:
		return "significantly off"
	}
}

func ipString(ip result.IP) string {
	return fmt.Sprintf("%s\t%s", ip.Category, ip.Address)
}

func dnsServerString(s result.DNSServer) string {
	return fmt.Sprintf("server %d  %s", s.Position, s.Address)
}

func interfaceString(i result.Interface) string {
	return fmt.Sprintf("%s %s", i.Name, i.Address)
}

func cpuString(c result.CPU) string {
	return fmt.Sprintf("%s, %d cores, %d MHz", c.Brand, c.Cores, c.FrequencyMHz)
}

func latencyString(l result.Latency) string {
	return fmt.Sprintf("rtt to %s: %s", l.Target, l.RTT)
}

// ramString renders usage with a severity-colored used percentage.
func (w *Writer) ramString(r result.RAM) string {
	used := format.HumanReadableSize(r.UsedBytes)
	total := format.HumanReadableSize(r.TotalBytes)
	available := format.HumanReadableSize(r.AvailableBytes)

	pct := format.Ratio(r.UsedBytes, r.TotalBytes)
	style := w.styles.severity(format.UsedSeverity(pct))

	return fmt.Sprintf("%s used of %s (%s%% used), %s available",
		style.Render(used), total, style.Render(pct.String()), available)
}

// diskString renders one disk with a severity-colored free percentage.
func (w *Writer) diskString(d result.Disk) string {
	return fmt.Sprintf("%s, %s, %s", w.styles.accent.Render(d.Name), d.Kind, w.diskUsageString(d))
}

func (w *Writer) diskUsageString(d result.Disk) string {
	free := format.HumanReadableSize(d.FreeBytes)
	total := format.HumanReadableSize(d.TotalBytes)

	pct := format.Ratio(d.FreeBytes, d.TotalBytes)
	style := w.styles.severity(format.FreeSeverity(pct))

	return fmt.Sprintf("%s free of %s (%s%% free)",
		style.Render(free), total, style.Render(pct.String()))
}
