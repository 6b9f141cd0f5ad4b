/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/my-cli/my/pkg/result"
)

// Fixed section order of the snapshot text layout.
const (
	sectionSystem   = "System"
	sectionDatetime = "Datetime"
	sectionStorage  = "Storage"
	sectionNetwork  = "Network"
)

// Network table group names.
const (
	groupIPs        = "ips"
	groupDNS        = "dns"
	groupInterfaces = "interfaces"
)

// snapshotText renders the four fixed-order sections. Absent optional
// fields are skipped without a placeholder row.
func (w *Writer) snapshotText(snap *result.Snapshot) string {
	var b strings.Builder

	w.writeSection(&b, sectionSystem, w.systemRows(snap))
	b.WriteString("\n")
	w.writeSection(&b, sectionDatetime, w.datetimeRows(snap))
	b.WriteString("\n")
	w.writeSection(&b, sectionStorage, w.storageRows(snap))
	b.WriteString("\n")
	w.writeNetworkSection(&b, snap)

	return strings.TrimRight(b.String(), "\n")
}

// row is one label/value pair within a section.
type row struct {
	label string
	value string
}

// writeSection prints a bold header and the rows with labels left-padded to
// one column width.
func (w *Writer) writeSection(b *strings.Builder, header string, rows []row) {
	b.WriteString(w.styles.header.Render(header))
	b.WriteString("\n")

	width := 0
	for _, r := range rows {
		if l := runewidth.StringWidth(r.label); l > width {
			width = l
		}
	}

	for _, r := range rows {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(r.label))
		fmt.Fprintf(b, "  %s%s  %s\n", pad, r.label, r.value)
	}
}

func (w *Writer) systemRows(snap *result.Snapshot) []row {
	rows := []row{}
	if snap.Hostname != nil {
		rows = append(rows, row{"hostname", *snap.Hostname})
	}
	if snap.Username != nil {
		rows = append(rows, row{"username", *snap.Username})
	}
	if snap.DeviceName != nil {
		rows = append(rows, row{"device name", *snap.DeviceName})
	}
	if snap.OS != nil {
		rows = append(rows, row{"os", *snap.OS})
	}
	rows = append(rows, row{"architecture", snap.Architecture})
	if snap.CPU != nil {
		rows = append(rows, row{"cpu", cpuString(*snap.CPU)})
	}
	rows = append(rows, row{"ram", w.ramString(snap.RAM)})
	return rows
}

func (w *Writer) datetimeRows(snap *result.Snapshot) []row {
	rows := []row{{"date", dateString(snap.Date)}}

	lines := w.timeLines(snap.Time)
	rows = append(rows, row{"time", lines[0]})
	if len(lines) > 1 {
		rows = append(rows, row{"offset", lines[1]})
	}
	return rows
}

func (w *Writer) storageRows(snap *result.Snapshot) []row {
	if snap.Disks == nil {
		return nil
	}
	rows := []row{}
	for _, d := range *snap.Disks {
		value := fmt.Sprintf("%s, %s", d.Kind, w.diskUsageString(d))
		rows = append(rows, row{d.Name, value})
	}
	return rows
}

// netRow is one (group-name, sub-label, value) triple of the merged
// Network table.
type netRow struct {
	group string
	label string
	value string
}

// writeNetworkSection merges the three independently sized groups into one
// aligned table:
//
//	pass 1 collects every triple across all groups in group order;
//	pass 2 computes the sub-label column width over ALL collected rows;
//	pass 3 emits rows in collection order, printing the group name only
//	where the group changes and indenting continuation rows so values stay
//	in one column.
func (w *Writer) writeNetworkSection(b *strings.Builder, snap *result.Snapshot) {
	b.WriteString(w.styles.header.Render(sectionNetwork))
	b.WriteString("\n")
	w.writeNetworkRows(b, collectNetworkRows(snap))
}

func collectNetworkRows(snap *result.Snapshot) []netRow {
	rows := []netRow{}
	if snap.IPs != nil {
		for _, ip := range *snap.IPs {
			rows = append(rows, netRow{groupIPs, string(ip.Category), ip.Address.String()})
		}
	}
	if snap.DNSServers != nil {
		for _, s := range *snap.DNSServers {
			rows = append(rows, netRow{groupDNS, fmt.Sprintf("server %d", s.Position), s.Address})
		}
	}
	if snap.Interfaces != nil {
		for _, i := range *snap.Interfaces {
			rows = append(rows, netRow{groupInterfaces, i.Name, i.Address})
		}
	}
	return rows
}

func (w *Writer) writeNetworkRows(b *strings.Builder, rows []netRow) {
	labelWidth := 0
	groupWidth := 0
	for _, r := range rows {
		if l := runewidth.StringWidth(r.label); l > labelWidth {
			labelWidth = l
		}
		if g := runewidth.StringWidth(r.group); g > groupWidth {
			groupWidth = g
		}
	}

	prevGroup := ""
	for _, r := range rows {
		group := ""
		if r.group != prevGroup {
			group = r.group
			prevGroup = r.group
		}

		groupPad := strings.Repeat(" ", groupWidth-runewidth.StringWidth(group))
		labelPad := strings.Repeat(" ", labelWidth-runewidth.StringWidth(r.label))
		fmt.Fprintf(b, "  %s%s  %s%s  %s\n", group, groupPad, labelPad, r.label, r.value)
	}
}
