/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/my-cli/my/pkg/format"
)

// styles groups the lipgloss styles used by the text projection. With
// styling disabled every style is a no-op, so rendered strings are the
// plain values.
type styles struct {
	header   lipgloss.Style
	bold     lipgloss.Style
	accent   lipgloss.Style
	nominal  lipgloss.Style
	warning  lipgloss.Style
	critical lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			header:   plain,
			bold:     plain,
			accent:   plain,
			nominal:  plain,
			warning:  plain,
			critical: plain,
		}
	}
	return styles{
		header:   lipgloss.NewStyle().Bold(true),
		bold:     lipgloss.NewStyle().Bold(true),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		nominal:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		critical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// severity maps a band to its style, so coloring never re-derives
// thresholds.
func (s styles) severity(sev format.Severity) lipgloss.Style {
	switch sev {
	case format.SeverityCritical:
		return s.critical
	case format.SeverityWarning:
		return s.warning
	default:
		return s.nominal
	}
}
