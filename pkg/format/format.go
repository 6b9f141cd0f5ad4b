/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
// Package format holds the value-to-string conversions shared by the text
// and JSON renderers. Both projections must call into this package rather
// than reimplementing the math, so repeated calls on the same input always
// produce the same string.
package format

import (
	"fmt"
	"math/bits"
)

// Binary unit brackets.
const (
	kibi uint64 = 1024
	mebi uint64 = 1024 * kibi
	gibi uint64 = 1024 * mebi
	tebi uint64 = 1024 * gibi
	pebi uint64 = 1024 * tebi
)

// HumanReadableSize renders a byte count in the smallest binary unit bracket
// that keeps the whole part under 1024, with two fractional digits. All math
// is integer arithmetic, never floating point.
func HumanReadableSize(b uint64) string {
	switch {
	case b < kibi:
		return fmt.Sprintf("%d.00 B", b)
	case b < mebi:
		return scaled(b, kibi, "KiB")
	case b < gibi:
		return scaled(b, mebi, "MiB")
	case b < tebi:
		return scaled(b, gibi, "GiB")
	case b < pebi:
		return scaled(b, tebi, "TiB")
	default:
		return scaled(b, pebi, "PiB")
	}
}

func scaled(b, unit uint64, suffix string) string {
	whole := b / unit
	frac := (b % unit) * 100 / unit
	return fmt.Sprintf("%d.%02d %s", whole, frac, suffix)
}

// Percentage is an integer-scaled percentage with one implied decimal digit.
// Storing tenths-of-a-percent avoids floating-point rounding artifacts when
// the same ratio is formatted more than once.
type Percentage struct {
	Tenths uint64
}

// Ratio computes numerator/denominator as tenths-of-a-percent using 128-bit
// intermediate arithmetic. A zero denominator yields zero rather than a
// divide failure.
func Ratio(numerator, denominator uint64) Percentage {
	if denominator == 0 {
		return Percentage{}
	}
	hi, lo := bits.Mul64(numerator, 1000)
	if hi >= denominator {
		// Quotient would not fit in 64 bits.
		return Percentage{Tenths: ^uint64(0)}
	}
	tenths, _ := bits.Div64(hi, lo, denominator)
	return Percentage{Tenths: tenths}
}

// String renders the percentage as "{whole}.{tenth}", e.g. "33.3".
func (p Percentage) String() string {
	return fmt.Sprintf("%d.%d", p.Tenths/10, p.Tenths%10)
}

// Severity is a qualitative band derived from a Percentage. Text coloring
// and any machine-readable severity field derive from this one source.
type Severity int

const (
	SeverityNominal Severity = iota
	SeverityWarning
	SeverityCritical
)

// Consumption thresholds in tenths-of-a-percent.
const (
	usedWarningTenths  = 700
	usedCriticalTenths = 900
	freeWarningTenths  = 200
	freeCriticalTenths = 100
)

// UsedSeverity bands a used-capacity percentage: above 90% is critical,
// above 70% is a warning.
func UsedSeverity(p Percentage) Severity {
	switch {
	case p.Tenths > usedCriticalTenths:
		return SeverityCritical
	case p.Tenths > usedWarningTenths:
		return SeverityWarning
	default:
		return SeverityNominal
	}
}

// FreeSeverity bands a free-capacity percentage: under 10% left is critical,
// under 20% a warning.
func FreeSeverity(p Percentage) Severity {
	switch {
	case p.Tenths < freeCriticalTenths:
		return SeverityCritical
	case p.Tenths < freeWarningTenths:
		return SeverityWarning
	default:
		return SeverityNominal
	}
}
