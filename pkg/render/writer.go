/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
// Package render projects result values into their two output forms: an
// aligned, grouped human-readable text layout and a schema-stable JSON
// document. Both projections are stateless functions over the same result
// value; neither re-queries a probe, so the two forms cannot drift apart.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/my-cli/my/pkg/result"
)

// Format represents the output format type.
type Format string

const (
	// FormatText outputs aligned human-readable text.
	FormatText Format = "text"
	// FormatJSON outputs structured JSON.
	FormatJSON Format = "json"
)

// IsUnknown reports whether the format is outside the supported set.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON:
		return false
	default:
		return true
	}
}

// SupportedFormats returns all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
	}
}

// Writer renders result values to an output destination in one format.
type Writer struct {
	format Format
	out    io.Writer
	styles styles
}

// Option configures a Writer.
type Option func(*Writer)

// WithColor enables or disables terminal styling. The choice is threaded
// explicitly; there is no process-wide color toggle.
func WithColor(enabled bool) Option {
	return func(w *Writer) {
		w.styles = newStyles(enabled)
	}
}

// NewWriter creates a Writer for the given format and destination. A nil
// destination means stdout. Styling is off unless WithColor(true) is given.
func NewWriter(format Format, out io.Writer, opts ...Option) *Writer {
	if out == nil {
		out = os.Stdout
	}
	w := &Writer{
		format: format,
		out:    out,
		styles: newStyles(false),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Render projects the result in the configured format.
func (w *Writer) Render(res result.Result) error {
	switch w.format {
	case FormatJSON:
		return w.renderJSON(res)
	case FormatText:
		return w.renderText(res)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) renderJSON(res result.Result) error {
	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(res); err != nil {
		return fmt.Errorf("serializing to JSON: %w", err)
	}
	return nil
}
