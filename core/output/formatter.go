// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"

	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *EstimationResult) error
}

// EstimationResult contains the complete estimation output
type EstimationResult struct {
	// Estimate is the computed estimate, or the placeholder
	Estimate *estimate.Estimate `json:"estimate"`

	// Chart is the labeled series for charting
	Chart estimate.ChartData `json:"chart"`

	// Discount is set when a discount was calculated
	Discount *discount.Result `json:"discount,omitempty"`

	// Error explains a placeholder estimate
	Error string `json:"error,omitempty"`

	// Metadata contains execution context
	Metadata EstimationMetadata `json:"metadata"`
}

// EstimationMetadata contains execution context
type EstimationMetadata struct {
	// Timestamp is when the estimation was performed
	Timestamp string `json:"timestamp"`

	// Version is the tool version
	Version string `json:"version"`
}

// NewResult wraps an estimate with its chart data
func NewResult(est *estimate.Estimate, err error) *EstimationResult {
	if est == nil {
		est = estimate.Placeholder()
	}
	result := &EstimationResult{
		Estimate: est,
		Chart:    est.Chart(),
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry with the given formatters
func NewRegistry(formatters ...Formatter) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	for _, f := range formatters {
		_ = r.Register(f)
	}
	return r
}

// DefaultRegistry returns a registry with every builtin formatter
func DefaultRegistry(showDetails, noColor bool) *Registry {
	return NewRegistry(
		NewCLIFormatter(showDetails, noColor),
		NewJSONFormatter(),
		NewMarkdownFormatter(),
	)
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %v)", format, r.Formats())
	}
	return f, nil
}

// Formats lists the registered formats
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
