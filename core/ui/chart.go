package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"webdev-cost/core/estimate"
	"webdev-cost/core/types"
	"webdev-cost/internal/errors"
)

const chartWidth = 30

// Chart is a rendered view of one estimate's chart data. A Chart is owned
// by exactly one Display and is unusable once released.
type Chart struct {
	data     estimate.ChartData
	released bool
}

func newChart(data estimate.ChartData) *Chart {
	return &Chart{data: data}
}

// Data returns the series the chart draws
func (c *Chart) Data() estimate.ChartData {
	return c.data
}

// Released reports whether the chart has been released
func (c *Chart) Released() bool {
	return c.released
}

// Release frees the chart. Releasing twice is a no-op.
func (c *Chart) Release() {
	c.released = true
	c.data = estimate.ChartData{}
}

// Render draws one bar per slice plus the legend
func (c *Chart) Render(w *Writer) error {
	if c.released {
		return errors.New(errors.TypeInternal, "chart already released")
	}

	peak := 0.0
	labelWidth := 0
	for _, s := range c.data.Slices {
		if v := s.Value.InexactFloat64(); v > peak {
			peak = v
		}
		if n := utf8.RuneCountInString(s.Label); n > labelWidth {
			labelWidth = n
		}
	}

	for _, s := range c.data.Slices {
		filled := 0
		if peak > 0 {
			filled = int(s.Value.InexactFloat64() / peak * chartWidth)
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", chartWidth-filled)
		label := s.Label + strings.Repeat(" ", labelWidth-utf8.RuneCountInString(s.Label))
		w.Println("%s %s %8s %s", label, bar, types.FormatAmount(s.Value), s.Percentage)
	}

	legend := make([]string, len(c.data.Slices))
	for i, s := range c.data.Slices {
		legend[i] = fmt.Sprintf("[%s] %s", s.Color, s.Label)
	}
	w.Println("%s", w.color(Dim, strings.Join(legend, "  ")))
	return nil
}
