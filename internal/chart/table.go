// Package chart turns a parsed indicator series into a line chart.
//
// A Table holds rows of (x label, y value, group). Rows in the historical group
// come from the provider; rows in the forecasted group extend them. Renderers
// draw each group as its own coloured series: HTMLExporter writes an interactive
// HTML document and Terminal draws the chart in the terminal.
package chart

import (
	"fmt"
	"sort"
)

// Group distinguishes observed rows from projected ones
type Group string

const (
	GroupHistorical Group = "historical"
	GroupForecasted Group = "forecasted"
)

// Row is one plotted point
type Row struct {
	X     string
	Y     float64
	Group Group
}

// Meta carries the labels drawn around the chart
type Meta struct {
	IndicatorCode string
	IndicatorName string
	Country       string
}

// Title returns the chart heading
func (m Meta) Title() string {
	return fmt.Sprintf("Historical and forecasted values for %s in %s", m.IndicatorCode, m.Country)
}

// Renderer draws a table
type Renderer interface {
	Render(table Table, meta Meta) error
}

// Table is the chart's input: historical rows ascending by X, then forecasted rows ascending by X
type Table struct {
	Rows []Row
}

// NewTable builds a table from the two groups. Each group is sorted by X and
// rows are relabelled with the group they were passed in.
func NewTable(historical, forecasted []Row) Table {
	rows := make([]Row, 0, len(historical)+len(forecasted))
	rows = append(rows, sortedAs(historical, GroupHistorical)...)
	rows = append(rows, sortedAs(forecasted, GroupForecasted)...)
	return Table{Rows: rows}
}

func sortedAs(in []Row, g Group) []Row {
	out := make([]Row, len(in))
	for i, r := range in {
		r.Group = g
		out[i] = r
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

// Len returns the number of rows
func (t Table) Len() int {
	return len(t.Rows)
}

// Labels returns the X labels of all rows in table order
func (t Table) Labels() []string {
	labels := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		labels[i] = r.X
	}
	return labels
}

// Values returns the Y values of the rows in group g, in table order
func (t Table) Values(g Group) []float64 {
	var out []float64
	for _, r := range t.Rows {
		if r.Group == g {
			out = append(out, r.Y)
		}
	}
	return out
}

// Has reports whether any row belongs to group g
func (t Table) Has(g Group) bool {
	for _, r := range t.Rows {
		if r.Group == g {
			return true
		}
	}
	return false
}

// aligned returns one slot per row holding the row's Y when it belongs to g.
// With bridge set, the last row before the first g row is also filled so the
// two groups join up when drawn.
func (t Table) aligned(g Group, bridge bool) []*float64 {
	out := make([]*float64, len(t.Rows))
	for i := range t.Rows {
		r := t.Rows[i]
		if r.Group != g {
			continue
		}
		y := r.Y
		out[i] = &y
		if bridge && i > 0 && out[i-1] == nil && t.Rows[i-1].Group != g {
			prev := t.Rows[i-1].Y
			out[i-1] = &prev
		}
	}
	return out
}
