package chart

import (
	"errors"
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

var termColors = map[Group]ui.Color{
	GroupHistorical: ui.ColorCyan,
	GroupForecasted: ui.ColorMagenta,
}

// Terminal draws the chart full-screen and blocks until q or Ctrl-C is pressed
type Terminal struct{}

// Render implements Renderer
func (Terminal) Render(table Table, meta Meta) error {
	if !table.Has(GroupHistorical) {
		return errors.New("nothing to chart")
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer ui.Close()

	p := newPlot(table, meta)
	w, h := ui.TerminalDimensions()
	p.SetRect(0, 0, w, h)
	ui.Render(p)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			p.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(p)
		}
	}
	return nil
}

// newPlot lays out the table for termui. The plot cannot leave gaps, so the
// forecasted colour is drawn under the full run of rows and the historical rows
// are drawn over it; what stays visible past the last observation is the forecast.
func newPlot(table Table, meta Meta) *widgets.Plot {
	p := widgets.NewPlot()
	p.Title = fmt.Sprintf(" %s | %s ", meta.Title(), meta.IndicatorName)
	p.PlotType = widgets.LineChart
	p.Marker = widgets.MarkerBraille
	p.AxesColor = ui.ColorWhite
	p.DataLabels = table.Labels()

	historical := table.Values(GroupHistorical)
	if table.Has(GroupForecasted) {
		all := make([]float64, 0, table.Len())
		for _, r := range table.Rows {
			all = append(all, r.Y)
		}
		p.Data = [][]float64{padded(all), padded(historical)}
		p.LineColors = []ui.Color{termColors[GroupForecasted], termColors[GroupHistorical]}
	} else {
		p.Data = [][]float64{padded(historical)}
		p.LineColors = []ui.Color{termColors[GroupHistorical]}
	}

	return p
}

// padded repeats a lone point; the braille line renderer needs at least two.
func padded(values []float64) []float64 {
	if len(values) != 1 {
		return values
	}
	return []float64{values[0], values[0]}
}
