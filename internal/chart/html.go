package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	// DefaultWidth and DefaultHeight size the exported document in pixels
	DefaultWidth  = 980
	DefaultHeight = 576

	htmlExt = ".html"
)

var groupColors = map[Group]string{
	GroupHistorical: "#636efa",
	GroupForecasted: "#ef553b",
}

// HTMLExporter writes the chart to Dir/Filename.html as an interactive document
type HTMLExporter struct {
	Dir      string
	Filename string
	Width    int
	Height   int
}

// Path returns the file the exporter writes
func (e HTMLExporter) Path() string {
	return filepath.Join(e.Dir, e.Filename+htmlExt)
}

// Render implements Renderer
func (e HTMLExporter) Render(table Table, meta Meta) error {
	if e.Filename == "" {
		return errors.New("export filename is required")
	}
	if table.Len() == 0 {
		return errors.New("nothing to chart")
	}

	width, height := e.Width, e.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	line := newLineChart(table, meta, width, height)

	if e.Dir != "" {
		if err := os.MkdirAll(e.Dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	return writeFile(e.Path(), line)
}

type pageRenderer interface {
	Render(w io.Writer) error
}

// writeFile renders r into path. A failed render leaves no file behind.
func writeFile(path string, r pageRenderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}

	if err := r.Render(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}

func newLineChart(table Table, meta Meta, width, height int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: meta.Title(),
			Width:     fmt.Sprintf("%dpx", width),
			Height:    fmt.Sprintf("%dpx", height),
		}),
		charts.WithTitleOpts(opts.Title{Title: meta.Title()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: meta.IndicatorName}),
	)

	line.SetXAxis(table.Labels())

	for _, g := range []Group{GroupHistorical, GroupForecasted} {
		if !table.Has(g) {
			continue
		}
		line.AddSeries(string(g), lineData(table.aligned(g, g == GroupForecasted)),
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(true),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: groupColors[g]}),
		)
	}

	return line
}

func lineData(values []*float64) []opts.LineData {
	out := make([]opts.LineData, len(values))
	for i, v := range values {
		if v == nil {
			// echarts leaves a gap for "-"
			out[i] = opts.LineData{Value: "-"}
			continue
		}
		out[i] = opts.LineData{Value: *v}
	}
	return out
}
