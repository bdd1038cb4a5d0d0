package chart

import (
	"image"
	"strings"
	"testing"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

func TestNewPlot_WithForecast(t *testing.T) {
	meta := Meta{IndicatorCode: "NY.GDP.MKTP.CN", IndicatorName: "GDP (current LCU)", Country: "Afghanistan"}
	p := newPlot(sampleTable(), meta)

	if len(p.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(p.Data))
	}
	if len(p.Data[0]) != 5 {
		t.Errorf("len(Data[0]) = %d, want 5 (all rows)", len(p.Data[0]))
	}
	if len(p.Data[1]) != 3 {
		t.Errorf("len(Data[1]) = %d, want 3 (historical rows)", len(p.Data[1]))
	}
	if p.LineColors[0] != ui.ColorMagenta || p.LineColors[1] != ui.ColorCyan {
		t.Errorf("LineColors = %v, want forecast then historical colour", p.LineColors)
	}
	if p.PlotType != widgets.LineChart {
		t.Errorf("PlotType = %v, want LineChart", p.PlotType)
	}
	if len(p.DataLabels) != 5 || p.DataLabels[0] != "2017" {
		t.Errorf("DataLabels = %v, want labels starting at 2017", p.DataLabels)
	}
	if !strings.Contains(p.Title, "Afghanistan") || !strings.Contains(p.Title, "GDP (current LCU)") {
		t.Errorf("Title = %q, want country and indicator name", p.Title)
	}
}

func TestNewPlot_HistoricalOnly(t *testing.T) {
	table := NewTable([]Row{{X: "2018", Y: 1}, {X: "2019", Y: 2}}, nil)
	p := newPlot(table, Meta{})

	if len(p.Data) != 1 || len(p.Data[0]) != 2 {
		t.Errorf("Data = %v, want one series of 2 points", p.Data)
	}
	if len(p.LineColors) != 1 || p.LineColors[0] != ui.ColorCyan {
		t.Errorf("LineColors = %v, want historical colour only", p.LineColors)
	}
}

func TestNewPlot_SinglePoint(t *testing.T) {
	table := NewTable([]Row{{X: "2020", Y: 5}}, nil)
	p := newPlot(table, Meta{IndicatorCode: "X", Country: "Nowhere"})

	if len(p.Data) != 1 || len(p.Data[0]) != 2 {
		t.Fatalf("Data = %v, want one series padded to 2 points", p.Data)
	}
	if p.Data[0][0] != 5 || p.Data[0][1] != 5 {
		t.Errorf("Data[0] = %v, want [5 5]", p.Data[0])
	}

	rect := image.Rect(0, 0, 80, 24)
	p.SetRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	p.Draw(ui.NewBuffer(rect))
}

func TestTerminal_RenderEmptyTable(t *testing.T) {
	if err := (Terminal{}).Render(Table{}, Meta{}); err == nil {
		t.Error("Render() expected error for empty table, got nil")
	}
}
