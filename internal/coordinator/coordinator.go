package coordinator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"indicatorfetcher/internal/chart"
	"indicatorfetcher/internal/fetcher"
	"indicatorfetcher/internal/forecast"
	"indicatorfetcher/internal/worldbank"
)

// ErrNothingToChart is returned when a renderer is configured but the series has no numeric observations
var ErrNothingToChart = errors.New("series has no numeric observations to chart")

// Options configures a Coordinator
type Options struct {
	// IndicatorCode labels the chart; it is the normalized code that was requested
	IndicatorCode string

	// ForecastHorizon is the number of years to project; 0 disables forecasting
	ForecastHorizon int

	// Renderers draw the resulting table, in order
	Renderers []chart.Renderer

	// Out receives the run summary; nil means stdout
	Out io.Writer

	Log *zap.SugaredLogger
}

// Report summarizes one completed run
type Report struct {
	Key        string
	Series     *worldbank.Series
	Table      chart.Table
	Forecasted int
}

// Coordinator runs one fetch through parsing, forecasting and rendering
type Coordinator struct {
	fetcher fetcher.Fetcher
	opts    Options
}

// New creates a new Coordinator for the given fetcher
func New(f fetcher.Fetcher, opts Options) *Coordinator {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop().Sugar()
	}

	return &Coordinator{
		fetcher: f,
		opts:    opts,
	}
}

// Run fetches the series, parses it, optionally extends it with a forecast and
// hands the table to every renderer. Any failure aborts the run.
// On success a summary line is written to Out in the format:
//
//	KEY: NAME, N observations (FIRST..LAST), M forecasted
func (c *Coordinator) Run(ctx context.Context) (*Report, error) {
	if c.fetcher == nil {
		return nil, fmt.Errorf("no fetcher configured")
	}

	log := c.opts.Log.With("key", c.fetcher.Key())

	result, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	series, err := worldbank.Parse(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response for %s: %w", c.fetcher.Key(), err)
	}
	if series.Page.Truncated() {
		log.Warnw("series truncated to first page",
			"page", series.Page.Page,
			"pages", series.Page.Pages,
			"total", series.Page.Total)
	}

	historical, skipped := historicalRows(series)
	if skipped > 0 {
		log.Infow("skipped observations without a numeric value", "count", skipped)
	}
	if len(historical) == 0 && len(c.opts.Renderers) > 0 {
		return nil, ErrNothingToChart
	}

	forecasted := c.forecastRows(historical, log)
	table := chart.NewTable(historical, forecasted)

	meta := chart.Meta{
		IndicatorCode: c.opts.IndicatorCode,
		IndicatorName: series.IndicatorName,
		Country:       series.CountryName,
	}
	if meta.IndicatorCode == "" {
		meta.IndicatorCode = series.IndicatorID
	}

	for _, r := range c.opts.Renderers {
		if err := r.Render(table, meta); err != nil {
			return nil, fmt.Errorf("failed to render chart: %w", err)
		}
	}

	report := &Report{
		Key:        c.fetcher.Key(),
		Series:     series,
		Table:      table,
		Forecasted: len(forecasted),
	}
	c.printSummary(report)

	return report, nil
}

func historicalRows(series *worldbank.Series) ([]chart.Row, int) {
	rows := make([]chart.Row, 0, series.Len())
	skipped := 0
	for i, v := range series.Values {
		d, ok := v.Decimal()
		if !ok {
			skipped++
			continue
		}
		y, _ := d.Float64()
		rows = append(rows, chart.Row{X: series.Dates[i], Y: y})
	}
	return rows, skipped
}

// forecastRows projects the historical rows forward. Series that cannot be
// projected (sub-annual dates, a single point) are charted without a forecast.
func (c *Coordinator) forecastRows(historical []chart.Row, log *zap.SugaredLogger) []chart.Row {
	if c.opts.ForecastHorizon == 0 || len(historical) == 0 {
		return nil
	}

	points := make([]forecast.Point, 0, len(historical))
	for _, r := range historical {
		year, err := forecast.ParseYear(r.X)
		if err != nil {
			log.Infow("forecast skipped", "reason", err.Error())
			return nil
		}
		points = append(points, forecast.Point{Year: year, Value: r.Y})
	}

	projected, err := forecast.Linear(points, c.opts.ForecastHorizon)
	if err != nil {
		log.Infow("forecast skipped", "reason", err.Error())
		return nil
	}

	rows := make([]chart.Row, len(projected))
	for i, p := range projected {
		rows[i] = chart.Row{X: fmt.Sprintf("%d", p.Year), Y: p.Value}
	}
	return rows
}

// printSummary writes the run summary. The date range is empty when no
// observation had a numeric value.
func (c *Coordinator) printSummary(r *Report) {
	var first, last string
	if rows := r.Table.Rows[:r.Table.Len()-r.Forecasted]; len(rows) > 0 {
		first, last = rows[0].X, rows[len(rows)-1].X
	}
	fmt.Fprintf(c.opts.Out, "%s: %s, %d observations (%s..%s), %d forecasted\n",
		r.Key,
		r.Series.IndicatorName,
		r.Series.Len(),
		first,
		last,
		r.Forecasted,
	)
}
