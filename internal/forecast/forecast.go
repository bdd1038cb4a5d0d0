// Package forecast extends an annual series with a least-squares linear trend.
package forecast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotAnnual is returned for date labels that are not plain years (e.g. "2019Q1", "2019M04")
	ErrNotAnnual = errors.New("date is not an annual label")
	// ErrInsufficientData is returned when fewer than two points are available to fit a trend
	ErrInsufficientData = errors.New("at least two points are required to fit a trend")
)

// Point is one annual observation
type Point struct {
	Year  int
	Value float64
}

// ParseYear parses an annual date label such as "2019"
func ParseYear(label string) (int, error) {
	label = strings.TrimSpace(label)
	if len(label) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrNotAnnual, label)
	}
	year, err := strconv.Atoi(label)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAnnual, label)
	}
	return year, nil
}

// Linear fits value = a + b*year over history and returns the next horizon years
// after the latest year in history. History need not be sorted.
func Linear(history []Point, horizon int) ([]Point, error) {
	if horizon < 0 {
		return nil, fmt.Errorf("horizon must not be negative, got %d", horizon)
	}
	if horizon == 0 {
		return nil, nil
	}
	if len(history) < 2 {
		return nil, ErrInsufficientData
	}

	n := float64(len(history))
	last := history[0].Year
	var sumX, sumY float64
	for _, p := range history {
		sumX += float64(p.Year)
		sumY += p.Value
		if p.Year > last {
			last = p.Year
		}
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, sxy float64
	for _, p := range history {
		dx := float64(p.Year) - meanX
		sxx += dx * dx
		sxy += dx * (p.Value - meanY)
	}
	if sxx == 0 {
		return nil, fmt.Errorf("%w: all points share year %d", ErrInsufficientData, last)
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	out := make([]Point, horizon)
	for i := range out {
		year := last + i + 1
		out[i] = Point{Year: year, Value: intercept + slope*float64(year)}
	}
	return out, nil
}
