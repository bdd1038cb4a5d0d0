package worldbank

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Page is the pagination record that leads every data response.
// It is reported as received; further pages are never requested.
type Page struct {
	Page        int
	Pages       int
	PerPage     int
	Total       int
	SourceID    string
	LastUpdated string
}

// Truncated reports whether the provider holds more pages than the one read
func (p Page) Truncated() bool {
	return p.Pages > 1
}

// Value is one observation's reading as the provider sent it.
// Numbers keep their JSON spelling, strings their text; JSON null leaves Valid false.
type Value struct {
	Raw   string
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{Raw: s, Valid: true}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = Value{Raw: n.String(), Valid: true}
	return nil
}

// String returns the raw text, or "null" for a missing value
func (v Value) String() string {
	if !v.Valid {
		return "null"
	}
	return v.Raw
}

// Decimal parses the value as a number.
// ok is false for null and for text that is not numeric.
func (v Value) Decimal() (d decimal.Decimal, ok bool) {
	if !v.Valid {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v.Raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Series is one parsed indicator time series.
// Dates and Values are index-aligned and keep the provider's order.
type Series struct {
	IndicatorID   string
	IndicatorName string
	CountryID     string
	CountryName   string
	Dates         []string
	Values        []Value
	Page          Page
}

// Len returns the number of observations
func (s *Series) Len() int {
	return len(s.Dates)
}

type reference struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type observation struct {
	Indicator       reference `json:"indicator"`
	Country         reference `json:"country"`
	CountryISO3Code string    `json:"countryiso3code"`
	Date            string    `json:"date"`
	Value           Value     `json:"value"`
	Unit            string    `json:"unit"`
	ObsStatus       string    `json:"obs_status"`
	Decimal         int       `json:"decimal"`
}
