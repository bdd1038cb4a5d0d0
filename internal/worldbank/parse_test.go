package worldbank

import (
	"errors"
	"strings"
	"testing"

	"indicatorfetcher/internal/fetcher"
)

func valueStrings(values []Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParse_Valid(t *testing.T) {
	raw := []byte(`[{"page":1},[{"indicator":{"value":"GDP (current LCU)"},"date":"2019","value":"null"}]]`)

	series, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}

	if series.IndicatorName != "GDP (current LCU)" {
		t.Errorf("IndicatorName = %q, want %q", series.IndicatorName, "GDP (current LCU)")
	}
	if want := []string{"2019"}; !equalStrings(series.Dates, want) {
		t.Errorf("Dates = %v, want %v", series.Dates, want)
	}
	if want := []string{"null"}; !equalStrings(valueStrings(series.Values), want) {
		t.Errorf("Values = %v, want %v", valueStrings(series.Values), want)
	}
}

func TestParse_FullResponse(t *testing.T) {
	raw := []byte(`[
		{"page":1,"pages":2,"per_page":"50","total":60,"sourceid":"2","lastupdated":"2024-06-28"},
		[
			{"indicator":{"id":"NY.GDP.MKTP.CN","value":"GDP (current LCU)"},"country":{"id":"AF","value":"Afghanistan"},"countryiso3code":"AFG","date":"2020","value":null,"unit":"","obs_status":"","decimal":0},
			{"indicator":{"id":"NY.GDP.MKTP.CN","value":"GDP (current LCU)"},"country":{"id":"AF","value":"Afghanistan"},"countryiso3code":"AFG","date":"2019","value":1468690000000.5,"unit":"","obs_status":"","decimal":0},
			{"indicator":{"id":"NY.GDP.MKTP.CN","value":"GDP (current LCU)"},"country":{"id":"AF","value":"Afghanistan"},"countryiso3code":"AFG","date":"2018","value":1327690000000,"unit":"","obs_status":"","decimal":0}
		]
	]`)

	series, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}

	if series.IndicatorID != "NY.GDP.MKTP.CN" {
		t.Errorf("IndicatorID = %q, want NY.GDP.MKTP.CN", series.IndicatorID)
	}
	if series.CountryName != "Afghanistan" {
		t.Errorf("CountryName = %q, want Afghanistan", series.CountryName)
	}
	if want := []string{"2020", "2019", "2018"}; !equalStrings(series.Dates, want) {
		t.Errorf("Dates = %v, want %v (provider order)", series.Dates, want)
	}
	if want := []string{"null", "1468690000000.5", "1327690000000"}; !equalStrings(valueStrings(series.Values), want) {
		t.Errorf("Values = %v, want %v", valueStrings(series.Values), want)
	}
	if series.Values[0].Valid {
		t.Error("Values[0].Valid = true, want false for JSON null")
	}

	if series.Page.Pages != 2 || series.Page.PerPage != 50 || series.Page.Total != 60 {
		t.Errorf("Page = %+v, want pages=2 per_page=50 total=60", series.Page)
	}
	if !series.Page.Truncated() {
		t.Error("Page.Truncated() = false, want true")
	}
}

func TestParse_DatesAndValuesAligned(t *testing.T) {
	bodies := []string{
		`[{"page":1},[{"indicator":{"value":"x"},"date":"2019","value":"null"}]]`,
		`[{"page":1},[{"date":"2001","value":1},{"date":"2000","value":null},{"date":"1999","value":"3"}]]`,
		`[{"page":1},[{"date":"2019Q1","value":1.5},{"date":"2019Q2"}]]`,
	}

	for _, body := range bodies {
		series, err := Parse([]byte(body))
		if err != nil {
			t.Fatalf("Parse(%s) returned unexpected error: %v", body, err)
		}
		if len(series.Dates) != len(series.Values) {
			t.Errorf("len(Dates) = %d, len(Values) = %d, want equal", len(series.Dates), len(series.Values))
		}
		if series.Len() != len(series.Dates) {
			t.Errorf("Len() = %d, want %d", series.Len(), len(series.Dates))
		}
	}
}

func TestParse_ProviderRejection(t *testing.T) {
	raw := []byte(`[{"message":[{"id":"120","key":"Invalid value","value":"The provided parameter value is not valid"}]}]`)

	_, err := Parse(raw)
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}

	if !fetcher.IsType(err, fetcher.ErrorTypeInvalidRequest) {
		t.Errorf("Parse() error = %v, want invalid request error", err)
	}
	if !strings.Contains(err.Error(), "The provided parameter value is not valid") {
		t.Errorf("Parse() error = %q, want provider message included", err.Error())
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As(*APIError) = false, want true")
	}
	if apiErr.ID != "120" || apiErr.Key != "Invalid value" {
		t.Errorf("APIError = %+v, want id 120 and key Invalid value", apiErr)
	}
}

func TestParse_ProviderRejectionWithNullData(t *testing.T) {
	raw := []byte(`[{"message":[{"id":"175","key":"Invalid format","value":"The indicator was not found."}]},null]`)

	_, err := Parse(raw)
	if !fetcher.IsType(err, fetcher.ErrorTypeInvalidRequest) {
		t.Errorf("Parse() error = %v, want invalid request error", err)
	}
}

func TestParse_NoObservations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"null list", `[{"page":1,"pages":0,"per_page":50,"total":0},null]`},
		{"empty list", `[{"page":1,"pages":0,"per_page":50,"total":0},[]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if !errors.Is(err, ErrNoObservations) {
				t.Errorf("Parse() error = %v, want ErrNoObservations", err)
			}
		})
	}
}

func TestParse_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `<html>502 Bad Gateway</html>`},
		{"object at top level", `{"page":1}`},
		{"empty array", `[]`},
		{"single element without message", `[{"page":1}]`},
		{"empty message list", `[{"message":[]}]`},
		{"three elements", `[{"page":1},[],[]]`},
		{"observations not a list", `[{"page":1},{"date":"2019"}]`},
		{"page not an object", `[null,[{"date":"2019","value":1}]]`},
		{"bad page count", `[{"page":"one"},[{"date":"2019","value":1}]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !fetcher.IsType(err, fetcher.ErrorTypeDecode) {
				t.Errorf("Parse() error = %v, want decode error", err)
			}
		})
	}
}

func TestValue_Decimal(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   string
		wantOK bool
	}{
		{"integer", Value{Raw: "1327690000000", Valid: true}, "1327690000000", true},
		{"fraction", Value{Raw: "2.75", Valid: true}, "2.75", true},
		{"null", Value{}, "0", false},
		{"null text", Value{Raw: "null", Valid: true}, "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Decimal()
			if ok != tt.wantOK {
				t.Fatalf("Decimal() ok = %v, want %v", ok, tt.wantOK)
			}
			if got.String() != tt.want {
				t.Errorf("Decimal() = %s, want %s", got.String(), tt.want)
			}
		})
	}
}
