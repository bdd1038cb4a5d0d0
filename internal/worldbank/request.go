package worldbank

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"indicatorfetcher/internal/fetcher"
)

// DefaultFormat is the output format requested when none is given
const DefaultFormat = "json"

var indicatorCodePattern = regexp.MustCompile(`^[A-Za-z0-9_]+(\.[A-Za-z0-9_]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("indicator_code", func(fl validator.FieldLevel) bool {
		return indicatorCodePattern.MatchString(fl.Field().String())
	})
	return v
}

// Request identifies one indicator series for one country.
// It is immutable once built by NewRequest.
type Request struct {
	country   string
	indicator string
	format    string
}

type requestInput struct {
	Country   string `validate:"required,alphanum,max=3"`
	Indicator string `validate:"required,indicator_code"`
	Format    string `validate:"required,alpha"`
}

// NewRequest validates and normalizes the request parameters.
// Country codes are lower-cased, indicator codes upper-cased and the format lower-cased.
// An empty format selects DefaultFormat.
func NewRequest(country, indicator, format string) (Request, error) {
	if format == "" {
		format = DefaultFormat
	}

	in := requestInput{
		Country:   strings.TrimSpace(country),
		Indicator: strings.TrimSpace(indicator),
		Format:    strings.TrimSpace(format),
	}
	if err := validate.Struct(in); err != nil {
		return Request{}, fetcher.NewValidationError(describeValidation(err), err)
	}

	return Request{
		country:   strings.ToLower(in.Country),
		indicator: strings.ToUpper(in.Indicator),
		format:    strings.ToLower(in.Format),
	}, nil
}

// Country returns the normalized (lower-case) country code
func (r Request) Country() string { return r.country }

// Indicator returns the normalized (upper-case) indicator code
func (r Request) Indicator() string { return r.indicator }

// Format returns the normalized (lower-case) output format
func (r Request) Format() string { return r.format }

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s code is required", field))
		case "indicator_code":
			msgs = append(msgs, fmt.Sprintf("%s code %q must be dot-delimited alphanumeric segments", field, fe.Value()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s code %q must be at most %s characters", field, fe.Value(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s %q failed %s check", field, fe.Value(), fe.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}
