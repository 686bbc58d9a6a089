package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPeriod is returned for malformed or out-of-range effective periods.
var ErrInvalidPeriod = errors.New("invalid effective period")

const (
	minYear = 1900
	maxYear = 9999
)

// Period identifies the calendar month from which a salary assignment takes effect.
// The zero value means "not set".
type Period struct {
	Month int `yaml:"month" json:"month"`
	Year  int `yaml:"year" json:"year"`
}

// NewPeriod builds a validated period.
func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// ParsePeriod parses "YYYY-MM" (a "YYYY/MM" separator is accepted too).
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: %q, expected YYYY-MM", ErrInvalidPeriod, s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("%w: year %q", ErrInvalidPeriod, parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("%w: month %q", ErrInvalidPeriod, parts[1])
	}
	return NewPeriod(month, year)
}

// IsZero reports whether the period is unset.
func (p Period) IsZero() bool {
	return p.Month == 0 && p.Year == 0
}

// Validate checks month and year ranges.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d must be between 1 and 12", ErrInvalidPeriod, p.Month)
	}
	if p.Year < minYear || p.Year > maxYear {
		return fmt.Errorf("%w: year %d must be between %d and %d", ErrInvalidPeriod, p.Year, minYear, maxYear)
	}
	return nil
}

func (p Period) String() string {
	if p.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// UnmarshalYAML accepts either a "YYYY-MM" scalar or a {month, year} mapping.
func (p *Period) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if strings.TrimSpace(value.Value) == "" {
			*p = Period{}
			return nil
		}
		parsed, err := ParsePeriod(value.Value)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	type alias Period
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*p = Period(aux)
	if p.IsZero() {
		return nil
	}
	return p.Validate()
}

// MarshalYAML writes the period in its "YYYY-MM" form.
func (p Period) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}
