package scale

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input: value must be finite")
	ErrUnknownScale = errors.New("unknown temperature scale")
)

type Scale string

const (
	Celsius    Scale = "celsius"
	Fahrenheit Scale = "fahrenheit"
	Kelvin     Scale = "kelvin"
	Rankine    Scale = "rankine"
)

// Domain is the closed interval a slider-style input is bounded to.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Temperature is a value expressed in a particular scale.
type Temperature struct {
	Value float64 `json:"value"`
	Scale Scale   `json:"scale"`
}

type definition struct {
	label       string
	symbol      string
	domain      Domain
	toCelsius   func(v float64) float64
	fromCelsius func(c float64) float64
}

// Every per-scale behaviour lives in this table. The operation order inside each
// formula is fixed so results are reproducible bit for bit.
var definitions = map[Scale]definition{
	Celsius: {
		label:       "Celsius",
		symbol:      "°C",
		domain:      Domain{Min: -100, Max: 100},
		toCelsius:   func(v float64) float64 { return v },
		fromCelsius: func(c float64) float64 { return c },
	},
	Fahrenheit: {
		label:       "Fahrenheit",
		symbol:      "°F",
		domain:      Domain{Min: -148, Max: 212},
		toCelsius:   func(v float64) float64 { return (v - 32) * 5 / 9 },
		fromCelsius: func(c float64) float64 { return c*9/5 + 32 },
	},
	Kelvin: {
		label:       "Kelvin",
		symbol:      "K",
		domain:      Domain{Min: 173.15, Max: 373.15},
		toCelsius:   func(v float64) float64 { return v - 273.15 },
		fromCelsius: func(c float64) float64 { return c + 273.15 },
	},
	Rankine: {
		label:       "Rankine",
		symbol:      "°R",
		domain:      Domain{Min: 0, Max: 671.67},
		toCelsius:   func(v float64) float64 { return (v - 491.67) * 5 / 9 },
		fromCelsius: func(c float64) float64 { return (c + 273.15) * 9 / 5 },
	},
}

// All returns the scales in display order.
func All() []Scale {
	return []Scale{Celsius, Fahrenheit, Kelvin, Rankine}
}

func (s Scale) Valid() bool {
	_, ok := definitions[s]
	return ok
}

// Label returns the display name, e.g. "Fahrenheit".
func (s Scale) Label() string {
	return definitions[s].label
}

func (s Scale) Symbol() string {
	return definitions[s].symbol
}

func (s Scale) String() string {
	return string(s)
}

// Parse accepts a scale name, its single-letter abbreviation or its symbol
// (°F, K), case-insensitively.
func Parse(name string) (Scale, error) {
	n := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "°")
	switch n {
	case "c":
		return Celsius, nil
	case "f":
		return Fahrenheit, nil
	case "k":
		return Kelvin, nil
	case "r":
		return Rankine, nil
	}
	if s := Scale(n); s.Valid() {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScale, name)
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidInput, v)
	}
	return nil
}

func lookup(s Scale) (definition, error) {
	def, ok := definitions[s]
	if !ok {
		return definition{}, fmt.Errorf("%w: %q", ErrUnknownScale, string(s))
	}
	return def, nil
}

// ToCelsius converts value from s into Celsius, the pivot every conversion routes through.
func ToCelsius(value float64, s Scale) (float64, error) {
	if err := checkFinite(value); err != nil {
		return 0, err
	}
	def, err := lookup(s)
	if err != nil {
		return 0, err
	}
	return def.toCelsius(value), nil
}

// FromCelsius is the inverse of ToCelsius.
func FromCelsius(celsius float64, s Scale) (float64, error) {
	if err := checkFinite(celsius); err != nil {
		return 0, err
	}
	def, err := lookup(s)
	if err != nil {
		return 0, err
	}
	return def.fromCelsius(celsius), nil
}

// AllConversions expresses value in every scale, including its own. Each result
// is derived from a single Celsius pivot, never scale to scale.
func AllConversions(value float64, s Scale) (map[Scale]float64, error) {
	celsius, err := ToCelsius(value, s)
	if err != nil {
		return nil, err
	}
	out := make(map[Scale]float64, len(definitions))
	for _, target := range All() {
		out[target] = definitions[target].fromCelsius(celsius)
	}
	return out, nil
}

// InputDomain returns the slider bounds for s. These are independent constants
// and are never used to reject directly typed values.
func InputDomain(s Scale) (Domain, error) {
	def, err := lookup(s)
	if err != nil {
		return Domain{}, err
	}
	return def.domain, nil
}

// Clamp pins v into the domain, for slider controls.
func (d Domain) Clamp(v float64) float64 {
	return math.Max(d.Min, math.Min(d.Max, v))
}

func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Celsius returns the temperature expressed on the pivot scale.
func (t Temperature) Celsius() (float64, error) {
	return ToCelsius(t.Value, t.Scale)
}
