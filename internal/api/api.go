package api

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/thatsimonsguy/thermoshade/internal/model"
	"github.com/thatsimonsguy/thermoshade/internal/scale"
	"github.com/thatsimonsguy/thermoshade/internal/warmth"
)

type ConversionResponse struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
	Kelvin     float64 `json:"kelvin"`
	Rankine    float64 `json:"rankine"`
}

type GradientResponse struct {
	Ratio     float64         `json:"ratio"`
	Colors    [3][3]float64   `json:"colors"`
	Direction model.Direction `json:"direction"`
}

type DomainResponse struct {
	Scale string  `json:"scale"`
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Get returns the converted value for one scale.
func (c ConversionResponse) Get(s scale.Scale) float64 {
	switch s {
	case scale.Fahrenheit:
		return c.Fahrenheit
	case scale.Kelvin:
		return c.Kelvin
	case scale.Rankine:
		return c.Rankine
	default:
		return c.Celsius
	}
}

// Convert expresses value in all four scales. Nothing is returned on error.
func Convert(value float64, from scale.Scale) (ConversionResponse, error) {
	all, err := scale.AllConversions(value, from)
	if err != nil {
		return ConversionResponse{}, err
	}
	return ConversionResponse{
		Celsius:    all[scale.Celsius],
		Fahrenheit: all[scale.Fahrenheit],
		Kelvin:     all[scale.Kelvin],
		Rankine:    all[scale.Rankine],
	}, nil
}

// GradientFor returns the three gradient stops, top to bottom, as RGB triples.
func GradientFor(value float64, from scale.Scale) (GradientResponse, error) {
	g, ratio, err := warmth.For(value, from)
	if err != nil {
		return GradientResponse{}, err
	}
	return NewGradientResponse(g, ratio), nil
}

func NewGradientResponse(g model.GradientSpec, ratio float64) GradientResponse {
	return GradientResponse{
		Ratio:     ratio,
		Colors:    [3][3]float64{g.Start.Channels(), g.Mid.Channels(), g.End.Channels()},
		Direction: g.Direction,
	}
}

func DomainFor(s scale.Scale) (DomainResponse, error) {
	d, err := scale.InputDomain(s)
	if err != nil {
		return DomainResponse{}, err
	}
	return DomainResponse{
		Scale: s.String(),
		Label: s.Label(),
		Min:   d.Min,
		Max:   d.Max,
	}, nil
}

func LabelFor(s scale.Scale) (string, error) {
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", scale.ErrUnknownScale, string(s))
	}
	return s.Label(), nil
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func WriteError(w io.Writer, err error) error {
	return WriteJSON(w, ErrorResponse{Error: err.Error()})
}
