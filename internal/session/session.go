package session

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/thermoshade/internal/model"
	"github.com/thatsimonsguy/thermoshade/internal/scale"
	"github.com/thatsimonsguy/thermoshade/internal/warmth"
)

// Session holds the value the user is editing and the scale it is read in.
// It is not safe for concurrent use; callers that share one must synchronize.
type Session struct {
	value float64
	scale scale.Scale
}

func New(value float64, s scale.Scale) (*Session, error) {
	sess := &Session{scale: scale.Celsius}
	if err := sess.SetScale(s); err != nil {
		return nil, err
	}
	if err := sess.SetValue(value); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Session) Value() float64 {
	return s.value
}

func (s *Session) Scale() scale.Scale {
	return s.scale
}

// SetValue replaces the current value. Non-finite values are rejected and the
// previous value is kept.
func (s *Session) SetValue(v float64) error {
	if _, err := scale.ToCelsius(v, s.scale); err != nil {
		log.Debug().Err(err).Float64("value", v).Msg("Rejected session value")
		return err
	}
	s.value = v
	return nil
}

// SetScale switches the scale the current value is read in. The number itself
// is kept as typed: 100 in Celsius becomes 100 in Fahrenheit, not 212. Every
// scale tab in the UI shares this one raw value.
func (s *Session) SetScale(sc scale.Scale) error {
	if !sc.Valid() {
		return fmt.Errorf("%w: %q", scale.ErrUnknownScale, string(sc))
	}
	s.scale = sc
	return nil
}

func (s *Session) Temperature() scale.Temperature {
	return scale.Temperature{Value: s.value, Scale: s.scale}
}

// DisplayValues expresses the current value in all four scales.
func (s *Session) DisplayValues() (map[scale.Scale]float64, error) {
	return scale.AllConversions(s.value, s.scale)
}

func (s *Session) Gradient() (model.GradientSpec, error) {
	g, _, err := warmth.For(s.value, s.scale)
	return g, err
}

// Ratio is the warmth ratio behind the current gradient.
func (s *Session) Ratio() (float64, error) {
	celsius, err := s.Temperature().Celsius()
	if err != nil {
		return 0, err
	}
	return warmth.Ratio(celsius), nil
}

// Nudge moves the value by delta like a slider would: the result is pinned to
// the current scale's domain. A value typed outside the domain snaps back in.
func (s *Session) Nudge(delta float64) error {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return fmt.Errorf("%w: nudge by %v", scale.ErrInvalidInput, delta)
	}
	return s.SetValue(s.Domain().Clamp(s.value + delta))
}

// InDomain reports whether the current value is reachable with the slider.
func (s *Session) InDomain() bool {
	return s.Domain().Contains(s.value)
}

// Domain returns the slider bounds for the current scale.
func (s *Session) Domain() scale.Domain {
	d, _ := scale.InputDomain(s.scale)
	return d
}
