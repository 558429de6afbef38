// Package warmth maps a temperature onto the three-stop background gradient.
package warmth

import (
	"math"

	"github.com/thatsimonsguy/thermoshade/internal/model"
	"github.com/thatsimonsguy/thermoshade/internal/scale"
)

// Display window in Celsius. Temperatures outside it saturate the gradient.
const (
	WindowMin = -30.0
	WindowMax = 50.0
)

// Ratio normalizes a Celsius temperature into [0,1] over the display window.
func Ratio(celsius float64) float64 {
	ratio := (celsius - WindowMin) / (WindowMax - WindowMin)
	return math.Max(0, math.Min(1, ratio))
}

// Gradient blends three independent color pairs at the same ratio. The mid and
// end stops run ahead of the start stop visually; this is intended.
func Gradient(ratio float64) model.GradientSpec {
	return model.GradientSpec{
		Start:     model.Blue.Lerp(model.White, ratio),
		Mid:       model.White.Lerp(model.Yellow, ratio),
		End:       model.Yellow.Lerp(model.Red, ratio),
		Direction: model.TopToBottom,
	}
}

// For computes the gradient for a value in any scale. The only failure is a
// non-finite value.
func For(value float64, s scale.Scale) (model.GradientSpec, float64, error) {
	celsius, err := scale.ToCelsius(value, s)
	if err != nil {
		return model.GradientSpec{}, 0, err
	}
	ratio := Ratio(celsius)
	return Gradient(ratio), ratio, nil
}
