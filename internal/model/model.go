package model

type Direction string

const (
	TopToBottom Direction = "top_to_bottom"
)

// ColorRGB is an opaque color with channels in [0,1].
type ColorRGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

var (
	Blue   = ColorRGB{R: 0, G: 0, B: 1}
	White  = ColorRGB{R: 1, G: 1, B: 1}
	Yellow = ColorRGB{R: 1, G: 1, B: 0}
	Red    = ColorRGB{R: 1, G: 0, B: 0}
)

// Lerp blends each channel independently: c + (to - c) * t.
func (c ColorRGB) Lerp(to ColorRGB, t float64) ColorRGB {
	return ColorRGB{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
	}
}

func (c ColorRGB) Channels() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// GradientSpec is the three-stop descriptor handed to the rendering layer.
type GradientSpec struct {
	Start     ColorRGB  `json:"start"`
	Mid       ColorRGB  `json:"mid"`
	End       ColorRGB  `json:"end"`
	Direction Direction `json:"direction"`
}

// Colors returns the stops in render order.
func (g GradientSpec) Colors() []ColorRGB {
	return []ColorRGB{g.Start, g.Mid, g.End}
}
