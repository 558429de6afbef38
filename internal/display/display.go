// Package display renders conversions and warmth gradients for the terminal.
//
// Numbers are shown with exactly two decimals. Gradient stops are drawn as
// background-colored swatches, top to bottom, next to their hex value.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/shopspring/decimal"

	"github.com/thatsimonsguy/thermoshade/internal/model"
	"github.com/thatsimonsguy/thermoshade/internal/scale"
)

var (
	labelStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(lipgloss.Color("#a1a1aa"))

	valueStyle = lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Right).
			Foreground(lipgloss.Color("#d4d4d8"))

	activeStyle = lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(lipgloss.Color("#fde68a"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)

const swatchWidth = 8

// FormatValue rounds half away from zero to two decimals.
func FormatValue(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Hex renders a color as #rrggbb. Channels outside [0,1] are clamped.
func Hex(c model.ColorRGB) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// RenderConversions lists every scale in display order, highlighting active.
func RenderConversions(values map[scale.Scale]float64, active scale.Scale) string {
	var b strings.Builder
	for _, s := range scale.All() {
		style := valueStyle
		if s == active {
			style = activeStyle
		}
		fmt.Fprintf(&b, "%s%s %s\n",
			labelStyle.Render(s.Label()),
			style.Render(FormatValue(values[s])),
			s.Symbol())
	}
	return b.String()
}

func RenderGradient(g model.GradientSpec, ratio float64) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("warmth " + FormatValue(ratio)))
	b.WriteString("\n")
	names := []string{"start", "mid", "end"}
	for i, c := range g.Colors() {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(Hex(c))).
			Render(strings.Repeat(" ", swatchWidth))
		fmt.Fprintf(&b, "%s %s %s\n", swatch, labelStyle.Render(names[i]), Hex(c))
	}
	return b.String()
}

func RenderDomain(s scale.Scale, d scale.Domain) string {
	return fmt.Sprintf("%s%s .. %s %s\n",
		labelStyle.Render(s.Label()),
		FormatValue(d.Min),
		FormatValue(d.Max),
		s.Symbol())
}

func RenderError(err error) string {
	return errorStyle.Render("error: "+err.Error()) + "\n"
}
