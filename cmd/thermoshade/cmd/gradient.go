package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thatsimonsguy/thermoshade/internal/api"
	"github.com/thatsimonsguy/thermoshade/internal/datadog"
	"github.com/thatsimonsguy/thermoshade/internal/display"
	"github.com/thatsimonsguy/thermoshade/internal/scale"
	"github.com/thatsimonsguy/thermoshade/internal/warmth"
)

var gradientCmd = &cobra.Command{
	Use:   "gradient [value]",
	Short: "Show the warmth gradient for a temperature",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGradient,
}

func init() {
	addValueFlags(gradientCmd)
}

func runGradient(cmd *cobra.Command, args []string) error {
	v, s, err := valueInput(cmd, args)
	if err != nil {
		return reportError(cmd, err)
	}

	if asJSON {
		resp, err := api.GradientFor(v, s)
		if err != nil {
			logGradientRejected(err, v, s)
			return reportError(cmd, err)
		}
		datadog.Gauge("warmth.ratio", resp.Ratio, "scale:"+s.String())
		return api.WriteJSON(cmd.OutOrStdout(), resp)
	}

	g, ratio, err := warmth.For(v, s)
	if err != nil {
		logGradientRejected(err, v, s)
		return reportError(cmd, err)
	}
	datadog.Gauge("warmth.ratio", ratio, "scale:"+s.String())

	fmt.Fprint(cmd.OutOrStdout(), display.RenderGradient(g, ratio))
	return nil
}

func logGradientRejected(err error, v float64, s scale.Scale) {
	log.Warn().Err(err).Float64("value", v).Str("scale", s.String()).Msg("Gradient rejected")
}
