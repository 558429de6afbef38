package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thatsimonsguy/thermoshade/internal/api"
	"github.com/thatsimonsguy/thermoshade/internal/datadog"
	"github.com/thatsimonsguy/thermoshade/internal/display"
	"github.com/thatsimonsguy/thermoshade/internal/scale"
)

var convertCmd = &cobra.Command{
	Use:   "convert [value]",
	Short: "Express a temperature in all four scales",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConvert,
}

func init() {
	addValueFlags(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, s, err := valueInput(cmd, args)
	if err != nil {
		return reportError(cmd, err)
	}

	resp, err := api.Convert(v, s)
	if err != nil {
		log.Warn().Err(err).Float64("value", v).Str("scale", s.String()).Msg("Conversion rejected")
		return reportError(cmd, err)
	}
	datadog.Count("conversions", 1, "scale:"+s.String())

	out := cmd.OutOrStdout()
	if asJSON {
		return api.WriteJSON(out, resp)
	}

	values := make(map[scale.Scale]float64, 4)
	for _, target := range scale.All() {
		values[target] = resp.Get(target)
	}
	fmt.Fprint(out, display.RenderConversions(values, s))
	return nil
}
