package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thatsimonsguy/thermoshade/internal/api"
	"github.com/thatsimonsguy/thermoshade/internal/display"
	"github.com/thatsimonsguy/thermoshade/internal/scale"
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Print the slider range for one or all scales",
	Args:  cobra.NoArgs,
	RunE:  runDomain,
}

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Print the display label for a scale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := selectedScale()
		if err != nil {
			return err
		}
		label, err := api.LabelFor(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), label)
		return nil
	},
}

func init() {
	addScaleFlag(domainCmd)
	domainCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	addScaleFlag(labelCmd)
}

func runDomain(cmd *cobra.Command, args []string) error {
	scales := scale.All()
	if scaleName != "" {
		s, err := scale.Parse(scaleName)
		if err != nil {
			return reportError(cmd, err)
		}
		scales = []scale.Scale{s}
	}

	var domains []api.DomainResponse
	for _, s := range scales {
		d, err := api.DomainFor(s)
		if err != nil {
			return reportError(cmd, err)
		}
		domains = append(domains, d)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return api.WriteJSON(out, domains)
	}
	for i, d := range domains {
		fmt.Fprint(out, display.RenderDomain(scales[i], scale.Domain{Min: d.Min, Max: d.Max}))
	}
	return nil
}
