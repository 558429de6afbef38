package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thatsimonsguy/thermoshade/internal/env"
	"github.com/thatsimonsguy/thermoshade/internal/session"
	"github.com/thatsimonsguy/thermoshade/internal/shell"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Edit a temperature interactively",
	Long: `session starts an interactive prompt seeded with default_value and
default_scale from the config. Switching scale keeps the typed number and
reads it in the new scale; it does not convert it.`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	sess, err := session.New(env.Cfg.DefaultValue, env.Cfg.Scale())
	if err != nil {
		return err
	}

	t := sess.Temperature()
	log.Info().
		Float64("value", t.Value).
		Str("scale", t.Scale.String()).
		Msg("Starting conversion session")

	return shell.Run(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
}
