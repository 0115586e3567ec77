package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/gym-console/app/auth"
	"github.com/vibast-solutions/gym-console/config"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the session behind GYM_API_TOKEN",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			logrus.WithError(err).Fatal("Failed to load configuration")
		}
		if cfg.API.Token == "" {
			return auth.ErrMissingToken
		}

		session, err := auth.NewVerifier(cfg.Auth.JWTSecret).Parse(cfg.API.Token)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), session, renderFunc(func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s (%s)\n", session.Subject, session.Role)
			return err
		}))
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
