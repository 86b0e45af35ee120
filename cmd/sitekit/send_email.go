package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sitekit/pkg/config"
	"github.com/dmitrymomot/sitekit/pkg/email"
)

func newSendEmailCmd(a *app) *cobra.Command {
	var params email.SendEmailParams
	var to []string

	cmd := &cobra.Command{
		Use:   "send-email",
		Short: "Send a message through the configured email provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg email.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			sender, err := email.New(cmd.Context(), cfg, email.WithLogger(a.logger))
			if err != nil {
				return err
			}

			params.To = email.Recipients(to)
			res, err := sender.SendEmail(cmd.Context(), params)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "sent via %s: %s\n", res.Provider, res.MessageID)
			return err
		},
	}
	cmd.Flags().StringSliceVar(&to, "to", nil, "recipient address (repeatable or comma separated)")
	cmd.Flags().StringVar(&params.Subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&params.HTML, "html", "", "HTML body")
	cmd.Flags().StringVar(&params.Text, "text", "", "plain text body")
	cmd.Flags().StringVar(&params.Tag, "tag", "", "provider tag for the message")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
