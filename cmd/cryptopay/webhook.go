package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/garrettladley/cryptopay/internal/config"
	"github.com/garrettladley/cryptopay/pkg/webhook"
	"github.com/spf13/cobra"
)

func webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Sign and verify webhook bodies",
	}
	cmd.AddCommand(webhookSignCmd(), webhookVerifyCmd())
	return cmd
}

func readBody(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	body, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return body, nil
}

func apiToken() (string, error) {
	cfg, err := config.Read()
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	return cfg.API.Token, nil
}

func webhookSignCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the " + webhook.HeaderSignature + " value for a body",
		Long:  "Print the signature Crypto Pay would send with the body, for testing webhook receivers. The file is hashed byte for byte.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := apiToken()
			if err != nil {
				return err
			}
			body, err := readBody(cmd, file)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), webhook.Sign(webhook.DeriveSecret(token), body))
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "-", "body to sign, - for stdin")
	return cmd
}

func webhookVerifyCmd() *cobra.Command {
	var file, signature string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a signature against a body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := apiToken()
			if err != nil {
				return err
			}
			body, err := readBody(cmd, file)
			if err != nil {
				return err
			}
			if !webhook.VerifyToken(token, signature, body) {
				return errors.New("signature does not match")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "signature ok")
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "-", "body to verify, - for stdin")
	cmd.Flags().StringVar(&signature, "signature", "", "value of "+webhook.HeaderSignature)
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}
