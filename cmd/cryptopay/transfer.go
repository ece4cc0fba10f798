package main

import (
	"strings"

	"github.com/garrettladley/cryptopay/pkg/cryptopay"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func transferCmd() *cobra.Command {
	var params cryptopay.TransferParams
	var asset string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send coins from the app balance to a Telegram user",
		Long: "Send coins from the app balance to a Telegram user.\n\n" +
			"Repeating a transfer with the same --spend-id does not send twice. " +
			"A random spend id is used when none is given.",
		Args: cobra.NoArgs,
		RunE: runAPI(func(cmd *cobra.Command, _ []string, client *cryptopay.Client) (*cryptopay.Transfer, error) {
			params.Asset = cryptopay.Asset(strings.ToUpper(asset))
			if params.SpendID == "" {
				params.SpendID = uuid.NewString()
			}
			return client.Transfer(cmd.Context(), params)
		}),
	}

	f := cmd.Flags()
	f.StringVar(&params.UserID, "user-id", "", "Telegram user id")
	f.StringVar(&asset, "asset", "", "crypto asset, e.g. USDT or TON")
	f.StringVar(&params.Amount, "amount", "", "amount as a decimal string")
	f.StringVar(&params.SpendID, "spend-id", "", "idempotency key, up to 64 characters")
	f.StringVar(&params.Comment, "comment", "", "shown to the recipient")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("asset")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func transfersCmd() *cobra.Command {
	var params cryptopay.GetTransfersParams

	cmd := &cobra.Command{
		Use:   "transfers [id...]",
		Short: "List transfers",
		RunE: runAPI(func(cmd *cobra.Command, args []string, client *cryptopay.Client) ([]cryptopay.Transfer, error) {
			ids, err := parseIDs(args)
			if err != nil {
				return nil, err
			}
			params.TransferIDs = ids
			return client.GetTransfers(cmd.Context(), &params)
		}),
	}

	cmd.Flags().StringVar(&params.SpendID, "spend-id", "", "filter by spend id")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of transfers to skip")
	cmd.Flags().IntVar(&params.Count, "count", 0, "number of transfers to return (API default 100)")
	return cmd
}
