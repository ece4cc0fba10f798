package main

import (
	"strings"

	"github.com/garrettladley/cryptopay/pkg/cryptopay"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Create, list and delete checks",
	}
	cmd.AddCommand(checkCreateCmd(), checkListCmd(), checkDeleteCmd())
	return cmd
}

func checkCreateCmd() *cobra.Command {
	var asset, amount string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a check",
		Args:  cobra.NoArgs,
		RunE: runAPI(func(cmd *cobra.Command, _ []string, client *cryptopay.Client) (*cryptopay.Check, error) {
			return client.CreateCheck(cmd.Context(), cryptopay.CreateCheckParams{
				Asset:  cryptopay.Asset(strings.ToUpper(asset)),
				Amount: amount,
			})
		}),
	}

	cmd.Flags().StringVar(&asset, "asset", "", "crypto asset, e.g. USDT or TON")
	cmd.Flags().StringVar(&amount, "amount", "", "amount as a decimal string")
	_ = cmd.MarkFlagRequired("asset")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func checkListCmd() *cobra.Command {
	var params cryptopay.GetChecksParams
	var status string

	cmd := &cobra.Command{
		Use:   "list [id...]",
		Short: "List checks",
		RunE: runAPI(func(cmd *cobra.Command, args []string, client *cryptopay.Client) ([]cryptopay.Check, error) {
			ids, err := parseIDs(args)
			if err != nil {
				return nil, err
			}
			params.CheckIDs = ids
			params.Status = cryptopay.CheckStatus(status)
			return client.GetChecks(cmd.Context(), &params)
		}),
	}

	cmd.Flags().StringVar(&status, "status", "", "active or activated")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of checks to skip")
	cmd.Flags().IntVar(&params.Count, "count", 0, "number of checks to return (API default 100)")
	return cmd
}

func checkDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete id...",
		Short: "Delete checks",
		Args:  cobra.MinimumNArgs(1),
		RunE: runAPI(func(cmd *cobra.Command, args []string, client *cryptopay.Client) ([]cryptopay.Check, error) {
			ids, err := parseIDs(args)
			if err != nil {
				return nil, err
			}
			return client.DeleteCheck(cmd.Context(), cryptopay.DeleteCheckParams{CheckIDs: ids})
		}),
	}
}
