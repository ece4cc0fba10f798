package main

import (
	"errors"
	"strings"

	"github.com/garrettladley/cryptopay/pkg/cryptopay"
	"github.com/spf13/cobra"
)

func invoiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Create, list and delete invoices",
	}
	cmd.AddCommand(invoiceCreateCmd(), invoiceListCmd(), invoiceDeleteCmd())
	return cmd
}

type invoiceFlags struct {
	asset          string
	fiat           string
	acceptedAssets []string
	amount         string
	description    string
	hiddenMessage  string
	paidBtnName    string
	paidBtnURL     string
	payload        string
	allowComments  bool
	allowAnonymous bool
	expiresIn      int
	swapTo         string
}

func (f *invoiceFlags) params(cmd *cobra.Command) (cryptopay.CreateInvoiceParams, error) {
	params := cryptopay.CreateInvoiceParams{
		Amount:         f.amount,
		Description:    f.description,
		HiddenMessage:  f.hiddenMessage,
		PaidButtonName: cryptopay.PaidButtonName(f.paidBtnName),
		PaidButtonURL:  f.paidBtnURL,
		Payload:        f.payload,
		ExpiresIn:      f.expiresIn,
		SwapTo:         cryptopay.Asset(strings.ToUpper(f.swapTo)),
	}

	switch {
	case f.asset != "" && f.fiat != "":
		return params, errors.New("--asset and --fiat are mutually exclusive")
	case f.fiat != "":
		params.CurrencyType = cryptopay.CurrencyTypeFiat
		params.Fiat = cryptopay.FiatCurrency(strings.ToUpper(f.fiat))
		for _, a := range f.acceptedAssets {
			params.AcceptedAssets = append(params.AcceptedAssets, cryptopay.Asset(strings.ToUpper(a)))
		}
	case f.asset != "":
		params.CurrencyType = cryptopay.CurrencyTypeCrypto
		params.Asset = cryptopay.Asset(strings.ToUpper(f.asset))
	default:
		return params, errors.New("one of --asset or --fiat is required")
	}

	if (params.PaidButtonName == "") != (params.PaidButtonURL == "") {
		return params, errors.New("--paid-btn-name and --paid-btn-url must be set together")
	}

	if cmd.Flags().Changed("allow-comments") {
		params.AllowComments = &f.allowComments
	}
	if cmd.Flags().Changed("allow-anonymous") {
		params.AllowAnonymous = &f.allowAnonymous
	}
	return params, nil
}

func invoiceCreateCmd() *cobra.Command {
	var flags invoiceFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice",
		Args:  cobra.NoArgs,
		RunE: runAPI(func(cmd *cobra.Command, _ []string, client *cryptopay.Client) (*cryptopay.Invoice, error) {
			params, err := flags.params(cmd)
			if err != nil {
				return nil, err
			}
			return client.CreateInvoice(cmd.Context(), params)
		}),
	}

	f := cmd.Flags()
	f.StringVar(&flags.asset, "asset", "", "crypto asset, e.g. USDT or TON")
	f.StringVar(&flags.fiat, "fiat", "", "fiat currency, e.g. USD")
	f.StringSliceVar(&flags.acceptedAssets, "accepted-assets", nil, "assets accepted for a fiat invoice")
	f.StringVar(&flags.amount, "amount", "", "amount as a decimal string")
	f.StringVar(&flags.description, "description", "", "shown to the payer")
	f.StringVar(&flags.hiddenMessage, "hidden-message", "", "shown to the payer after payment")
	f.StringVar(&flags.paidBtnName, "paid-btn-name", "", "viewItem, openChannel, openBot or callback")
	f.StringVar(&flags.paidBtnURL, "paid-btn-url", "", "URL opened by the paid button")
	f.StringVar(&flags.payload, "payload", "", "opaque data returned with the invoice")
	f.BoolVar(&flags.allowComments, "allow-comments", true, "let the payer add a comment")
	f.BoolVar(&flags.allowAnonymous, "allow-anonymous", true, "let the payer hide their name")
	f.IntVar(&flags.expiresIn, "expires-in", 0, "payment window in seconds")
	f.StringVar(&flags.swapTo, "swap-to", "", "asset to swap the payment to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func invoiceListCmd() *cobra.Command {
	var params cryptopay.GetInvoicesParams
	var status string

	cmd := &cobra.Command{
		Use:   "list [id...]",
		Short: "List invoices",
		RunE: runAPI(func(cmd *cobra.Command, args []string, client *cryptopay.Client) ([]cryptopay.Invoice, error) {
			ids, err := parseIDs(args)
			if err != nil {
				return nil, err
			}
			params.InvoiceIDs = ids
			params.Status = cryptopay.InvoiceStatus(status)
			return client.GetInvoices(cmd.Context(), &params)
		}),
	}

	cmd.Flags().StringVar(&status, "status", "", "active, paid or expired")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of invoices to skip")
	cmd.Flags().IntVar(&params.Count, "count", 0, "number of invoices to return (API default 100)")
	return cmd
}

func invoiceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete id...",
		Short: "Delete invoices",
		Args:  cobra.MinimumNArgs(1),
		RunE: runAPI(func(cmd *cobra.Command, args []string, client *cryptopay.Client) ([]cryptopay.Invoice, error) {
			ids, err := parseIDs(args)
			if err != nil {
				return nil, err
			}
			return client.DeleteInvoice(cmd.Context(), cryptopay.DeleteInvoiceParams{InvoiceIDs: ids})
		}),
	}
}
