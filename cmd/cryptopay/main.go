package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/cryptopay/internal/version"
)

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cryptopay",
		Short:         "Crypto Pay API from your terminal",
		Long:          "Calls the Crypto Pay API with the app token from CRYPTOPAY_API_TOKEN and prints results as JSON.",
		Version:       version.Get(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		meCmd(),
		balanceCmd(),
		ratesCmd(),
		currenciesCmd(),
		statsCmd(),
		summaryCmd(),
		invoiceCmd(),
		checkCmd(),
		transferCmd(),
		transfersCmd(),
		webhookCmd(),
	)
	return rootCmd
}
