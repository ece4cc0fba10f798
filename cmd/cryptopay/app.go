package main

import (
	"fmt"
	"time"

	"github.com/garrettladley/cryptopay/pkg/cryptopay"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the app the token belongs to",
		Args:  cobra.NoArgs,
		RunE: runAPI(func(cmd *cobra.Command, _ []string, client *cryptopay.Client) (*cryptopay.AppInfo, error) {
			return client.GetMe(cmd.Context())
		}),
	}
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the app balance per asset",
		Args:  cobra.NoArgs,
		RunE: runAPI(func(cmd *cobra.Command, _ []string, client *cryptopay.Client) ([]cryptopay.Balance, error) {
			return client.GetBalance(cmd.Context())
		}),
	}
}

func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show exchange rates",
		Args:  cobra.NoArgs,
		RunE: runAPI(func(cmd *cobra.Command, _ []string, client *cryptopay.Client) ([]cryptopay.ExchangeRate, error) {
			return client.GetExchangeRates(cmd.Context())
		}),
	}
}

func currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List supported currencies",
		Args:  cobra.NoArgs,
		RunE: runAPI(func(cmd *cobra.Command, _ []string, client *cryptopay.Client) ([]cryptopay.Asset, error) {
			return client.GetCurrencies(cmd.Context())
		}),
	}
}

func statsCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show app statistics for a period",
		Args:  cobra.NoArgs,
		RunE: runAPI(func(cmd *cobra.Command, _ []string, client *cryptopay.Client) (*cryptopay.AppStats, error) {
			params, err := statsParams(start, end, time.Now())
			if err != nil {
				return nil, err
			}
			return client.GetStats(cmd.Context(), params)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "period start, RFC 3339 or YYYY-MM-DD (default 24h ago)")
	cmd.Flags().StringVar(&end, "end", "", "period end, RFC 3339 or YYYY-MM-DD (default now)")
	return cmd
}

func statsParams(start, end string, now time.Time) (cryptopay.GetStatsParams, error) {
	params := cryptopay.GetStatsParams{StartAt: now.Add(-24 * time.Hour)}
	if start != "" {
		t, err := parseTime(start)
		if err != nil {
			return params, fmt.Errorf("invalid --start: %w", err)
		}
		params.StartAt = t
	}
	if end != "" {
		t, err := parseTime(end)
		if err != nil {
			return params, fmt.Errorf("invalid --end: %w", err)
		}
		params.EndAt = &t
	}
	return params, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

type summary struct {
	App      *cryptopay.AppInfo       `json:"app"`
	Balances []cryptopay.Balance      `json:"balances"`
	Rates    []cryptopay.ExchangeRate `json:"rates"`
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show app info, balances and rates in one view",
		Args:  cobra.NoArgs,
		RunE: runAPI(func(cmd *cobra.Command, _ []string, client *cryptopay.Client) (*summary, error) {
			return fetchSummary(cmd, client)
		}),
	}
}

func fetchSummary(cmd *cobra.Command, client *cryptopay.Client) (*summary, error) {
	var s summary
	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		app, err := client.GetMe(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app: %w", err)
		}
		s.App = app
		return nil
	})
	g.Go(func() error {
		balances, err := client.GetBalance(ctx)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		s.Balances = balances
		return nil
	})
	g.Go(func() error {
		rates, err := client.GetExchangeRates(ctx)
		if err != nil {
			return fmt.Errorf("failed to get rates: %w", err)
		}
		s.Rates = rates
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}
