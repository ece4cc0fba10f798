package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/garrettladley/cryptopay/internal/config"
	"github.com/garrettladley/cryptopay/internal/xslog"
	"github.com/garrettladley/cryptopay/pkg/cryptopay"
	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newClient() (*cryptopay.Client, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	logger := xslog.NewLogger(os.Stderr, cfg.LogLevel)
	return cfg.API.NewClient(logger), nil
}

func printJSON(w io.Writer, v any) error {
	b, err := go_json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// runAPI builds a command body that calls fn with a configured client and
// prints its result.
func runAPI[T any](fn func(cmd *cobra.Command, args []string, client *cryptopay.Client) (T, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		result, err := fn(cmd, args, client)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	}
}
