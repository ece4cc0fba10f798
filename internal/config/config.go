package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	appenv "github.com/garrettladley/cryptopay/internal/env"
	"github.com/garrettladley/cryptopay/internal/xslog"
	"github.com/garrettladley/cryptopay/pkg/cryptopay"
	"github.com/garrettladley/cryptopay/pkg/webhook"
)

type Config struct {
	Env      appenv.Environment `env:"ENV" envDefault:"development"`
	LogLevel xslog.Level        `env:"LOG_LEVEL" envDefault:"info"`
	API      API                `envPrefix:"CRYPTOPAY_"`
	Server   Server
}

type API struct {
	Token   string            `env:"API_TOKEN,required,unset"`
	Network cryptopay.Network `env:"NETWORK" envDefault:"mainnet"`
	BaseURL string            `env:"BASE_URL"`
	// Timeout of zero keeps the transport default.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`
}

type Server struct {
	Port        string            `env:"PORT" envDefault:"8080"`
	WebhookPath string            `env:"WEBHOOK_PATH" envDefault:"/webhooks/cryptopay"`
	Framework   webhook.Framework `env:"WEBHOOK_FRAMEWORK" envDefault:"net/http"`
}

func Read() (Config, error) {
	return ReadFrom(nil)
}

// ReadFrom parses environment from vars instead of the process environment
// when vars is non-nil.
func ReadFrom(vars map[string]string) (Config, error) {
	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.Server.WebhookPath == "" || cfg.Server.WebhookPath[0] != '/' {
		return Config{}, fmt.Errorf("WEBHOOK_PATH must start with '/': %q", cfg.Server.WebhookPath)
	}
	return cfg, nil
}

// ClientOptions returns the cryptopay client options described by a.
func (a API) ClientOptions(logger *slog.Logger) []cryptopay.Option {
	opts := []cryptopay.Option{
		cryptopay.WithNetwork(a.Network),
		cryptopay.WithLogger(logger),
	}
	if a.BaseURL != "" {
		opts = append(opts, cryptopay.WithBaseURL(a.BaseURL))
	}
	if a.Timeout > 0 {
		opts = append(opts, cryptopay.WithTimeout(a.Timeout))
	}
	return opts
}

func (a API) NewClient(logger *slog.Logger) *cryptopay.Client {
	return cryptopay.New(a.Token, a.ClientOptions(logger)...)
}
