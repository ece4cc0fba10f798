package cryptopay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/garrettladley/cryptopay/internal/xhttp"
	"github.com/garrettladley/cryptopay/internal/xslog"
	go_json "github.com/goccy/go-json"
)

// HeaderAPIToken carries the app token on every API request.
const HeaderAPIToken = "Crypto-Pay-API-Token"

type Client struct {
	endpoint   string
	network    Network
	httpClient *http.Client
	logger     *slog.Logger
}

func New(token string, opts ...Option) *Client {
	cfg := &clientConfig{
		network: Mainnet,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	endpoint := cfg.baseURL
	if endpoint == "" {
		endpoint = cfg.network.Endpoint()
	}

	httpOpts := []xhttp.ClientOption{
		xhttp.WithRoundTripper(func(base http.RoundTripper) http.RoundTripper {
			return &tokenTransport{base: base, token: token}
		}),
	}
	if cfg.timeout > 0 {
		httpOpts = append(httpOpts, xhttp.WithTimeout(cfg.timeout))
	}

	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/") + "/",
		network:    cfg.network,
		httpClient: xhttp.NewHTTPClient(cfg.transport, httpOpts...),
		logger:     cfg.logger,
	}
}

type clientConfig struct {
	network   Network
	baseURL   string
	transport http.RoundTripper
	logger    *slog.Logger
	timeout   time.Duration
}

type Option func(*clientConfig)

func WithNetwork(network Network) Option {
	return func(cfg *clientConfig) { cfg.network = network }
}

// WithBaseURL overrides the network endpoint, e.g. for a local stub.
func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.transport = rt }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

// WithTimeout bounds each call. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func (c *Client) Endpoint() string { return c.endpoint }

func (c *Client) Network() Network { return c.network }

type envelope struct {
	OK     bool               `json:"ok"`
	Result go_json.RawMessage `json:"result"`
	Error  *envelopeError     `json:"error"`
}

// Call invokes an API method by name. params is JSON-encoded as the request
// body (nil sends {}); on success the envelope's result is decoded into
// result, which may be nil to discard it. An {"ok": false} answer is
// returned as *APIError.
func (c *Client) Call(ctx context.Context, method string, params any, result any) error {
	if params == nil {
		params = struct{}{}
	}
	payload, err := go_json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encoding %s params: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"api/"+method, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", method, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing %s request: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", method, err)
	}

	c.logger.DebugContext(ctx, "cryptopay call",
		xslog.Method(method),
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
	)

	var env envelope
	if err := go_json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decoding %s response (status %d): %w\nbody: %s", method, resp.StatusCode, err, string(body))
	}

	if !env.OK {
		apiErr := env.Error.toAPIError(method, resp.StatusCode)
		c.logger.WarnContext(ctx, "cryptopay api error",
			xslog.Method(method),
			xslog.HTTPStatus(resp.StatusCode),
			xslog.APIErrorCode(apiErr.Code),
		)
		return apiErr
	}

	if result == nil {
		return nil
	}
	if err := go_json.Unmarshal(env.Result, result); err != nil {
		return fmt.Errorf("decoding %s result: %w\nresult: %s", method, err, string(env.Result))
	}
	return nil
}

func call[T any](ctx context.Context, c *Client, method string, params any) (T, error) {
	var result T
	if err := c.Call(ctx, method, params, &result); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

type tokenTransport struct {
	base  http.RoundTripper
	token string
}

var _ http.RoundTripper = (*tokenTransport)(nil)

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(HeaderAPIToken, t.token)
	req.Header.Set(xhttp.ContentType, xhttp.ApplicationJSON)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
