package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/garrettladley/cryptopay/internal/config"
	appenv "github.com/garrettladley/cryptopay/internal/env"
	"github.com/garrettladley/cryptopay/internal/xslog"
	"github.com/garrettladley/cryptopay/pkg/cryptopay"
	"github.com/garrettladley/cryptopay/pkg/webhook"
	"github.com/gin-gonic/gin"
	go_json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

const (
	testToken = "abc"
	testPath  = "/webhooks/cryptopay"
	testBody  = `{"update_id":5,"update_type":"invoice_paid","request_date":"2024-01-01T00:00:00Z","payload":{"invoice_id":9,"status":"paid","currency_type":"crypto","asset":"USDT","amount":"4","hash":"IVh","created_at":"2024-01-01T00:00:00Z","allow_comments":true,"allow_anonymous":true}}`
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig(fw webhook.Framework) config.Config {
	return config.Config{
		Env: appenv.Development,
		API: config.API{Token: testToken, Network: cryptopay.Testnet},
		Server: config.Server{
			Port:        "0",
			WebhookPath: testPath,
			Framework:   fw,
		},
	}
}

// do sends one request through srv without opening a socket.
func do(t *testing.T, srv server, method, path, sig, body string) (int, string) {
	t.Helper()

	switch s := srv.(type) {
	case *httpServer:
		r := httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set(webhook.HeaderSignature, sig)
		rec := httptest.NewRecorder()
		s.srv.Handler.ServeHTTP(rec, r)
		return rec.Code, rec.Body.String()

	case *fiberServer:
		r := httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set(webhook.HeaderSignature, sig)
		resp, err := s.app.Test(r)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(b)

	case *fastHTTPServer:
		var ctx fasthttp.RequestCtx
		ctx.Request.Header.SetMethod(method)
		ctx.Request.SetRequestURI(path)
		ctx.Request.Header.Set(webhook.HeaderSignature, sig)
		ctx.Request.SetBodyString(body)
		s.srv.Handler(&ctx)
		return ctx.Response.StatusCode(), string(ctx.Response.Body())

	default:
		t.Fatalf("unexpected server type %T", srv)
		return 0, ""
	}
}

func TestServers(t *testing.T) {
	t.Parallel()

	sig := webhook.Sign(webhook.DeriveSecret(testToken), []byte(testBody))

	for _, fw := range []webhook.Framework{
		webhook.FrameworkHTTP,
		webhook.FrameworkGin,
		webhook.FrameworkEcho,
		webhook.FrameworkFiber,
		webhook.FrameworkFastHTTP,
	} {
		t.Run(fw.String(), func(t *testing.T) {
			t.Parallel()

			logger := slog.New(slog.DiscardHandler)
			d := webhook.NewDispatcher(testToken, webhook.WithLogger(logger))

			var got []int64
			d.On(cryptopay.UpdateTypeInvoicePaid, func(_ context.Context, u *cryptopay.Update) error {
				got = append(got, u.Payload.InvoiceID)
				return nil
			})

			srv, err := newServer(testConfig(fw), d, logger)
			if err != nil {
				t.Fatalf("newServer() error = %v", err)
			}

			status, body := do(t, srv, http.MethodPost, testPath, sig, testBody)
			if status != http.StatusOK || body != "OK" {
				t.Errorf("webhook response = %d %q, want 200 \"OK\"", status, body)
			}
			if len(got) != 1 || got[0] != 9 {
				t.Errorf("listener saw invoices %v, want [9]", got)
			}

			status, body = do(t, srv, http.MethodGet, healthPath, "", "")
			if status != http.StatusOK {
				t.Fatalf("health status = %d, want 200", status)
			}
			var h health
			if err := go_json.Unmarshal([]byte(body), &h); err != nil {
				t.Fatalf("decoding health %q: %v", body, err)
			}
			if h.Status != "ok" || h.Framework != fw {
				t.Errorf("health = %+v", h)
			}

			if status, _ := do(t, srv, http.MethodGet, "/nope", "", ""); status != http.StatusNotFound {
				t.Errorf("unknown path status = %d, want 404", status)
			}
		})
	}
}

func TestNewServerUnknownFramework(t *testing.T) {
	t.Parallel()

	d := webhook.NewDispatcher(testToken)
	_, err := newServer(testConfig("chi"), d, slog.New(slog.DiscardHandler))
	if !errors.Is(err, webhook.ErrUnknownFramework) {
		t.Errorf("newServer() error = %v, want ErrUnknownFramework", err)
	}
}

func TestLogInvoicePaid(t *testing.T) {
	t.Parallel()

	u, err := cryptopay.ParseUpdate([]byte(testBody))
	if err != nil {
		t.Fatalf("ParseUpdate() error = %v", err)
	}
	if err := logInvoicePaid(t.Context(), u); err != nil {
		t.Errorf("logInvoicePaid() error = %v", err)
	}
}

func TestHTTPServerLogsWithRequestScope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := xslog.NewLogger(&buf, xslog.LevelDebug)
	d := webhook.NewDispatcher(testToken, webhook.WithLogger(logger))

	srv, err := newServer(testConfig(webhook.FrameworkHTTP), d, logger)
	if err != nil {
		t.Fatalf("newServer() error = %v", err)
	}

	sig := webhook.Sign(webhook.DeriveSecret(testToken), []byte(testBody))
	if status, body := do(t, srv, http.MethodPost, testPath, sig, testBody); status != http.StatusOK {
		t.Fatalf("webhook response = %d %q, want 200", status, body)
	}

	entries := map[string]map[string]any{}
	for line := range strings.Lines(buf.String()) {
		var entry map[string]any
		if err := go_json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		if msg, ok := entry["msg"].(string); ok {
			entries[msg] = entry
		}
	}

	for _, msg := range []string{"http request", "dispatching update"} {
		entry, ok := entries[msg]
		if !ok {
			t.Errorf("no %q line in server logger output:\n%s", msg, buf.String())
			continue
		}
		if id, _ := entry["request_id"].(string); id == "" {
			t.Errorf("%q line has no request_id: %v", msg, entry)
		}
		if entry["framework"] != webhook.FrameworkHTTP.String() {
			t.Errorf("%q framework = %v, want %q", msg, entry["framework"], webhook.FrameworkHTTP)
		}
	}
}
