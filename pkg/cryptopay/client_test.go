package cryptopay

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const testToken = "12345:AAtesttoken"

type recordedRequest struct {
	method string
	path   string
	token  string
	ctype  string
	body   string
}

type stubAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	response string
}

func newStubAPI(t *testing.T, status int, response string) (*stubAPI, *Client) {
	t.Helper()

	stub := &stubAPI{status: status, response: response}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		stub.mu.Lock()
		stub.requests = append(stub.requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			token:  r.Header.Get(HeaderAPIToken),
			ctype:  r.Header.Get("Content-Type"),
			body:   string(body),
		})
		stub.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stub.status)
		_, _ = io.WriteString(w, stub.response)
	}))
	t.Cleanup(srv.Close)

	client := New(testToken,
		WithBaseURL(srv.URL),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	return stub, client
}

func (s *stubAPI) only(t *testing.T) recordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) != 1 {
		t.Fatalf("got %d requests, want exactly 1", len(s.requests))
	}
	return s.requests[0]
}

func TestNewEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "default is mainnet",
			want: "https://pay.crypt.bot/",
		},
		{
			name: "testnet",
			opts: []Option{WithNetwork(Testnet)},
			want: "https://testnet-pay.crypt.bot/",
		},
		{
			name: "base url without trailing slash",
			opts: []Option{WithBaseURL("http://localhost:9999")},
			want: "http://localhost:9999/",
		},
		{
			name: "base url wins over network",
			opts: []Option{WithNetwork(Testnet), WithBaseURL("http://localhost:9999/")},
			want: "http://localhost:9999/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(testToken, tt.opts...).Endpoint(); got != tt.want {
				t.Errorf("Endpoint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallSendsRequest(t *testing.T) {
	t.Parallel()

	stub, client := newStubAPI(t, http.StatusOK, `{"ok":true,"result":{"app_id":7,"name":"shop","bot_username":"CryptoBot"}}`)

	var got AppInfo
	if err := client.Call(t.Context(), "getMe", nil, &got); err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	req := stub.only(t)
	if req.method != http.MethodPost {
		t.Errorf("method = %q, want POST", req.method)
	}
	if req.path != "/api/getMe" {
		t.Errorf("path = %q, want /api/getMe", req.path)
	}
	if req.token != testToken {
		t.Errorf("%s = %q, want %q", HeaderAPIToken, req.token, testToken)
	}
	if req.ctype != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", req.ctype)
	}
	if req.body != "{}" {
		t.Errorf("body = %q, want {}", req.body)
	}

	want := AppInfo{AppID: 7, Name: "shop", BotUsername: "CryptoBot"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Call() result mismatch (-want +got):\n%s", diff)
	}
}

func TestCallAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		response     string
		wantCode     int
		wantContains []string
	}{
		{
			name:         "code and name",
			status:       http.StatusBadRequest,
			response:     `{"ok":false,"error":{"code":400,"name":"AMOUNT_TOO_SMALL"}}`,
			wantCode:     400,
			wantContains: []string{"createInvoice failed", "400", "AMOUNT_TOO_SMALL"},
		},
		{
			name:         "code and message",
			status:       http.StatusUnauthorized,
			response:     `{"ok":false,"error":{"code":401,"message":"UNAUTHORIZED"}}`,
			wantCode:     401,
			wantContains: []string{"401", "UNAUTHORIZED"},
		},
		{
			name:         "error envelope with 200 status",
			status:       http.StatusOK,
			response:     `{"ok":false,"error":{"code":403,"name":"METHOD_DISABLED","message":"transfers are disabled"}}`,
			wantCode:     403,
			wantContains: []string{"403", "METHOD_DISABLED", "transfers are disabled"},
		},
		{
			name:         "missing error object",
			status:       http.StatusInternalServerError,
			response:     `{"ok":false}`,
			wantCode:     http.StatusInternalServerError,
			wantContains: []string{"500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, client := newStubAPI(t, tt.status, tt.response)

			err := client.Call(t.Context(), "createInvoice", CreateInvoiceParams{Asset: AssetTON, Amount: "0.0001"}, nil)
			apiErr, ok := AsAPIError(err)
			if !ok {
				t.Fatalf("Call() error = %v, want *APIError", err)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", apiErr.Code, tt.wantCode)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			for _, s := range tt.wantContains {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("Error() = %q, want it to contain %q", err.Error(), s)
				}
			}
		})
	}
}

func TestCallMalformedResponse(t *testing.T) {
	t.Parallel()

	_, client := newStubAPI(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	err := client.Call(t.Context(), "getBalance", nil, nil)
	if err == nil {
		t.Fatal("Call() expected error for non-JSON body")
	}
	if _, ok := AsAPIError(err); ok {
		t.Error("Call() returned *APIError for a body that is not an envelope")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("Error() = %q, want it to mention status 502", err.Error())
	}
}

func TestCallTransportError(t *testing.T) {
	t.Parallel()

	boom := errors.New("dial tcp: connection refused")
	client := New(testToken,
		WithBaseURL("http://cryptopay.invalid"),
		WithTransport(roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, boom })),
		WithLogger(slog.New(slog.DiscardHandler)),
	)

	err := client.Call(t.Context(), "getMe", nil, nil)
	if !errors.Is(err, boom) {
		t.Errorf("Call() error = %v, want it to wrap %v", err, boom)
	}
}

func TestCallHonoursContext(t *testing.T) {
	t.Parallel()

	_, client := newStubAPI(t, http.StatusOK, `{"ok":true,"result":[]}`)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if err := client.Call(ctx, "getBalance", nil, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Call() error = %v, want context.Canceled", err)
	}
}

func TestCallMakesExactlyOneRequest(t *testing.T) {
	t.Parallel()

	stub, client := newStubAPI(t, http.StatusInternalServerError, `{"ok":false,"error":{"code":500,"name":"INTERNAL"}}`)

	_ = client.Call(t.Context(), "getStats", GetStatsParams{StartAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, nil)

	req := stub.only(t)
	if req.body != `{"start_at":"2024-01-01T00:00:00Z"}` {
		t.Errorf("body = %s", req.body)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
