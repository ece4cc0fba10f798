package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/garrettladley/cryptopay/internal/version"
	"github.com/garrettladley/cryptopay/internal/xhttp"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func RequestIP(r *http.Request) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

// Method is the Crypto Pay API method name, e.g. "createInvoice".
func Method(method string) slog.Attr {
	const apiMethodKey = "api_method"
	return slog.String(apiMethodKey, method)
}

func APIErrorCode(code int) slog.Attr {
	const apiErrorCodeKey = "api_error_code"
	return slog.Int(apiErrorCodeKey, code)
}

func Network(network string) slog.Attr {
	const networkKey = "network"
	return slog.String(networkKey, network)
}

func UpdateID(id int64) slog.Attr {
	const updateIDKey = "update_id"
	return slog.Int64(updateIDKey, id)
}

func UpdateType(updateType string) slog.Attr {
	const updateTypeKey = "update_type"
	return slog.String(updateTypeKey, updateType)
}

func InvoiceID(id int64) slog.Attr {
	const invoiceIDKey = "invoice_id"
	return slog.Int64(invoiceIDKey, id)
}

func Framework(framework string) slog.Attr {
	const frameworkKey = "framework"
	return slog.String(frameworkKey, framework)
}

func Listeners(count int) slog.Attr {
	const listenersKey = "listeners"
	return slog.Int(listenersKey, count)
}

func ListenerIndex(index int) slog.Attr {
	const listenerKey = "listener"
	return slog.Int(listenerKey, index)
}
