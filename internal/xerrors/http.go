package xerrors

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/garrettladley/cryptopay/internal/xhttp"
	"github.com/garrettladley/cryptopay/internal/xslog"
	go_json "github.com/goccy/go-json"
)

type errorResponse struct {
	Message string `json:"message"`
}

// Body returns the JSON document written for err.
func (e *Error) Body() []byte {
	b, _ := go_json.Marshal(errorResponse{Message: e.Message})
	return b
}

func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	appErr := From(err)

	Log(ctx, appErr)

	xhttp.SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(appErr.StatusCode)

	_ = go_json.NewEncoder(w).Encode(errorResponse{Message: appErr.Message})
}

// Log records err at a level matching its status class.
func Log(ctx context.Context, err *Error) {
	logger := xslog.FromContext(ctx)
	attrs := []any{
		xslog.HTTPStatus(err.StatusCode),
		slog.String("message", err.Message),
	}
	if err.Cause != nil {
		attrs = append(attrs, xslog.Error(err.Cause))
	}

	switch err.StatusCode / 100 {
	case 5:
		logger.ErrorContext(ctx, "server error", attrs...)
	case 4:
		logger.WarnContext(ctx, "client error", attrs...)
	default:
		logger.InfoContext(ctx, "error response", attrs...)
	}
}
