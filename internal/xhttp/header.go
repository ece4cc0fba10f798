package xhttp

import "net/http"

const (
	XForwardedFor = "X-Forwarded-For"
	XRequestID    = "X-Request-ID"
	UserAgent     = "User-Agent"
	ContentType   = "Content-Type"
)

const (
	ApplicationJSON = "application/json"
	TextPlain       = "text/plain; charset=utf-8"
)

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	w.Header().Set(ContentType, ApplicationJSON)
}

func SetHeaderContentTypeTextPlain(w http.ResponseWriter) {
	w.Header().Set(ContentType, TextPlain)
}
