package xhttp

import (
	"net/http"

	go_json "github.com/goccy/go-json"
)

func WriteJSON(w http.ResponseWriter, status int, data any) {
	SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(status)
	_ = go_json.NewEncoder(w).Encode(data)
}

func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteText writes a plain-text body, e.g. the "OK" webhook acknowledgment.
func WriteText(w http.ResponseWriter, status int, body string) error {
	SetHeaderContentTypeTextPlain(w)
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	return err
}
