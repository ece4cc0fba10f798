package cryptopay

import (
	"bytes"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
)

// Update is a webhook delivery from Crypto Pay.
type Update struct {
	// UpdateID is not unique across deliveries.
	UpdateID    int64      `json:"update_id"`
	UpdateType  UpdateType `json:"update_type"`
	RequestDate time.Time  `json:"request_date"`
	Payload     Invoice    `json:"payload"`

	raw []byte
}

// ParseUpdate decodes a webhook body and keeps a copy of the bytes it was decoded from.
func ParseUpdate(body []byte) (*Update, error) {
	var u Update
	if err := go_json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("decoding update: %w", err)
	}
	u.raw = bytes.Clone(body)
	return &u, nil
}

// Raw returns the body the update was parsed from, or nil if it was built in memory.
func (u *Update) Raw() []byte {
	return u.raw
}
