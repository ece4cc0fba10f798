package cryptopay

import "time"

type CreateInvoiceParams struct {
	CurrencyType   CurrencyType   `json:"currency_type,omitempty"`
	Asset          Asset          `json:"asset,omitempty"`
	Fiat           FiatCurrency   `json:"fiat,omitempty"`
	AcceptedAssets []Asset        `json:"accepted_assets,omitempty"`
	Amount         string         `json:"amount"`
	Description    string         `json:"description,omitempty"`
	HiddenMessage  string         `json:"hidden_message,omitempty"`
	PaidButtonName PaidButtonName `json:"paid_btn_name,omitempty"`
	PaidButtonURL  string         `json:"paid_btn_url,omitempty"`
	Payload        string         `json:"payload,omitempty"`
	AllowComments  *bool          `json:"allow_comments,omitempty"`
	AllowAnonymous *bool          `json:"allow_anonymous,omitempty"`
	// ExpiresIn is the payment window in seconds.
	ExpiresIn  int   `json:"expires_in,omitempty"`
	IsFlexible *bool `json:"is_flexible,omitempty"`
	SwapTo     Asset `json:"swap_to,omitempty"`
}

type DeleteInvoiceParams struct {
	InvoiceIDs []int64 `json:"invoice_ids"`
}

type CreateCheckParams struct {
	Asset  Asset  `json:"asset"`
	Amount string `json:"amount"`
}

type DeleteCheckParams struct {
	CheckIDs []int64 `json:"check_ids"`
}

type TransferParams struct {
	UserID  string `json:"user_id"`
	Asset   Asset  `json:"asset"`
	Amount  string `json:"amount"`
	SpendID string `json:"spend_id,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type GetInvoicesParams struct {
	InvoiceIDs []int64       `json:"invoice_ids,omitempty"`
	Status     InvoiceStatus `json:"status,omitempty"`
	Offset     int           `json:"offset,omitempty"`
	Count      int           `json:"count,omitempty"`
	From       *time.Time    `json:"from,omitempty"`
	To         *time.Time    `json:"to,omitempty"`
}

type GetChecksParams struct {
	CheckIDs []int64     `json:"check_ids,omitempty"`
	Status   CheckStatus `json:"status,omitempty"`
	Offset   int         `json:"offset,omitempty"`
	Count    int         `json:"count,omitempty"`
	From     *time.Time  `json:"from,omitempty"`
	To       *time.Time  `json:"to,omitempty"`
}

type GetTransfersParams struct {
	TransferIDs []int64    `json:"transfer_ids,omitempty"`
	SpendID     string     `json:"spend_id,omitempty"`
	Offset      int        `json:"offset,omitempty"`
	Count       int        `json:"count,omitempty"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
}

type GetStatsParams struct {
	StartAt time.Time  `json:"start_at"`
	EndAt   *time.Time `json:"end_at,omitempty"`
}
