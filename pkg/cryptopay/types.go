package cryptopay

import "time"

type AppInfo struct {
	AppID       int64  `json:"app_id"`
	Name        string `json:"name"`
	BotUsername string `json:"bot_username"`
}

type Invoice struct {
	InvoiceID         int64          `json:"invoice_id"`
	Status            InvoiceStatus  `json:"status"`
	CurrencyType      CurrencyType   `json:"currency_type"`
	Asset             Asset          `json:"asset,omitempty"`
	Fiat              FiatCurrency   `json:"fiat,omitempty"`
	AcceptedAssets    []Asset        `json:"accepted_assets,omitempty"`
	Amount            string         `json:"amount"`
	Hash              string         `json:"hash"`
	Description       string         `json:"description,omitempty"`
	BotInvoiceURL     string         `json:"bot_invoice_url,omitempty"`
	MiniAppInvoiceURL string         `json:"mini_app_invoice_url,omitempty"`
	WebAppInvoiceURL  string         `json:"web_app_invoice_url,omitempty"`
	IsFlexible        bool           `json:"is_flexible,omitempty"`
	PaidAsset         Asset          `json:"paid_asset,omitempty"`
	PaidAmount        string         `json:"paid_amount,omitempty"`
	PaidUSDRate       string         `json:"paid_usd_rate,omitempty"`
	PaidFiatRate      string         `json:"paid_fiat_rate,omitempty"`
	FeeAsset          Asset          `json:"fee_asset,omitempty"`
	FeeAmount         string         `json:"fee_amount,omitempty"`
	IsSwapped         bool           `json:"is_swapped,omitempty"`
	SwapTo            Asset          `json:"swap_to,omitempty"`
	SwappedUID        int64          `json:"swapped_uid,omitempty"`
	SwappedTo         Asset          `json:"swapped_to,omitempty"`
	SwappedRate       string         `json:"swapped_rate,omitempty"`
	SwappedOutput     string         `json:"swapped_output,omitempty"`
	SwappedUSDRate    string         `json:"swapped_usd_rate,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	AllowComments     bool           `json:"allow_comments"`
	AllowAnonymous    bool           `json:"allow_anonymous"`
	ExpirationDate    *time.Time     `json:"expiration_date,omitempty"`
	PaidAt            *time.Time     `json:"paid_at,omitempty"`
	PaidAnonymously   bool           `json:"paid_anonymously,omitempty"`
	Comment           string         `json:"comment,omitempty"`
	HiddenMessage     string         `json:"hidden_message,omitempty"`
	Payload           string         `json:"payload,omitempty"`
	PaidButtonName    PaidButtonName `json:"paid_btn_name,omitempty"`
	PaidButtonURL     string         `json:"paid_btn_url,omitempty"`
}

type Transfer struct {
	TransferID  int64          `json:"transfer_id"`
	SpendID     string         `json:"spend_id,omitempty"`
	UserID      string         `json:"user_id"`
	Asset       Asset          `json:"asset"`
	Amount      string         `json:"amount"`
	Status      TransferStatus `json:"status"`
	CompletedAt time.Time      `json:"completed_at"`
	Comment     string         `json:"comment,omitempty"`
}

type Check struct {
	CheckID     int64       `json:"check_id"`
	Hash        string      `json:"hash"`
	Asset       Asset       `json:"asset"`
	Amount      string      `json:"amount"`
	BotCheckURL string      `json:"bot_check_url"`
	Status      CheckStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	ActivatedAt *time.Time  `json:"activated_at,omitempty"`
}

type Balance struct {
	CurrencyCode Asset  `json:"currency_code"`
	Available    string `json:"available"`
	Onhold       string `json:"onhold"`
}

type ExchangeRate struct {
	IsValid  bool         `json:"is_valid"`
	IsCrypto bool         `json:"is_crypto"`
	IsFiat   bool         `json:"is_fiat"`
	Source   Asset        `json:"source"`
	Target   FiatCurrency `json:"target"`
	Rate     string       `json:"rate"`
}

type AppStats struct {
	Volume              float64   `json:"volume"`
	Conversion          float64   `json:"conversion"`
	UniqueUsersCount    int64     `json:"unique_users_count"`
	CreatedInvoiceCount int64     `json:"created_invoice_count"`
	PaidInvoiceCount    int64     `json:"paid_invoice_count"`
	StartAt             time.Time `json:"start_at"`
	EndAt               time.Time `json:"end_at"`
}
