package cryptopay

// Asset is a cryptocurrency supported by Crypto Pay.
// See https://help.crypt.bot/crypto-pay-api#assets
type Asset string

const (
	AssetUSDT Asset = "USDT"
	AssetTON  Asset = "TON"
	AssetBTC  Asset = "BTC"
	AssetETH  Asset = "ETH"
	AssetLTC  Asset = "LTC"
	AssetBNB  Asset = "BNB"
	AssetTRX  Asset = "TRX"
	AssetUSDC Asset = "USDC"
	AssetJET  Asset = "JET"
)

// FiatCurrency is a fiat currency code accepted by Crypto Pay.
// See https://help.crypt.bot/crypto-pay-api#currencies
type FiatCurrency string

const (
	FiatUSD FiatCurrency = "USD"
	FiatEUR FiatCurrency = "EUR"
	FiatRUB FiatCurrency = "RUB"
	FiatBYN FiatCurrency = "BYN"
	FiatUAH FiatCurrency = "UAH"
	FiatGBP FiatCurrency = "GBP"
	FiatCNY FiatCurrency = "CNY"
	FiatKZT FiatCurrency = "KZT"
	FiatUZS FiatCurrency = "UZS"
	FiatGEL FiatCurrency = "GEL"
	FiatTRY FiatCurrency = "TRY"
	FiatAMD FiatCurrency = "AMD"
	FiatTHB FiatCurrency = "THB"
	FiatINR FiatCurrency = "INR"
	FiatBRL FiatCurrency = "BRL"
	FiatIDR FiatCurrency = "IDR"
	FiatAZN FiatCurrency = "AZN"
	FiatAED FiatCurrency = "AED"
	FiatPLN FiatCurrency = "PLN"
	FiatILS FiatCurrency = "ILS"
)

type CurrencyType string

const (
	CurrencyTypeCrypto CurrencyType = "crypto"
	CurrencyTypeFiat   CurrencyType = "fiat"
)

type InvoiceStatus string

const (
	InvoiceStatusActive  InvoiceStatus = "active"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusExpired InvoiceStatus = "expired"
)

type CheckStatus string

const (
	CheckStatusActive    CheckStatus = "active"
	CheckStatusActivated CheckStatus = "activated"
)

type TransferStatus string

const TransferStatusCompleted TransferStatus = "completed"

// PaidButtonName is the preset button shown to the payer after a successful payment.
type PaidButtonName string

const (
	PaidButtonViewItem    PaidButtonName = "viewItem"
	PaidButtonOpenChannel PaidButtonName = "openChannel"
	PaidButtonOpenBot     PaidButtonName = "openBot"
	PaidButtonCallback    PaidButtonName = "callback"
)

type UpdateType string

const UpdateTypeInvoicePaid UpdateType = "invoice_paid"
