package cryptopay

import "context"

// GetMe tests the app token and returns basic information about the app.
func (c *Client) GetMe(ctx context.Context) (*AppInfo, error) {
	const method = "getMe"
	return call[*AppInfo](ctx, c, method, nil)
}

func (c *Client) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error) {
	const method = "createInvoice"
	return call[*Invoice](ctx, c, method, params)
}

func (c *Client) DeleteInvoice(ctx context.Context, params DeleteInvoiceParams) ([]Invoice, error) {
	const method = "deleteInvoice"
	return call[[]Invoice](ctx, c, method, params)
}

// CreateCheck creates a crypto check (voucher) redeemable by any Telegram user.
func (c *Client) CreateCheck(ctx context.Context, params CreateCheckParams) (*Check, error) {
	const method = "createCheck"
	return call[*Check](ctx, c, method, params)
}

func (c *Client) DeleteCheck(ctx context.Context, params DeleteCheckParams) ([]Check, error) {
	const method = "deleteCheck"
	return call[[]Check](ctx, c, method, params)
}

// Transfer sends coins from the app balance to a Telegram user.
func (c *Client) Transfer(ctx context.Context, params TransferParams) (*Transfer, error) {
	const method = "transfer"
	return call[*Transfer](ctx, c, method, params)
}

// GetInvoices lists invoices. A nil params returns the API's default page.
func (c *Client) GetInvoices(ctx context.Context, params *GetInvoicesParams) ([]Invoice, error) {
	const method = "getInvoices"
	if params == nil {
		params = &GetInvoicesParams{}
	}
	return call[[]Invoice](ctx, c, method, params)
}

func (c *Client) GetChecks(ctx context.Context, params *GetChecksParams) ([]Check, error) {
	const method = "getChecks"
	if params == nil {
		params = &GetChecksParams{}
	}
	return call[[]Check](ctx, c, method, params)
}

func (c *Client) GetTransfers(ctx context.Context, params *GetTransfersParams) ([]Transfer, error) {
	const method = "getTransfers"
	if params == nil {
		params = &GetTransfersParams{}
	}
	return call[[]Transfer](ctx, c, method, params)
}

func (c *Client) GetBalance(ctx context.Context) ([]Balance, error) {
	const method = "getBalance"
	return call[[]Balance](ctx, c, method, nil)
}

func (c *Client) GetExchangeRates(ctx context.Context) ([]ExchangeRate, error) {
	const method = "getExchangeRates"
	return call[[]ExchangeRate](ctx, c, method, nil)
}

func (c *Client) GetCurrencies(ctx context.Context) ([]Asset, error) {
	const method = "getCurrencies"
	return call[[]Asset](ctx, c, method, nil)
}

// GetStats returns app statistics for the period starting at params.StartAt.
func (c *Client) GetStats(ctx context.Context, params GetStatsParams) (*AppStats, error) {
	const method = "getStats"
	return call[*AppStats](ctx, c, method, params)
}
