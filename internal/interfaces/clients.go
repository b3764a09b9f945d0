package interfaces

import "context"

// QuoteClient fetches the current market price for a ticker symbol from an
// external quote source. Implementations own their rate limiting — the quota
// is global to the credential, not per-caller.
type QuoteClient interface {
	// GetQuote returns the latest price for the symbol. A missing or unpriced
	// symbol is an error; the caller treats it as a skip, not a failure.
	GetQuote(ctx context.Context, symbol string) (float64, error)
}
