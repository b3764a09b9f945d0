// Package quote refreshes holding prices from the external quote source,
// falling back to synthesized prices when no credential is configured.
package quote

import (
	"context"
	"math/rand"
	"time"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
)

// Service implements QuoteService.
type Service struct {
	client interfaces.QuoteClient // nil when no credential is configured
	logger *common.Logger
	now    func() time.Time // injectable clock for testing
	random func() float64   // injectable randomness for mock prices
}

// NewService creates a new quote service. client may be nil — prices are then
// synthesized around the cost basis instead of fetched.
func NewService(client interfaces.QuoteClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
		now:    time.Now,
		random: rand.Float64,
	}
}

// RefreshPrices updates CurrentPrice and LastUpdated on every holding in
// place.
//
// Without a client, each price is synthesized as avgCost ± 10%. With a
// client, holdings are fetched strictly sequentially — the client's shared
// limiter enforces the credential-wide call spacing — and a failed fetch
// leaves that holding's price stale rather than aborting the refresh. Partial
// success is the expected outcome under intermittent upstream failure.
func (s *Service) RefreshPrices(ctx context.Context, portfolio *models.Portfolio) error {
	if portfolio == nil || len(portfolio.Holdings) == 0 {
		return nil
	}

	if s.client == nil {
		s.logger.Warn().Msg("Quote API key not configured, using mock prices")
		for i := range portfolio.Holdings {
			h := &portfolio.Holdings[i]
			h.CurrentPrice = h.AvgCost * (1 + (s.random()*0.2 - 0.1))
			h.LastUpdated = s.now()
		}
		return nil
	}

	for i := range portfolio.Holdings {
		h := &portfolio.Holdings[i]

		price, err := s.client.GetQuote(ctx, h.Symbol)
		if err != nil {
			if ctx.Err() != nil {
				// Interrupted mid-sequence: remaining holdings stay stale.
				return ctx.Err()
			}
			s.logger.Warn().Err(err).Str("symbol", h.Symbol).Msg("Quote fetch failed, keeping stale price")
			continue
		}

		h.CurrentPrice = price
		h.LastUpdated = s.now()
	}

	return nil
}

// Ensure Service implements QuoteService
var _ interfaces.QuoteService = (*Service)(nil)
