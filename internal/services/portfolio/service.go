// Package portfolio orchestrates portfolio CRUD, price refresh, and the
// analytics pipeline over the storage layer.
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
	"github.com/bobmcallan/stockpulse/internal/services/analytics"
)

// DefaultPortfolioName is given to portfolios created on first access.
const DefaultPortfolioName = "My Portfolio"

// Service implements PortfolioService.
type Service struct {
	storage   interfaces.StorageManager
	quotes    interfaces.QuoteService
	analytics interfaces.AnalyticsService
	logger    *common.Logger
	now       func() time.Time // injectable clock for testing
}

// NewService creates a new portfolio service.
func NewService(storage interfaces.StorageManager, quotes interfaces.QuoteService, analyticsService interfaces.AnalyticsService, logger *common.Logger) *Service {
	return &Service{
		storage:   storage,
		quotes:    quotes,
		analytics: analyticsService,
		logger:    logger,
		now:       time.Now,
	}
}

// GetOrCreate retrieves the user's portfolio, creating an empty default when
// none exists. Totals are revalued before return so they are never stale.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*models.Portfolio, error) {
	p, err := s.storage.PortfolioStorage().GetPortfolio(ctx, userID)
	if err != nil {
		if !interfaces.IsNotFound(err) {
			return nil, err
		}
		p = &models.Portfolio{
			ID:       userID,
			Name:     DefaultPortfolioName,
			Holdings: []models.Holding{},
		}
		p.ApplyTotals(analytics.Revalue(p.Holdings))
		if err := s.storage.PortfolioStorage().SavePortfolio(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to create default portfolio: %w", err)
		}
		s.logger.Info().Str("user", userID).Msg("Default portfolio created")
		return p, nil
	}

	p.ApplyTotals(analytics.Revalue(p.Holdings))
	return p, nil
}

// Update applies profile fields and an optional wholesale holdings
// replacement, then revalues and persists.
func (s *Service) Update(ctx context.Context, userID string, update interfaces.PortfolioUpdate) (*models.Portfolio, error) {
	p, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != "" {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.IsPublic != nil {
		p.IsPublic = *update.IsPublic
	}
	if update.Holdings != nil {
		for i := range update.Holdings {
			update.Holdings[i].Symbol = models.NormalizeSymbol(update.Holdings[i].Symbol)
		}
		p.Holdings = update.Holdings
	}

	return s.save(ctx, p)
}

// AddHolding inserts or merges a position, revalues, and persists.
func (s *Service) AddHolding(ctx context.Context, userID, symbol, name string, quantity, avgCost float64) (*models.Portfolio, error) {
	if quantity < 0 || avgCost < 0 {
		return nil, fmt.Errorf("quantity and avg cost must not be negative")
	}

	p, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.UpsertHolding(symbol, name, quantity, avgCost)
	return s.save(ctx, p)
}

// RemoveHolding removes the position with the given symbol.
func (s *Service) RemoveHolding(ctx context.Context, userID, symbol string) (*models.Portfolio, error) {
	p, err := s.storage.PortfolioStorage().GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !p.RemoveHolding(symbol) {
		return nil, &interfaces.NotFoundError{Kind: "holding", Key: models.NormalizeSymbol(symbol)}
	}

	return s.save(ctx, p)
}

// Analyze runs the full pipeline: refresh prices, revalue, run the analytics
// engine, persist the new snapshot wholesale, and return the analysis.
func (s *Service) Analyze(ctx context.Context, userID string) (*models.Portfolio, *models.PortfolioAnalysis, error) {
	p, err := s.storage.PortfolioStorage().GetPortfolio(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.quotes.RefreshPrices(ctx, p); err != nil {
		return nil, nil, fmt.Errorf("price refresh interrupted: %w", err)
	}

	p.ApplyTotals(analytics.Revalue(p.Holdings))

	analysis := s.analytics.Analyze(p)
	p.Analytics = analysis.Snapshot(s.now())

	if err := s.storage.PortfolioStorage().SavePortfolio(ctx, p); err != nil {
		return nil, nil, err
	}

	s.logger.Info().
		Str("user", userID).
		Int("holdings", len(p.Holdings)).
		Int("score", analysis.DiversificationScore).
		Str("risk", string(analysis.RiskLevel)).
		Msg("Portfolio analysis complete")

	return p, analysis, nil
}

// save revalues derived totals and persists — every write path funnels
// through here so persisted totals are always consistent with holdings.
func (s *Service) save(ctx context.Context, p *models.Portfolio) (*models.Portfolio, error) {
	p.ApplyTotals(analytics.Revalue(p.Holdings))
	if err := s.storage.PortfolioStorage().SavePortfolio(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
