// Package interfaces defines service contracts for StockPulse
package interfaces

import (
	"context"

	"github.com/bobmcallan/stockpulse/internal/models"
)

// PortfolioService manages portfolio operations. Every method that returns a
// portfolio revalues its derived totals first — totals are never stale
// relative to the holdings list.
type PortfolioService interface {
	// GetOrCreate retrieves the user's portfolio, creating an empty default
	// if none exists.
	GetOrCreate(ctx context.Context, userID string) (*models.Portfolio, error)

	// Update applies profile fields and an optional wholesale holdings
	// replacement, then revalues and persists.
	Update(ctx context.Context, userID string, update PortfolioUpdate) (*models.Portfolio, error)

	// AddHolding inserts or merges a position by symbol.
	AddHolding(ctx context.Context, userID, symbol, name string, quantity, avgCost float64) (*models.Portfolio, error)

	// RemoveHolding removes the position with the given symbol.
	RemoveHolding(ctx context.Context, userID, symbol string) (*models.Portfolio, error)

	// Analyze refreshes prices, runs the analytics engine, persists the new
	// snapshot, and returns the updated portfolio with the full analysis.
	Analyze(ctx context.Context, userID string) (*models.Portfolio, *models.PortfolioAnalysis, error)
}

// PortfolioUpdate carries optional profile fields for PortfolioService.Update.
// Nil pointers leave the existing value untouched.
type PortfolioUpdate struct {
	Name        *string
	Description *string
	IsPublic    *bool
	Holdings    []models.Holding
}

// AnalyticsService derives the diversification, risk, ranking, and
// recommendation profile of a portfolio. Pure — no storage, no side effects.
type AnalyticsService interface {
	Analyze(portfolio *models.Portfolio) *models.PortfolioAnalysis
}

// AdvisorService generates rule-based advisory recommendations. The portfolio
// may be nil — the advisory path works without persisted holdings.
type AdvisorService interface {
	Recommend(portfolio *models.Portfolio, tolerance models.RiskTolerance, attitude models.MarketAttitude) *models.AdvisorReport
}

// SentimentService scores free text against a polarity lexicon and produces
// the placeholder market sentiment signal.
type SentimentService interface {
	// AnalyzeText never fails: on unusable input it returns the safe neutral
	// default with Analyzed=false.
	AnalyzeText(text string) models.SentimentResult

	// MarketSentiment returns the stochastic market-wide indicator.
	MarketSentiment() models.MarketSentiment
}

// QuoteService refreshes current prices on portfolio holdings in place.
type QuoteService interface {
	// RefreshPrices updates CurrentPrice/LastUpdated on each holding.
	// Per-holding fetch failures are logged and skipped; the call only fails
	// on context cancellation.
	RefreshPrices(ctx context.Context, portfolio *models.Portfolio) error
}

// PostService manages forum posts with sentiment enrichment.
type PostService interface {
	Create(ctx context.Context, authorID string, post *models.Post) (*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, authorID, id string, title, content string, category models.PostCategory) (*models.Post, error)
	List(ctx context.Context, limit int) ([]*models.Post, error)
}
