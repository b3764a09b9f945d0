package analytics

import (
	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
)

// Service implements AnalyticsService. All computation is pure — the service
// reads the portfolio snapshot and returns a fresh analysis value; the caller
// decides what to persist.
type Service struct {
	logger *common.Logger
}

// NewService creates a new analytics service.
func NewService(logger *common.Logger) *Service {
	return &Service{logger: logger}
}

// Analyze derives the full analytics profile for a portfolio.
//
// The risk decision table is ordered — later rules are unreachable once an
// earlier one fires:
//
//	tech allocation > 60% of value OR fewer than 5 holdings  → high
//	more than 10 holdings AND tech allocation < 30%          → low
//	otherwise                                                → medium
func (s *Service) Analyze(portfolio *models.Portfolio) *models.PortfolioAnalysis {
	analysis := &models.PortfolioAnalysis{
		RiskLevel:        models.RiskMedium,
		SectorAllocation: map[models.Sector]float64{},
	}

	if portfolio == nil || len(portfolio.Holdings) == 0 {
		analysis.Recommendations = []string{msgEmptyPortfolio}
		return analysis
	}

	holdings := portfolio.Holdings
	numHoldings := len(holdings)

	// Sector allocation reflects present exposure: quantity × current price,
	// not cost.
	for _, h := range holdings {
		sector := ClassifySector(h.Symbol)
		analysis.SectorAllocation[sector] += h.Quantity * h.CurrentPrice
	}

	numSectors := len(analysis.SectorAllocation)
	cappedHoldings := numHoldings
	if cappedHoldings > 10 {
		cappedHoldings = 10
	}
	score := numSectors*20 + cappedHoldings*5
	if score > 100 {
		score = 100
	}
	analysis.DiversificationScore = score

	totals := Revalue(holdings)
	techFraction := 0.0
	if totals.TotalValue > 0 {
		techFraction = analysis.SectorAllocation[models.SectorTechnology] / totals.TotalValue
	}

	if techFraction > 0.6 || numHoldings < 5 {
		analysis.RiskLevel = models.RiskHigh
	} else if numHoldings > 10 && techFraction < 0.3 {
		analysis.RiskLevel = models.RiskLow
	}

	analysis.TopPerformers, analysis.Underperformers = RankPerformance(holdings)

	avg, hasReturns := meanReturn(holdings)
	analysis.Recommendations = buildRecommendations(recommendationInputs{
		diversificationScore: analysis.DiversificationScore,
		numHoldings:          numHoldings,
		techFraction:         techFraction,
		avgReturn:            avg,
		hasReturns:           hasReturns,
	})

	s.logger.Debug().
		Str("portfolio", portfolio.ID).
		Int("score", analysis.DiversificationScore).
		Str("risk", string(analysis.RiskLevel)).
		Int("recommendations", len(analysis.Recommendations)).
		Msg("Portfolio analyzed")

	return analysis
}

// Ensure Service implements AnalyticsService
var _ interfaces.AnalyticsService = (*Service)(nil)
