// Package advisor generates rule-based stock recommendations keyed on the
// user's risk tolerance and market attitude. The rules are deterministic
// triggers with static candidate lists — there is no model behind them, and
// every report carries an educational disclaimer.
package advisor

import (
	"time"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
	"github.com/bobmcallan/stockpulse/internal/services/analytics"
)

// Disclaimer accompanies every advisory report.
const Disclaimer = "AI-generated recommendations are for educational purposes only. Always do your own research."

// diversificationSuggestions maps risk tolerance to the static candidate list
// used when the portfolio spans fewer than three sectors.
var diversificationSuggestions = map[models.RiskTolerance][]string{
	models.RiskToleranceConservative: {"JNJ", "PG", "KO", "VZ"},
	models.RiskToleranceModerate:     {"MSFT", "JPM", "UNH", "HD"},
	models.RiskToleranceAggressive:   {"NVDA", "TSLA", "SQ", "COIN"},
}

// Service implements AdvisorService.
type Service struct {
	logger *common.Logger
	now    func() time.Time // injectable clock for testing
}

// NewService creates a new advisor service.
func NewService(logger *common.Logger) *Service {
	return &Service{logger: logger, now: time.Now}
}

// Recommend evaluates the advisory rules. The portfolio may be nil; sector
// breadth is then treated as zero. Rules are independent — all that match are
// emitted, in a fixed order, so identical inputs always produce an identical
// report.
func (s *Service) Recommend(portfolio *models.Portfolio, tolerance models.RiskTolerance, attitude models.MarketAttitude) *models.AdvisorReport {
	tolerance = tolerance.Normalize()
	attitude = attitude.Normalize()

	var recs []models.Recommendation

	sectors := map[models.Sector]int{}
	if portfolio != nil {
		for _, h := range portfolio.Holdings {
			sectors[analytics.ClassifySector(h.Symbol)]++
		}
	}

	if len(sectors) < 3 {
		recs = append(recs, models.Recommendation{
			Type:            "diversification",
			Priority:        models.PriorityHigh,
			Message:         "Your portfolio lacks diversification. Consider adding stocks from different sectors.",
			SuggestedStocks: diversificationSuggestions[tolerance],
		})
	}

	switch tolerance {
	case models.RiskToleranceConservative:
		recs = append(recs, models.Recommendation{
			Type:            "risk-management",
			Priority:        models.PriorityMedium,
			Message:         "Consider adding stable dividend-paying stocks for consistent returns.",
			SuggestedStocks: []string{"JNJ", "PG", "KO", "PEP"},
		})
	case models.RiskToleranceAggressive:
		recs = append(recs, models.Recommendation{
			Type:            "growth",
			Priority:        models.PriorityMedium,
			Message:         "Explore high-growth technology and emerging sector stocks.",
			SuggestedStocks: []string{"NVDA", "AMD", "TSLA", "SQ"},
		})
	}

	switch attitude {
	case models.MarketAttitudeBullish:
		recs = append(recs, models.Recommendation{
			Type:            "market-timing",
			Priority:        models.PriorityLow,
			Message:         "Market sentiment is positive. Consider gradually increasing equity exposure.",
			SuggestedStocks: []string{"SPY", "QQQ", "VOO"},
		})
	case models.MarketAttitudeBearish:
		recs = append(recs, models.Recommendation{
			Type:            "defensive",
			Priority:        models.PriorityHigh,
			Message:         "Market uncertainty detected. Consider defensive stocks and bonds.",
			SuggestedStocks: []string{"XLU", "XLP", "TLT", "GLD"},
		})
	}

	s.logger.Debug().
		Str("tolerance", string(tolerance)).
		Str("attitude", string(attitude)).
		Int("recommendations", len(recs)).
		Msg("Advisory recommendations generated")

	return &models.AdvisorReport{
		Recommendations: recs,
		GeneratedAt:     s.now(),
		Disclaimer:      Disclaimer,
	}
}

// Ensure Service implements AdvisorService
var _ interfaces.AdvisorService = (*Service)(nil)
