package models

import "time"

// Sector is one of the fixed sector buckets used by the classifier.
type Sector string

const (
	SectorTechnology Sector = "Technology"
	SectorFinance    Sector = "Finance"
	SectorHealthcare Sector = "Healthcare"
	SectorConsumer   Sector = "Consumer"
	SectorEnergy     Sector = "Energy"
	SectorUtilities  Sector = "Utilities"
	SectorOther      Sector = "Other"
)

// HoldingPerformance is one entry in the performance ranking.
type HoldingPerformance struct {
	Symbol    string  `json:"symbol"`
	ReturnPct float64 `json:"return"`
}

// PortfolioAnalysis is the full output of an analysis run. The snapshot
// persisted on the portfolio is derived from it; the analysis itself is a
// value the caller is free to discard.
type PortfolioAnalysis struct {
	DiversificationScore int                  `json:"diversification_score"`
	RiskLevel            RiskLevel            `json:"risk_level"`
	Recommendations      []string             `json:"recommendations"`
	SectorAllocation     map[Sector]float64   `json:"sector_allocation"`
	TopPerformers        []HoldingPerformance `json:"top_performers"`
	Underperformers      []HoldingPerformance `json:"underperformers"`
}

// Snapshot converts the analysis into the persisted snapshot form.
func (a *PortfolioAnalysis) Snapshot(at time.Time) AnalyticsSnapshot {
	return AnalyticsSnapshot{
		DiversificationScore: a.DiversificationScore,
		RiskLevel:            a.RiskLevel,
		Recommendations:      a.Recommendations,
		LastAnalyzed:         at,
	}
}

// RiskTolerance expresses the user's appetite for risk in advisory requests.
type RiskTolerance string

const (
	RiskToleranceConservative RiskTolerance = "conservative"
	RiskToleranceModerate     RiskTolerance = "moderate"
	RiskToleranceAggressive   RiskTolerance = "aggressive"
)

// Normalize maps unknown tolerance values to the moderate default.
func (r RiskTolerance) Normalize() RiskTolerance {
	switch r {
	case RiskToleranceConservative, RiskToleranceModerate, RiskToleranceAggressive:
		return r
	}
	return RiskToleranceModerate
}

// MarketAttitude expresses the user's view of the market in advisory requests.
type MarketAttitude string

const (
	MarketAttitudeBullish MarketAttitude = "bullish"
	MarketAttitudeBearish MarketAttitude = "bearish"
	MarketAttitudeNeutral MarketAttitude = "neutral"
)

// Normalize maps unknown attitude values to the neutral default.
func (m MarketAttitude) Normalize() MarketAttitude {
	switch m {
	case MarketAttitudeBullish, MarketAttitudeBearish, MarketAttitudeNeutral:
		return m
	}
	return MarketAttitudeNeutral
}

// RecommendationPriority orders advisory suggestions.
type RecommendationPriority string

const (
	PriorityLow    RecommendationPriority = "low"
	PriorityMedium RecommendationPriority = "medium"
	PriorityHigh   RecommendationPriority = "high"
)

// Recommendation is a single rule-generated advisory suggestion with a static
// candidate-ticker list. These are educational accompaniments, not
// instructions to act.
type Recommendation struct {
	Type            string                 `json:"type"`
	Priority        RecommendationPriority `json:"priority"`
	Message         string                 `json:"message"`
	SuggestedStocks []string               `json:"suggested_stocks"`
}

// AdvisorReport bundles the advisory recommendations with their mandatory
// educational disclaimer.
type AdvisorReport struct {
	Recommendations []Recommendation `json:"recommendations"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Disclaimer      string           `json:"disclaimer"`
}

// MarketIndicators are the sub-signals of the market sentiment placeholder.
type MarketIndicators struct {
	SocialMedia       float64 `json:"social_media"`
	News              float64 `json:"news"`
	TechnicalAnalysis float64 `json:"technical_analysis"`
}

// MarketSentiment is the output of the market sentiment indicator. The signal
// is a stochastic placeholder with no real inputs.
type MarketSentiment struct {
	Sentiment  MarketAttitude   `json:"sentiment"`
	Score      float64          `json:"score"`      // [-1, 1]
	Confidence float64          `json:"confidence"` // [0.5, 1]
	Indicators MarketIndicators `json:"indicators"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
}
