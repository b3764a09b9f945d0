package sentiment

import "github.com/bobmcallan/stockpulse/internal/models"

// MarketSentiment returns the market-wide sentiment indicator. This is a
// placeholder signal: the score is drawn from the configured SignalSource
// (uniform random by default), labeled bullish above 0.3 and bearish below
// -0.3. Confidence and the sub-indicators are drawn the same way.
func (s *Service) MarketSentiment() models.MarketSentiment {
	score := s.signal()*2 - 1

	label := models.MarketAttitudeNeutral
	if score > 0.3 {
		label = models.MarketAttitudeBullish
	} else if score < -0.3 {
		label = models.MarketAttitudeBearish
	}

	return models.MarketSentiment{
		Sentiment:  label,
		Score:      score,
		Confidence: s.signal()*0.5 + 0.5,
		Indicators: models.MarketIndicators{
			SocialMedia:       s.signal()*2 - 1,
			News:              s.signal()*2 - 1,
			TechnicalAnalysis: s.signal()*2 - 1,
		},
		AnalyzedAt: s.now(),
	}
}
