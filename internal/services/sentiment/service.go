// Package sentiment provides lexicon-based text sentiment scoring and the
// placeholder market-wide sentiment indicator.
package sentiment

import (
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
)

// SignalSource produces values in [0, 1). The market sentiment indicator has
// no real inputs — it is injected so a real signal can replace the random
// generator without touching callers.
type SignalSource func() float64

// Service implements SentimentService.
type Service struct {
	logger *common.Logger
	signal SignalSource
	now    func() time.Time
}

// Option configures the service.
type Option func(*Service)

// WithSignalSource sets the market-sentiment signal source.
func WithSignalSource(src SignalSource) Option {
	return func(s *Service) {
		s.signal = src
	}
}

// NewService creates a new sentiment service.
func NewService(logger *common.Logger, opts ...Option) *Service {
	s := &Service{
		logger: logger,
		signal: rand.Float64,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeText scores text against the polarity lexicon. Scoring is a
// best-effort enrichment: it never returns an error, and unusable input
// yields the neutral default with Analyzed=false so post creation is never
// blocked by it.
func (s *Service) AnalyzeText(text string) models.SentimentResult {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return models.SentimentResult{Label: models.SentimentNeutral}
	}

	result := models.SentimentResult{Analyzed: true}
	for _, tok := range tokens {
		weight, ok := lexicon[tok]
		if !ok {
			continue
		}
		result.Score += weight
		if weight > 0 {
			result.Words.PositiveWords = append(result.Words.PositiveWords, tok)
		} else {
			result.Words.NegativeWords = append(result.Words.NegativeWords, tok)
		}
	}

	result.Comparative = float64(result.Score) / float64(len(tokens))

	switch {
	case result.Score > 2:
		result.Label = models.SentimentPositive
	case result.Score < -2:
		result.Label = models.SentimentNegative
	default:
		result.Label = models.SentimentNeutral
	}

	return result
}

// tokenize lowercases and splits text into word tokens. Apostrophes stay
// inside tokens so contractions survive.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// Ensure Service implements SentimentService
var _ interfaces.SentimentService = (*Service)(nil)
