package server

import (
	"net/http"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/models"
)

// handleSentiment handles POST /api/ai/sentiment. Scores arbitrary text
// against the polarity lexicon. No auth required.
func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	result := s.app.SentimentService.AnalyzeText(req.Text)
	WriteJSON(w, http.StatusOK, result)
}

// handleRecommendations handles POST /api/ai/recommendations. The advisory
// path works without a stored portfolio: when the caller is authenticated
// their portfolio is loaded, otherwise the rules run against holdings-free
// defaults.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		RiskTolerance  models.RiskTolerance  `json:"riskTolerance"`
		MarketAttitude models.MarketAttitude `json:"marketAttitude"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	var p *models.Portfolio
	if uc := common.UserContextFrom(r.Context()); uc != nil {
		loaded, err := s.app.PortfolioService.GetOrCreate(r.Context(), uc.UserID)
		if err != nil {
			s.logger.Warn().Err(err).Str("user", uc.UserID).Msg("Advisory proceeding without portfolio")
		} else {
			p = loaded
		}
	}

	report := s.app.AdvisorService.Recommend(p, req.RiskTolerance, req.MarketAttitude)
	WriteJSON(w, http.StatusOK, report)
}

// handleMarketSentiment handles GET /api/ai/market-sentiment.
func (s *Server) handleMarketSentiment(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, s.app.SentimentService.MarketSentiment())
}
