package server

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
	"github.com/bobmcallan/stockpulse/internal/services/portfolio"
)

// routeMyPortfolio dispatches /api/portfolios/me and its subpaths.
func (s *Server) routeMyPortfolio(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/portfolios/me")
	rest = strings.Trim(rest, "/")

	switch {
	case rest == "":
		s.handleMyPortfolio(w, r)
	case rest == "holdings":
		s.handleAddHolding(w, r)
	case strings.HasPrefix(rest, "holdings/"):
		s.handleRemoveHolding(w, r, strings.TrimPrefix(rest, "holdings/"))
	case rest == "analyze":
		s.handleAnalyzePortfolio(w, r)
	case rest == "allocation/chart":
		s.handleAllocationChart(w, r)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// handleMyPortfolio handles GET and PUT /api/portfolios/me.
func (s *Server) handleMyPortfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPut) {
		return
	}
	uc := requireUser(w, r)
	if uc == nil {
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := s.app.PortfolioService.GetOrCreate(r.Context(), uc.UserID)
		if err != nil {
			s.logger.Error().Err(err).Str("user", uc.UserID).Msg("Failed to load portfolio")
			WriteError(w, http.StatusInternalServerError, "Failed to load portfolio")
			return
		}
		WriteJSON(w, http.StatusOK, p)

	case http.MethodPut:
		var req struct {
			Name        *string          `json:"name"`
			Description *string          `json:"description"`
			IsPublic    *bool            `json:"is_public"`
			Holdings    []models.Holding `json:"holdings"`
		}
		if !DecodeJSON(w, r, &req) {
			return
		}

		p, err := s.app.PortfolioService.Update(r.Context(), uc.UserID, interfaces.PortfolioUpdate{
			Name:        req.Name,
			Description: req.Description,
			IsPublic:    req.IsPublic,
			Holdings:    req.Holdings,
		})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to update portfolio")
			return
		}
		WriteJSON(w, http.StatusOK, p)
	}
}

// handleAddHolding handles POST /api/portfolios/me/holdings.
func (s *Server) handleAddHolding(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	uc := requireUser(w, r)
	if uc == nil {
		return
	}

	var req struct {
		Symbol   string  `json:"symbol"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		AvgCost  float64 `json:"avg_cost"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Symbol) == "" {
		WriteError(w, http.StatusBadRequest, "Symbol is required")
		return
	}

	p, err := s.app.PortfolioService.AddHolding(r.Context(), uc.UserID, req.Symbol, req.Name, req.Quantity, req.AvgCost)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

// handleRemoveHolding handles DELETE /api/portfolios/me/holdings/{symbol}.
func (s *Server) handleRemoveHolding(w http.ResponseWriter, r *http.Request, symbol string) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}
	uc := requireUser(w, r)
	if uc == nil {
		return
	}

	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "Symbol is required")
		return
	}

	p, err := s.app.PortfolioService.RemoveHolding(r.Context(), uc.UserID, symbol)
	if err != nil {
		if interfaces.IsNotFound(err) {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteError(w, http.StatusInternalServerError, "Failed to remove holding")
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

// handleAnalyzePortfolio handles POST /api/portfolios/me/analyze.
func (s *Server) handleAnalyzePortfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	uc := requireUser(w, r)
	if uc == nil {
		return
	}

	p, analysis, err := s.app.PortfolioService.Analyze(r.Context(), uc.UserID)
	if err != nil {
		if interfaces.IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "Portfolio not found")
			return
		}
		s.logger.Error().Err(err).Str("user", uc.UserID).Msg("Portfolio analysis failed")
		WriteError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"portfolio": p,
		"analysis":  analysis,
	})
}

// handleAllocationChart handles GET /api/portfolios/me/allocation/chart,
// returning a PNG of sector allocation by current value.
func (s *Server) handleAllocationChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	uc := requireUser(w, r)
	if uc == nil {
		return
	}

	p, err := s.app.PortfolioService.GetOrCreate(r.Context(), uc.UserID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to load portfolio")
		return
	}

	analysis := s.app.AnalyticsService.Analyze(p)
	png, err := portfolio.RenderAllocationChart(analysis.SectorAllocation)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, "Portfolio has no holdings to chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
