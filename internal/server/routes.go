package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/stockpulse/internal/common"
)

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"uptime":  time.Since(s.app.StartupTime).Round(time.Second).String(),
		"version": common.GetVersion(),
	})
}

// handleVersion handles GET /api/version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Auth
	mux.HandleFunc("/api/auth/register", s.handleRegister)
	mux.HandleFunc("/api/auth/login", s.handleLogin)

	// Portfolio
	mux.HandleFunc("/api/portfolios/me", s.routeMyPortfolio)
	mux.HandleFunc("/api/portfolios/me/", s.routeMyPortfolio)

	// AI / analytics surface
	mux.HandleFunc("/api/ai/sentiment", s.handleSentiment)
	mux.HandleFunc("/api/ai/recommendations", s.handleRecommendations)
	mux.HandleFunc("/api/ai/market-sentiment", s.handleMarketSentiment)

	// Community posts
	mux.HandleFunc("/api/posts", s.routePosts)
	mux.HandleFunc("/api/posts/", s.routePosts)
}
