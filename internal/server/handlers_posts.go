package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
)

const defaultPostListLimit = 50

// routePosts dispatches /api/posts and /api/posts/{id}.
func (s *Server) routePosts(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/posts"), "/")

	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			s.handlePostList(w, r)
		case http.MethodPost:
			s.handlePostCreate(w, r)
		default:
			RequireMethod(w, r, http.MethodGet, http.MethodPost)
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handlePostGet(w, r, rest)
	case http.MethodPut:
		s.handlePostUpdate(w, r, rest)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut)
	}
}

// handlePostList handles GET /api/posts?limit=N, newest first.
func (s *Server) handlePostList(w http.ResponseWriter, r *http.Request) {
	limit := defaultPostListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			WriteError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	posts, err := s.app.PostService.List(r.Context(), limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list posts")
		WriteError(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}
	WriteJSON(w, http.StatusOK, posts)
}

// handlePostCreate handles POST /api/posts.
func (s *Server) handlePostCreate(w http.ResponseWriter, r *http.Request) {
	uc := requireUser(w, r)
	if uc == nil {
		return
	}

	var req struct {
		Title    string              `json:"title"`
		Content  string              `json:"content"`
		Category models.PostCategory `json:"category"`
		Stocks   []models.StockRef   `json:"stocks"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	post, err := s.app.PostService.Create(r.Context(), uc.UserID, &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Stocks:   req.Stocks,
	})
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusCreated, post)
}

// handlePostGet handles GET /api/posts/{id}.
func (s *Server) handlePostGet(w http.ResponseWriter, r *http.Request, id string) {
	post, err := s.app.PostService.Get(r.Context(), id)
	if err != nil {
		if interfaces.IsNotFound(err) {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteError(w, http.StatusInternalServerError, "Failed to load post")
		return
	}
	WriteJSON(w, http.StatusOK, post)
}

// handlePostUpdate handles PUT /api/posts/{id}. Author-only.
func (s *Server) handlePostUpdate(w http.ResponseWriter, r *http.Request, id string) {
	uc := requireUser(w, r)
	if uc == nil {
		return
	}

	var req struct {
		Title    string              `json:"title"`
		Content  string              `json:"content"`
		Category models.PostCategory `json:"category"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	post, err := s.app.PostService.Update(r.Context(), uc.UserID, id, req.Title, req.Content, req.Category)
	if err != nil {
		if interfaces.IsNotFound(err) {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteError(w, http.StatusForbidden, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, post)
}
