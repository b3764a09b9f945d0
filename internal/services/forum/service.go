// Package forum manages community posts and their sentiment enrichment.
package forum

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
)

// Service implements PostService. Sentiment is computed from the post content
// at creation and again only when the content changes — the stored result is
// immutable in between.
type Service struct {
	storage   interfaces.StorageManager
	sentiment interfaces.SentimentService
	logger    *common.Logger
}

// NewService creates a new forum service.
func NewService(storage interfaces.StorageManager, sentimentService interfaces.SentimentService, logger *common.Logger) *Service {
	return &Service{
		storage:   storage,
		sentiment: sentimentService,
		logger:    logger,
	}
}

// Create validates and stores a new post with sentiment attached.
func (s *Service) Create(ctx context.Context, authorID string, post *models.Post) (*models.Post, error) {
	if post.Title == "" || post.Content == "" {
		return nil, fmt.Errorf("post title and content are required")
	}

	post.ID = uuid.New().String()
	post.AuthorID = authorID
	post.Category = post.Category.Normalize()
	for i := range post.Stocks {
		post.Stocks[i].Symbol = models.NormalizeSymbol(post.Stocks[i].Symbol)
	}
	post.Sentiment = s.sentiment.AnalyzeText(post.Content)

	if err := s.storage.PostStorage().SavePost(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("id", post.ID).
		Str("author", authorID).
		Str("sentiment", string(post.Sentiment.Label)).
		Msg("Post created")

	return post, nil
}

// Get retrieves a post by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.storage.PostStorage().GetPost(ctx, id)
}

// Update edits a post's title, content, or category. Only the author may
// edit, and sentiment is re-analyzed only when the content actually changed.
func (s *Service) Update(ctx context.Context, authorID, id string, title, content string, category models.PostCategory) (*models.Post, error) {
	post, err := s.storage.PostStorage().GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != authorID {
		return nil, fmt.Errorf("post '%s' is not owned by user '%s'", id, authorID)
	}

	if title != "" {
		post.Title = title
	}
	if category != "" {
		post.Category = category.Normalize()
	}
	if content != "" && content != post.Content {
		post.Content = content
		post.Sentiment = s.sentiment.AnalyzeText(content)
	}

	if err := s.storage.PostStorage().SavePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List returns the newest posts, up to limit.
func (s *Service) List(ctx context.Context, limit int) ([]*models.Post, error) {
	return s.storage.PostStorage().ListPosts(ctx, limit)
}

// Ensure Service implements PostService
var _ interfaces.PostService = (*Service)(nil)
