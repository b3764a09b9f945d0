package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

type postStorage struct {
	store  *Store
	logger *common.Logger
}

// NewPostStorage creates a new PostStorage backed by BadgerHold.
func NewPostStorage(store *Store, logger *common.Logger) interfaces.PostStorage {
	return &postStorage{store: store, logger: logger}
}

func (s *postStorage) GetPost(_ context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := s.store.db.Get(id, &post)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, &interfaces.NotFoundError{Kind: "post", Key: id}
		}
		return nil, fmt.Errorf("failed to get post '%s': %w", id, err)
	}
	return &post, nil
}

func (s *postStorage) SavePost(_ context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	if err := s.store.db.Upsert(post.ID, post); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	s.logger.Debug().Str("id", post.ID).Msg("Post saved")
	return nil
}

func (s *postStorage) ListPosts(_ context.Context, limit int) ([]*models.Post, error) {
	var posts []models.Post
	if err := s.store.db.Find(&posts, nil); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	// Newest first
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}

	result := make([]*models.Post, len(posts))
	for i := range posts {
		result[i] = &posts[i]
	}
	return result, nil
}

func (s *postStorage) DeletePost(_ context.Context, id string) error {
	err := s.store.db.Delete(id, models.Post{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete post '%s': %w", id, err)
	}
	s.logger.Debug().Str("id", id).Msg("Post deleted")
	return nil
}
