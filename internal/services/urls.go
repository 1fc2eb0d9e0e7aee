package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/srhafid/BookApi/internal/cache"
	"github.com/srhafid/BookApi/internal/models"
	"github.com/srhafid/BookApi/internal/repository"
)

type CreateURLInput struct {
	Title       string
	Description string
	Author      string
	Rating      int
	UserID      uint
}

// URLService orchestrates url CRUD with a write-through cache mirror.
// The store is authoritative: after a successful store write, a cache
// failure is logged and the operation still succeeds, leaving the
// mirror stale until the next successful write for that id.
type URLService struct {
	repo   *repository.URLRepository
	cache  *cache.URLCache
	audit  *AuditService
	logger *slog.Logger
}

func NewURLService(repo *repository.URLRepository, urlCache *cache.URLCache, audit *AuditService, logger *slog.Logger) *URLService {
	return &URLService{repo: repo, cache: urlCache, audit: audit, logger: logger}
}

func (s *URLService) Create(ctx context.Context, in CreateURLInput, ip string) (*models.URL, error) {
	url := models.URL{
		Title:       in.Title,
		Description: in.Description,
		Author:      in.Author,
		Rating:      in.Rating,
		UserID:      in.UserID,
	}
	if err := s.repo.Create(&url); err != nil {
		s.logger.Error("Error creating URL", "title", in.Title, "error", err)
		return nil, ErrOperationFailed
	}

	s.mirror(ctx, &url)
	s.audit.LogAction(&url.UserID, "CREATE_URL", fmt.Sprint(url.ID), map[string]interface{}{"title": url.Title}, ip)
	return &url, nil
}

// Get prefers the cache copy and falls back to the store, backfilling
// the mirror on a miss.
func (s *URLService) Get(ctx context.Context, id uint) (*models.URL, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn("Cache lookup failed, falling back to store", "id", id, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	url, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Error reading URL", "id", id, "error", err)
		return nil, ErrOperationFailed
	}

	s.mirror(ctx, url)
	return url, nil
}

func (s *URLService) Update(ctx context.Context, id uint, fields map[string]interface{}, ip string) (bool, error) {
	updated, err := s.repo.Update(id, fields)
	if err != nil {
		s.logger.Error("Error updating URL", "id", id, "error", err)
		return false, ErrOperationFailed
	}
	if !updated {
		return false, nil
	}

	// Re-read so the mirror reflects exactly what was committed.
	url, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("Failed to re-read URL for cache refresh", "id", id, "error", err)
	} else {
		s.mirror(ctx, url)
	}

	s.audit.LogAction(nil, "UPDATE_URL", fmt.Sprint(id), fields, ip)
	return true, nil
}

func (s *URLService) Delete(ctx context.Context, id uint, ip string) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("Error deleting URL", "id", id, "error", err)
		return false, ErrOperationFailed
	}
	if !deleted {
		return false, nil
	}

	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn("Failed to delete URL from cache", "id", id, "error", err)
	}

	s.audit.LogAction(nil, "DELETE_URL", fmt.Sprint(id), nil, ip)
	return true, nil
}

func (s *URLService) mirror(ctx context.Context, url *models.URL) {
	if err := s.cache.Store(ctx, url); err != nil {
		s.logger.Warn("Failed to mirror URL into cache", "id", url.ID, "error", err)
	}
}
