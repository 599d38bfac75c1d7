package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"influence-os/models"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// PostRepository is the only write/read path to the posts table.
// Its public surface is intentionally narrow: append one row, list rows in
// insertion order. Updates and deletes are not part of the contract.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Append stores one generated post and returns the stored row with its
// database-assigned id and created_at.
func (r *PostRepository) Append(ctx context.Context, text string) (*models.Post, error) {
	post := models.Post{PostText: text}
	if err := r.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}
	return &post, nil
}

// List returns posts ordered by id with offset/limit pagination.
// Negative skip is treated as 0; a non-positive limit falls back to the
// default page size and an oversized one is capped at the maximum.
func (r *PostRepository) List(ctx context.Context, skip, limit int) ([]models.Post, error) {
	skip, limit = NormalizeWindow(skip, limit)

	posts := make([]models.Post, 0)
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// NormalizeWindow clamps a pagination window to sane values. The limit is
// caller-controlled via the query string, so it is bounded on both sides
// before it reaches any allocation or query.
func NormalizeWindow(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return skip, limit
}
