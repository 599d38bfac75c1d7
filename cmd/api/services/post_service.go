package services

import (
	"context"
	"fmt"

	"influence-os/generator"
	"influence-os/models"
)

// TextGenerator produces post copy for the given role/topic/tone.
// The production implementation lives in the generator package; tests
// substitute a fake.
type TextGenerator interface {
	GeneratePost(ctx context.Context, role, topic, tone string) (string, error)
}

// PostStore is the narrow persistence surface for generated posts:
// append one row, list rows in insertion order. Nothing else.
type PostStore interface {
	Append(ctx context.Context, text string) (*models.Post, error)
	List(ctx context.Context, skip, limit int) ([]models.Post, error)
}

// PostService generates post text through the model and persists the
// result. Generation and storage failures both terminate the request;
// neither is retried.
type PostService struct {
	generator TextGenerator
	store     PostStore
}

func NewPostService(gen TextGenerator, store PostStore) *PostService {
	return &PostService{generator: gen, store: store}
}

type GeneratePostInput struct {
	Role  string
	Topic string
	Tone  string
}

// Generate asks the model for post text and appends it to the store,
// returning the stored row.
func (s *PostService) Generate(ctx context.Context, in GeneratePostInput) (*models.Post, error) {
	tone := in.Tone
	if tone == "" {
		tone = generator.DefaultTone
	}

	text, err := s.generator.GeneratePost(ctx, in.Role, in.Topic, tone)
	if err != nil {
		return nil, fmt.Errorf("generate post text: %w", err)
	}

	post, err := s.store.Append(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("store generated post: %w", err)
	}
	return post, nil
}

// List returns stored posts in insertion order with offset/limit pagination.
func (s *PostService) List(ctx context.Context, skip, limit int) ([]models.Post, error) {
	return s.store.List(ctx, skip, limit)
}
