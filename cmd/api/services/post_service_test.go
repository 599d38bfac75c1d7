package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influence-os/generator"
	"influence-os/models"
)

type fakeGenerator struct {
	text string
	err  error

	gotRole  string
	gotTopic string
	gotTone  string
}

func (f *fakeGenerator) GeneratePost(_ context.Context, role, topic, tone string) (string, error) {
	f.gotRole, f.gotTopic, f.gotTone = role, topic, tone
	return f.text, f.err
}

type memoryStore struct {
	posts []models.Post
}

func (m *memoryStore) Append(_ context.Context, text string) (*models.Post, error) {
	post := models.Post{
		ID:        uint(len(m.posts) + 1),
		PostText:  text,
		CreatedAt: time.Now(),
	}
	m.posts = append(m.posts, post)
	return &post, nil
}

func (m *memoryStore) List(_ context.Context, skip, limit int) ([]models.Post, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	if skip >= len(m.posts) {
		return []models.Post{}, nil
	}
	end := skip + limit
	if end > len(m.posts) {
		end = len(m.posts)
	}
	return m.posts[skip:end], nil
}

func TestGenerateStoresModelOutput(t *testing.T) {
	gen := &fakeGenerator{text: "generated post #golang"}
	store := &memoryStore{}
	svc := NewPostService(gen, store)

	post, err := svc.Generate(t.Context(), GeneratePostInput{
		Role:  "Engineer",
		Topic: "Go generics",
		Tone:  "witty",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated post #golang", post.PostText)
	assert.Equal(t, uint(1), post.ID)

	listed, err := svc.List(t.Context(), 0, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, post.PostText, listed[0].PostText)
}

func TestGenerateDefaultsTone(t *testing.T) {
	gen := &fakeGenerator{text: "text"}
	svc := NewPostService(gen, &memoryStore{})

	_, err := svc.Generate(t.Context(), GeneratePostInput{Role: "CTO", Topic: "hiring"})
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultTone, gen.gotTone)
}

func TestGeneratePropagatesModelFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	store := &memoryStore{}
	svc := NewPostService(gen, store)

	post, err := svc.Generate(t.Context(), GeneratePostInput{Role: "CTO", Topic: "hiring"})
	require.Error(t, err)
	assert.Nil(t, post)
	assert.Empty(t, store.posts, "nothing may be stored when generation fails")
}
