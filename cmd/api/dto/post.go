package dto

import (
	"time"

	"influence-os/models"
)

// GeneratePostRequest is the body of POST /generate-post.
// Tone is optional and defaults to "professional".
type GeneratePostRequest struct {
	Role  string `json:"role" binding:"required" example:"Software Engineer"`
	Topic string `json:"topic" binding:"required" example:"the future of AI agents"`
	Tone  string `json:"tone" example:"professional"`
}

// SharePostRequest is the body of POST /posts/share.
type SharePostRequest struct {
	PostText string `json:"post_text" binding:"required"`
}

// PostDTO is the wire shape of a stored post.
type PostDTO struct {
	ID        uint      `json:"id"`
	PostText  string    `json:"post_text"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		ID:        p.ID,
		PostText:  p.PostText,
		CreatedAt: p.CreatedAt,
	}
}

func NewPostDTOs(posts []models.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostDTO(p))
	}
	return out
}
