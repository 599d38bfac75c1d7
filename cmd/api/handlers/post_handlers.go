package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"influence-os/cmd/api/dto"
	"influence-os/cmd/api/services"
)

// RootHandler godoc
// @Summary      API status
// @Description  Confirms the API is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponseDTO
// @Router       / [get]
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.StatusResponseDTO{Status: "Influence OS API is running."})
	}
}

// ListPostsHandler godoc
// @Summary      List generated posts
// @Description  Lists stored posts in insertion order with offset/limit pagination
// @Tags         posts
// @Param        skip   query  int  false  "Rows to skip (default 0)"
// @Param        limit  query  int  false  "Max rows to return (default 100)"
// @Produce      json
// @Success      200  {array}   dto.PostDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

		posts, err := svc.List(c.Request.Context(), skip, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.NewPostDTOs(posts))
	}
}

// GeneratePostHandler godoc
// @Summary      Generate a post
// @Description  Generates LinkedIn post text with Gemini and stores it
// @Tags         posts
// @Accept       json
// @Param        request  body  dto.GeneratePostRequest  true  "Generation inputs"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /generate-post [post]
func GeneratePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GeneratePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		post, err := svc.Generate(c.Request.Context(), services.GeneratePostInput{
			Role:  req.Role,
			Topic: req.Topic,
			Tone:  req.Tone,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.NewPostDTO(*post))
	}
}
