package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"influence-os/cmd/api/auth"
	"influence-os/cmd/api/clients/linkedinclient"
	"influence-os/cmd/api/dto"
	"influence-os/cmd/api/services"
	"influence-os/cmd/internal/logger"
)

// LinkedInLoginHandler godoc
// @Summary      Start LinkedIn authorization
// @Description  Redirects the browser to LinkedIn's authorization URL with response_type=code, the registered client_id, redirect_uri and the fixed scope set.
// @Tags         auth
// @Success      302  {string}  string  "Redirect to LinkedIn"
// @Router       /auth/linkedin [get]
func LinkedInLoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizeURL := authSvc.AuthorizeURL()
		logger.InfoWithFields("redirect to linkedin oauth", logger.Fields{
			"redirect_to": authorizeURL,
			"request_id":  c.Request.Header.Get("X-Request-Id"),
			"span_id":     c.Request.Header.Get("X-Span-Id"),
		})
		c.Redirect(http.StatusFound, authorizeURL)
	}
}

// LinkedInCallbackHandler godoc
// @Summary      LinkedIn OAuth callback
// @Description  Exchanges the authorization code for an access token and redirects to the frontend with ?token= on success or ?error=auth_failed on any exchange failure. The exchange is never retried.
// @Tags         auth
// @Param        code  query  string  true  "Authorization code"
// @Success      302  {string}  string  "Redirect to frontend"
// @Router       /auth/linkedin/callback [get]
func LinkedInCallbackHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" {
			logger.ErrorWithFields("linkedin callback missing code", logger.Fields{
				"request_id": c.Request.Header.Get("X-Request-Id"),
				"span_id":    c.Request.Header.Get("X-Span-Id"),
			})
			c.Redirect(http.StatusFound, authSvc.FailureRedirectURL())
			return
		}

		accessToken, err := authSvc.HandleCallback(c.Request.Context(), code)
		if err != nil {
			logger.ErrorWithFields("linkedin callback failed", logger.Fields{
				"error":      err.Error(),
				"request_id": c.Request.Header.Get("X-Request-Id"),
				"span_id":    c.Request.Header.Get("X-Span-Id"),
			})
			c.Redirect(http.StatusFound, authSvc.FailureRedirectURL())
			return
		}

		c.Redirect(http.StatusFound, authSvc.SuccessRedirectURL(accessToken))
	}
}

// GetMeHandler godoc
// @Summary      Current member profile
// @Description  Forwards the bearer token to LinkedIn's userinfo endpoint and returns the profile JSON verbatim. A non-success provider response is surfaced as {error, details} instead of failing the request.
// @Tags         users
// @Param        Authorization  header  string  true  "Bearer access token"
// @Produce      json
// @Success      200  {object}  object
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /users/me [get]
func GetMeHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		profile, err := authSvc.FetchProfile(c.Request.Context(), token)
		if err != nil {
			respondProviderError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", profile)
	}
}

// SharePostHandler godoc
// @Summary      Publish a post on LinkedIn
// @Description  Re-fetches the member profile for the author URN, then publishes the text on the member's feed. A profile-fetch failure is returned without attempting the publish call.
// @Tags         posts
// @Accept       json
// @Param        Authorization  header  string               true  "Bearer access token"
// @Param        request        body   dto.SharePostRequest  true  "Post text"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /posts/share [post]
func SharePostHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SharePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		if err := authSvc.SharePost(c.Request.Context(), token, req.PostText); err != nil {
			respondProviderError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Post successfully shared on LinkedIn"})
	}
}

// respondProviderError turns a LinkedIn failure into the structured
// {error, details} body. Provider failures answer with HTTP 200 and an
// error object rather than a 5xx; the frontend keys off the error field.
func respondProviderError(c *gin.Context, err error) {
	var apiErr *linkedinclient.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusOK, dto.ProviderErrorDTO{
			Error:   apiErr.Error(),
			Details: apiErr.Details(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
