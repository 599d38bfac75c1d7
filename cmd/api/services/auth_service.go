package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"influence-os/cmd/api/auth"
	"influence-os/cmd/api/clients/linkedinclient"
)

// AuthService drives the LinkedIn authorize/callback/token-exchange flow
// and wraps the two bearer-authenticated provider calls. The service holds
// no token: after the callback redirect the frontend is the sole holder
// and sends it back as an Authorization header.
type AuthService struct {
	oauth          *auth.LinkedInOAuthClient
	linkedin       *linkedinclient.Client
	frontendOrigin string
}

func NewAuthService(oauth *auth.LinkedInOAuthClient, linkedin *linkedinclient.Client, frontendOrigin string) *AuthService {
	return &AuthService{
		oauth:          oauth,
		linkedin:       linkedin,
		frontendOrigin: frontendOrigin,
	}
}

func NewAuthServiceFromEnv(scopes []string) (*AuthService, error) {
	oauthClient, err := auth.NewLinkedInOAuthClientFromEnv(scopes)
	if err != nil {
		return nil, fmt.Errorf("failed to init LinkedInOAuthClient: %w", err)
	}

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		return nil, fmt.Errorf("FRONTEND_ORIGIN is blank")
	}

	return NewAuthService(oauthClient, linkedinclient.New(), frontendOrigin), nil
}

// AuthorizeURL is the LinkedIn authorization URL the browser is redirected to.
func (s *AuthService) AuthorizeURL() string {
	return s.oauth.AuthCodeURL()
}

// HandleCallback exchanges the authorization code for a bearer token and
// returns the raw access token destined for the frontend redirect.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (string, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

// SuccessRedirectURL appends the access token to the frontend origin as a
// query parameter. The token ends up visible in the browser URL; that
// matches the deployed frontend contract and is kept as-is.
func (s *AuthService) SuccessRedirectURL(token string) string {
	return fmt.Sprintf("%s?token=%s", s.frontendOrigin, url.QueryEscape(token))
}

// FailureRedirectURL flags the failed exchange to the frontend.
func (s *AuthService) FailureRedirectURL() string {
	return s.frontendOrigin + "?error=auth_failed"
}

// FetchProfile returns the member's userinfo JSON verbatim.
func (s *AuthService) FetchProfile(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return s.linkedin.UserInfo(ctx, accessToken)
}

// SharePost publishes post text on the member's feed. It first re-fetches
// the profile to learn the subject id for the author URN; a profile
// failure is returned without attempting the publish call.
func (s *AuthService) SharePost(ctx context.Context, accessToken, postText string) error {
	profile, err := s.linkedin.UserInfo(ctx, accessToken)
	if err != nil {
		return err
	}
	sub, err := linkedinclient.SubjectFromUserInfo(profile)
	if err != nil {
		return err
	}
	return s.linkedin.CreatePost(ctx, accessToken, linkedinclient.PersonURN(sub), postText)
}
