package auth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"
)

// LinkedInOAuthClient drives the authorization-code exchange with LinkedIn.
// No state is kept between the authorize redirect and the callback: each
// step is derivable from its own request, so a failed or completed flow
// simply starts over on the next authorize visit.
type LinkedInOAuthClient struct {
	config *oauth2.Config
}

// Config carries the registered client settings. Endpoint may be overridden
// (tests point it at a local server); its zero value means the real
// LinkedIn endpoint.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	Endpoint     oauth2.Endpoint
}

func NewLinkedInOAuthClient(cfg Config) *LinkedInOAuthClient {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" && endpoint.TokenURL == "" {
		endpoint = linkedin.Endpoint
	}

	return &LinkedInOAuthClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
	}
}

func NewLinkedInOAuthClientFromEnv(scopes []string) (*LinkedInOAuthClient, error) {
	clientID := os.Getenv("LINKEDIN_CLIENT_ID")
	clientSecret := os.Getenv("LINKEDIN_CLIENT_SECRET")
	redirectURL := os.Getenv("LINKEDIN_REDIRECT_URL")

	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, fmt.Errorf("linkedin oauth env not set: LINKEDIN_CLIENT_ID/SECRET/REDIRECT_URL are required")
	}

	return NewLinkedInOAuthClient(Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
	}), nil
}

// AuthCodeURL builds the authorization redirect target carrying
// response_type=code, client_id, the fixed redirect_uri and the fixed
// scope set.
func (c *LinkedInOAuthClient) AuthCodeURL() string {
	return c.config.AuthCodeURL("")
}

// Exchange posts the received code to the token endpoint together with
// grant_type=authorization_code, the redirect_uri and the registered client
// credentials. Any non-success response surfaces as an error; there is no
// retry.
func (c *LinkedInOAuthClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("linkedin token exchange: %w", err)
	}
	return token, nil
}
