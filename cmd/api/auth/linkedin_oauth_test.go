package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func testClient(t *testing.T, tokenURL string) *LinkedInOAuthClient {
	t.Helper()
	return NewLinkedInOAuthClient(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8000/auth/linkedin/callback",
		Scopes:       []string{"openid", "profile", "email", "w_member_social"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   "https://provider.example/authorization",
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	})
}

func TestAuthCodeURLCarriesProtocolParameters(t *testing.T) {
	client := testClient(t, "https://provider.example/accessToken")

	u, err := url.Parse(client.AuthCodeURL())
	if err != nil {
		t.Fatalf("failed to parse authorize URL: %v", err)
	}

	q := u.Query()
	if got := q.Get("response_type"); got != "code" {
		t.Fatalf("expected response_type=code, got %q", got)
	}
	if got := q.Get("client_id"); got != "client-id" {
		t.Fatalf("expected client_id, got %q", got)
	}
	if got := q.Get("redirect_uri"); got != "http://localhost:8000/auth/linkedin/callback" {
		t.Fatalf("unexpected redirect_uri %q", got)
	}
	scope := q.Get("scope")
	for _, want := range []string{"openid", "profile", "email", "w_member_social"} {
		if !strings.Contains(scope, want) {
			t.Fatalf("scope %q missing %q", scope, want)
		}
	}
}

func TestExchangeReturnsAccessToken(t *testing.T) {
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse token request form: %v", err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-abc","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	token, err := client.Exchange(t.Context(), "code-123")
	if err != nil {
		t.Fatalf("unexpected exchange error: %v", err)
	}
	if token.AccessToken != "token-abc" {
		t.Fatalf("expected access token token-abc, got %q", token.AccessToken)
	}

	if got := gotForm.Get("grant_type"); got != "authorization_code" {
		t.Fatalf("expected grant_type=authorization_code, got %q", got)
	}
	if got := gotForm.Get("code"); got != "code-123" {
		t.Fatalf("expected code=code-123, got %q", got)
	}
	if got := gotForm.Get("redirect_uri"); got != "http://localhost:8000/auth/linkedin/callback" {
		t.Fatalf("unexpected redirect_uri %q", got)
	}
}

func TestExchangeFailsOnNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	token, err := client.Exchange(t.Context(), "code-123")
	if err == nil {
		t.Fatalf("expected error for non-200 token response")
	}
	if token != nil {
		t.Fatalf("expected nil token on failure, got %+v", token)
	}
}
