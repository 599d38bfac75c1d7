package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	if c.Server.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", c.Server.Addr)
	}
	if c.GeminiModel != "gemini-1.5-flash-latest" {
		t.Fatalf("expected default model, got %q", c.GeminiModel)
	}
	if len(c.LinkedIn.Scopes) != 4 {
		t.Fatalf("expected 4 default scopes, got %v", c.LinkedIn.Scopes)
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		t.Fatalf("expected a default CORS origin")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	c := AppConfig{
		Server:      ServerConfig{Addr: ":9000"},
		GeminiModel: "gemini-2.0-flash",
		LinkedIn:    LinkedInConfig{Scopes: []string{"openid"}},
	}
	applyDefaults(&c)

	if c.Server.Addr != ":9000" {
		t.Fatalf("explicit addr overwritten: %q", c.Server.Addr)
	}
	if c.GeminiModel != "gemini-2.0-flash" {
		t.Fatalf("explicit model overwritten: %q", c.GeminiModel)
	}
	if len(c.LinkedIn.Scopes) != 1 {
		t.Fatalf("explicit scopes overwritten: %v", c.LinkedIn.Scopes)
	}
}
