package generator

import (
	"strings"
	"testing"
)

func TestBuildPromptSubstitutesAllFields(t *testing.T) {
	prompt := BuildPrompt("Data Engineer", "stream processing", "witty")

	for _, want := range []string{
		"professional role is 'Data Engineer'",
		"about the topic: 'stream processing'",
		"The tone of the post must be witty.",
		"3-5 relevant hashtags",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptDefaultsTone(t *testing.T) {
	prompt := BuildPrompt("CTO", "hiring", "")

	if !strings.Contains(prompt, "The tone of the post must be "+DefaultTone+".") {
		t.Fatalf("expected default tone %q in prompt:\n%s", DefaultTone, prompt)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	g, err := New(t.Context(), "", "gemini-1.5-flash-latest")
	if err == nil {
		t.Fatalf("expected error for blank api key")
	}
	if g != nil {
		t.Fatalf("expected nil generator when key is blank")
	}
}
