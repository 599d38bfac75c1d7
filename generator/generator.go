package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultTone is used when the caller leaves the tone blank.
const DefaultTone = "professional"

const promptTemplate = "You are an expert LinkedIn copywriter. Your goal is to create an engaging post." +
	"\n\n" +
	"Write a LinkedIn post for a person whose professional role is '%s'." +
	" The post should be about the topic: '%s'." +
	" The tone of the post must be %s." +
	"\n\n" +
	"Please include 3-5 relevant hashtags in your response."

// Generator produces LinkedIn post copy through the Gemini API.
// The client is created once at startup and shared across requests.
type Generator struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is blank: set GEMINI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Generator{client: client, model: model}, nil
}

// BuildPrompt renders the copywriter instruction for the given inputs.
// A blank tone falls back to DefaultTone.
func BuildPrompt(role, topic, tone string) string {
	if tone == "" {
		tone = DefaultTone
	}
	return fmt.Sprintf(promptTemplate, role, topic, tone)
}

// GeneratePost asks the model for post text and returns its raw response.
// Failures propagate to the caller; there is no retry here.
func (g *Generator) GeneratePost(ctx context.Context, role, topic, tone string) (string, error) {
	result, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(BuildPrompt(role, topic, tone)),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return result.Text(), nil
}
