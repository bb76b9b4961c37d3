package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"sevasetu/internal/core/services"
)

const defaultModel = "gemini-2.0-flash"

const assistantInstruction = "You are a helpful assistant for Indian government welfare schemes. " +
	"Answer questions about scheme eligibility, benefits, required documents and application steps. " +
	"Keep answers short and practical. Reply in the language tagged %q."

// GeminiClient implements the chat model port over the Google GenAI API
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// compile-time port check
var _ services.ChatModel = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini-backed chat model
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &GeminiClient{client: client, modelName: model}, nil
}

// GenerateReply answers a citizen's message, replaying the recent transcript
// as conversational context
func (g *GeminiClient) GenerateReply(ctx context.Context, message, language string, history []services.ChatTurn) (string, error) {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, assistantInstruction, language)
	prompt.WriteString("\n\n")
	for _, turn := range history {
		fmt.Fprintf(&prompt, "%s: %s\n", turn.Role, turn.Content)
	}
	fmt.Fprintf(&prompt, "user: %s", message)

	return g.generate(ctx, prompt.String())
}

// Translate converts text into the target language
func (g *GeminiClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf("Translate the following text to %s: %s", targetLanguage, text)
	return g.generate(ctx, prompt)
}

func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini client is not initialized")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}
