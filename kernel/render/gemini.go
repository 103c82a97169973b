package render

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/OnslaughtSnail/vitae/kernel/state"
	clog "github.com/OnslaughtSnail/vitae/pkg/log"
)

// Gemini phrases prompts through the Gemini API with template fallback.
type Gemini struct {
	client   *genai.Client
	model    string
	fallback *Template
}

func NewGemini(ctx context.Context, apiKey, model string, fallback *Template) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, fallback: fallback}, nil
}

func (r *Gemini) Render(ctx context.Context, d Directive, data state.ResumeData, lang string) (string, error) {
	user, err := llmUserPrompt(d, data, lang)
	if err != nil {
		return r.fallback.Render(ctx, d, data, lang)
	}
	resp, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	})
	if err != nil {
		clog.Warn("gemini render failed, using template", "error", err)
		return r.fallback.Render(ctx, d, data, lang)
	}
	if text := cleanGenerated(resp.Text()); text != "" {
		return text, nil
	}
	return r.fallback.Render(ctx, d, data, lang)
}
