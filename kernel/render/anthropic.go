package render

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/OnslaughtSnail/vitae/kernel/state"
	clog "github.com/OnslaughtSnail/vitae/pkg/log"
)

// Anthropic phrases prompts through the Claude API, falling back to the
// static templates when generation fails or comes back empty.
type Anthropic struct {
	client   anthropic.Client
	model    string
	fallback *Template
}

func NewAnthropic(apiKey, model string, fallback *Template) *Anthropic {
	return &Anthropic{
		client:   anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:    model,
		fallback: fallback,
	}
}

func (r *Anthropic) Render(ctx context.Context, d Directive, data state.ResumeData, lang string) (string, error) {
	user, err := llmUserPrompt(d, data, lang)
	if err != nil {
		return r.fallback.Render(ctx, d, data, lang)
	}
	msg, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(r.model),
		MaxTokens: 400,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		clog.Warn("anthropic render failed, using template", "error", err)
		return r.fallback.Render(ctx, d, data, lang)
	}
	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text = cleanGenerated(text); text == "" {
		return r.fallback.Render(ctx, d, data, lang)
	}
	return text, nil
}
