package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/OnslaughtSnail/vitae/kernel/export"
	"github.com/OnslaughtSnail/vitae/kernel/state"
)

const systemPrompt = `You phrase the next message of a resume-building assistant.
You are given a JSON directive describing exactly what to ask or announce.
Write one short, friendly message in the requested language that does exactly
what the directive says. Never invent questions, never skip ahead, never
mention the directive itself.`

// llmUserPrompt packs the directive and the data the message may reference
// into the generation request.
func llmUserPrompt(d Directive, data state.ResumeData, lang string) (string, error) {
	payload := struct {
		Language   string    `json:"language"`
		Directive  Directive `json:"directive"`
		ReviewBody string    `json:"review_body,omitempty"`
	}{
		Language:  lang,
		Directive: d,
	}
	if d.Review {
		payload.ReviewBody = export.Markdown(data, lang)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("render: marshal directive: %w", err)
	}
	return string(raw), nil
}

func cleanGenerated(text string) string {
	return strings.TrimSpace(text)
}
