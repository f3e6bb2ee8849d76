package anthropic

import (
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/fieldpost/backend/internal/domain"
)

// providerResult is the JSON shape the prompt asks the model for. Everything
// except label is optional; unknown extra structure is ignored here and
// preserved in the raw payload.
type providerResult struct {
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Confidence  *float64 `json:"confidence"`
}

// parseMessage extracts the classification JSON from a provider message.
// Parsing is defensive: a missing confidence stays nil, but a response with
// no usable JSON, no label, or an out-of-range confidence is rejected whole.
func parseMessage(msg *anthropic.Message) (*domain.Classification, error) {
	if msg == nil {
		return nil, fmt.Errorf("empty provider message")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := sb.String()
	if text == "" {
		return nil, fmt.Errorf("provider message contains no text")
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var parsed providerResult
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("decode classification JSON: %w", err)
	}

	if strings.TrimSpace(parsed.Label) == "" {
		return nil, fmt.Errorf("classification has no label")
	}
	if parsed.Confidence != nil && (*parsed.Confidence < 0 || *parsed.Confidence > 1) {
		return nil, fmt.Errorf("confidence %v out of range [0,1]", *parsed.Confidence)
	}

	tags := parsed.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Classification{
		Label:       strings.TrimSpace(parsed.Label),
		Description: strings.TrimSpace(parsed.Description),
		Confidence:  parsed.Confidence,
		Tags:        tags,
		Raw:         json.RawMessage(msg.RawJSON()),
	}, nil
}

// extractJSON finds the first complete JSON object in a string. Models
// occasionally wrap the object in prose or markdown fences despite the
// prompt; everything outside the outermost braces is dropped.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
