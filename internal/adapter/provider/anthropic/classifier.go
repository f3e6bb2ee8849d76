// Package anthropic adapts the Anthropic vision API to the classification
// gateway contract: image bytes in, a normalized classification out. It has
// no side effects beyond the provider call and never touches storage.
package anthropic

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/fieldpost/backend/internal/config"
	"github.com/fieldpost/backend/internal/domain"
)

const systemPrompt = "You are a friendly nature guide who classifies landscapes, " +
	"plants, animals, and weather. Avoid brand names. Be concise."

const userPrompt = "Identify the natural scene. Return strict JSON with fields: " +
	"label (short name), description (1-2 sentences), tags (array of 3-6 lowercase words), " +
	"confidence (0-1). No markdown."

// Classifier sends captured images to Claude and parses the response.
type Classifier struct {
	client       anthropic.Client
	model        string
	maxTokens    int64
	retryBackoff time.Duration
	log          *slog.Logger
}

// NewClassifier creates a Classifier from ClassifierConfig.
// SDK-level retries are disabled: the gateway owns its single-retry policy.
func NewClassifier(cfg config.ClassifierConfig, logger *slog.Logger) *Classifier {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	)

	return &Classifier{
		client:       client,
		model:        cfg.Model,
		maxTokens:    cfg.MaxTokens,
		retryBackoff: cfg.RetryBackoff,
		log:          logger.With("adapter", "anthropic"),
	}
}

// Model returns the configured model identifier, for the health endpoint.
func (c *Classifier) Model() string {
	return c.model
}

// Classify validates the payload, calls the provider (retrying once on
// failure), and defensively parses the response into a normalized result.
// Returns domain.ErrValidation for non-image payloads and domain.ErrUpstream
// when the provider is unreachable after the retry or answers with something
// that is not a classification.
func (c *Classifier) Classify(ctx context.Context, data []byte, mime string) (*domain.Classification, error) {
	if len(data) == 0 {
		return nil, domain.NewValidationError("image", "image payload is empty")
	}
	if !strings.HasPrefix(mime, "image/") {
		return nil, domain.NewValidationError("image", fmt.Sprintf("unsupported content type %q", mime))
	}
	if sniffed := http.DetectContentType(data); !strings.HasPrefix(sniffed, "image/") {
		return nil, domain.NewValidationError("image", "payload does not look like an image")
	}

	msg, err := c.callWithRetry(ctx, data, mime)
	if err != nil {
		c.log.ErrorContext(ctx, "provider call failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, "provider call failed")
	}

	result, err := parseMessage(msg)
	if err != nil {
		c.log.ErrorContext(ctx, "unparsable provider response", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, "malformed provider response")
	}

	c.log.InfoContext(ctx, "image classified",
		slog.String("label", result.Label),
		slog.Int("tags", len(result.Tags)),
	)

	return result, nil
}

// callWithRetry performs the provider call with a single retry after a
// fixed backoff. Only transient failures are retried; a cancelled context
// or a definitive API rejection is not.
func (c *Classifier) callWithRetry(ctx context.Context, data []byte, mime string) (*anthropic.Message, error) {
	msg, err := c.call(ctx, data, mime)
	if err == nil {
		return msg, nil
	}
	if ctx.Err() != nil || !isRetryable(err) {
		return nil, err
	}

	c.log.WarnContext(ctx, "provider call retry", slog.String("reason", err.Error()))

	select {
	case <-time.After(c.retryBackoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return c.call(ctx, data, mime)
}

// isRetryable reports whether a provider error is worth one more attempt.
// Errors that never reached the API (transport failures) are; definitive
// API rejections such as bad requests or invalid credentials are not.
// Rate limits and server-side failures may clear by the next attempt.
func isRetryable(err error) bool {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return true
	}

	switch apiErr.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}

	return apiErr.StatusCode >= http.StatusInternalServerError
}

func (c *Classifier) call(ctx context.Context, data []byte, mime string) (*anthropic.Message, error) {
	b64 := base64.StdEncoding.EncodeToString(data)

	return c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mime, b64),
				anthropic.NewTextBlock(userPrompt),
			),
		},
	})
}
