// Package reasoner wraps the external reasoning service behind a retrying
// client and a line-oriented response parser. The service returns free text;
// parsing defends against every grammar violation with sentinel substitution
// so that the orchestrator's fallback can close the gaps.
package reasoner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	genai "google.golang.org/genai"
)

// Completer issues one completion request to the reasoning service. The
// orchestrator depends on this interface; tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client is the production Completer backed by the genai SDK.
type Client struct {
	cli         *genai.Client
	model       string
	maxAttempts int
	backoffUnit time.Duration
	callTimeout time.Duration
	logger      *slog.Logger
}

// New creates a Client from the reasoner configuration.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (*Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		cli:         cli,
		model:       cfg.Model,
		maxAttempts: cfg.MaxAttempts,
		backoffUnit: cfg.BackoffUnitDuration(),
		callTimeout: cfg.CallTimeoutDuration(),
		logger:      logger.With("system", "reasoner"),
	}, nil
}

// Complete sends the system and user instructions to the model and returns
// the raw response text. Attempts are bounded; before attempt k the client
// waits (k-1) backoff units. Exhausted attempts return ErrServiceFailure
// wrapping the final cause.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	var lastErr error

	for remaining := c.maxAttempts; remaining > 0; remaining-- {
		wait := time.Duration(c.maxAttempts-remaining) * c.backoffUnit
		if wait > 0 {
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %w", ErrServiceFailure, ctx.Err())
			}
		}

		text, err := c.generate(ctx, system, user)
		if err == nil {
			return text, nil
		}

		lastErr = err
		c.logger.Warn(
			"completion attempt failed",
			"remaining", remaining-1,
			"error", err,
		)
	}

	return "", fmt.Errorf("%w: %w", ErrServiceFailure, lastErr)
}

func (c *Client) generate(ctx context.Context, system, user string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.cli.Models.GenerateContent(callCtx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: user}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
