package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-embedding-001"

var sleep = time.Sleep

// Provider produces fixed-length embedding vectors for text.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// GeminiClient wraps the Google GenAI client for embedding production.
type GeminiClient struct {
	client     *genai.Client
	modelName  string
	maxRetries int
	logger     *zap.Logger
}

// NewGeminiClient creates a client configured for the Gemini API backend.
func NewGeminiClient(ctx context.Context, apiKey, model string, maxRetries int, logger *zap.Logger) (*GeminiClient, error) {
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
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &GeminiClient{
		client:     client,
		modelName:  model,
		maxRetries: maxRetries,
		logger:     logger,
	}, nil
}

// Embed returns the embedding vector for the given text, retrying
// transient failures with a linear backoff.
func (c *GeminiClient) Embed(ctx context.Context, text string) ([]float64, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("gemini client is not initialized")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text must not be empty")
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := waitFor(ctx, time.Duration(attempt)*time.Second); err != nil {
				return nil, err
			}
			if c.logger != nil {
				c.logger.Debug("retrying embedding request",
					zap.Int("attempt", attempt),
					zap.Error(lastErr),
				)
			}
		}

		resp, err := c.client.Models.EmbedContent(ctx, c.modelName, genai.Text(text), nil)
		if err != nil {
			lastErr = fmt.Errorf("embed content: %w", err)
			continue
		}
		if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
			lastErr = errors.New("gemini api returned empty embedding")
			continue
		}

		values := resp.Embeddings[0].Values
		vector := make([]float64, len(values))
		for i, v := range values {
			vector[i] = float64(v)
		}
		return vector, nil
	}

	return nil, lastErr
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
