package rewrite

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/softpen/tonerelay/internal/apperrors"
)

const (
	// Model is the fixed upstream model identifier.
	Model = "gpt-4o-mini"

	temperature         = 0.3
	maxCompletionTokens = 2048
)

// OpenAIRewriter implements Rewriter against the OpenAI chat completions
// API using a two-message payload (system instruction + user text).
type OpenAIRewriter struct {
	client openai.Client
}

// NewOpenAIRewriter creates a rewriter. A missing API key is a
// deployment fault, reported as a config-kind error.
func NewOpenAIRewriter(apiKey string, opts ...option.RequestOption) (*OpenAIRewriter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, apperrors.Config(errors.New("OPENAI_API_KEY is not set"))
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIRewriter{client: openai.NewClient(opts...)}, nil
}

// Rewrite sends the instruction and text upstream and extracts the first
// choice. Provider failures are classified as upstream errors; the raw
// provider body never reaches the returned safe message.
func (r *OpenAIRewriter) Rewrite(ctx context.Context, instruction, text string) (string, error) {
	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(instruction),
			openai.UserMessage(text),
		},
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(maxCompletionTokens),
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			log.Printf("❌ Upstream rewrite failed: status=%d", apierr.StatusCode)
			return "", apperrors.Upstream(fmt.Errorf("upstream returned status %d: %w", apierr.StatusCode, err))
		}
		log.Printf("❌ Upstream rewrite transport error: %v", err)
		return "", apperrors.Upstream(fmt.Errorf("upstream request failed: %w", err))
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.Upstream(errors.New("upstream returned no choices"))
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", apperrors.Upstream(errors.New("upstream returned empty text"))
	}
	return content, nil
}
