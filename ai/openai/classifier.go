// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/poiesic/reviewlens/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// tokenizerEncoding is used for deterministic input truncation. The encoding
// only bounds input length; it does not have to match the backend's own
// tokenizer exactly.
const tokenizerEncoding = "cl100k_base"

// SentimentClassifier implements ai.SentimentClassifier using OpenAI-compatible
// chat APIs with JSON-mode responses.
type SentimentClassifier struct {
	client    llms.Model
	maxTokens int
	logger    *slog.Logger

	tokenizerOnce sync.Once
	tokenizer     *tiktoken.Tiktoken
	tokenizerErr  error
}

// sentimentResponse matches the JSON structure expected from the model.
type sentimentResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// newSentimentClassifier is an internal constructor that returns the concrete
// type. Used by Provider to manage the instance.
func newSentimentClassifier(config *ai.Config) (*SentimentClassifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/classification
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrModelUnavailable, err)
	}

	return &SentimentClassifier{
		client:    client,
		maxTokens: config.MaxClassifierTokens,
		logger:    slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewSentimentClassifier creates a new sentiment classifier using the provided
// configuration.
//
// Returns ai.SentimentClassifier interface to enforce abstraction.
func NewSentimentClassifier(config *ai.Config) (ai.SentimentClassifier, error) {
	return newSentimentClassifier(config)
}

// Classify analyzes text and returns its sentiment.
// Empty or whitespace-only input yields a neutral result without a model call.
// Input beyond the context window is truncated to the leading tokens.
func (c *SentimentClassifier) Classify(ctx context.Context, text string) (ai.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return ai.Sentiment{Label: ai.LabelNeutral, Confidence: 0}, nil
	}

	text, err := c.truncate(text)
	if err != nil {
		return ai.Sentiment{}, err
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(sentimentSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result sentimentResponse
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			c.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return ai.Sentiment{}, err
		}

		if len(response.Choices) < 1 {
			lastErr = fmt.Errorf("%w: no choices returned", ai.ErrMalformedOutput)
			continue
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			c.logger.Warn("error parsing classifier response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		sentiment, err := normalizeResponse(result)
		if err != nil {
			lastErr = err
			c.logger.Warn("classifier returned invalid sentiment",
				"attempt", attempt+1,
				"label", result.Label,
				"err", err)
			continue
		}

		return sentiment, nil
	}

	c.logger.Error("failed to obtain valid classifier response after retries", "err", lastErr)
	return ai.Sentiment{}, fmt.Errorf("%w: %w", ai.ErrMalformedOutput, lastErr)
}

// truncate bounds the input to the classifier's context window, keeping the
// leading tokens.
func (c *SentimentClassifier) truncate(text string) (string, error) {
	c.tokenizerOnce.Do(func() {
		c.tokenizer, c.tokenizerErr = tiktoken.GetEncoding(tokenizerEncoding)
	})
	if c.tokenizerErr != nil {
		return "", fmt.Errorf("%w: tokenizer: %w", ai.ErrModelUnavailable, c.tokenizerErr)
	}

	tokens := c.tokenizer.Encode(text, nil, nil)
	if len(tokens) <= c.maxTokens {
		return text, nil
	}

	truncated := c.tokenizer.Decode(tokens[:c.maxTokens])
	c.logger.Debug("truncated classifier input", "tokens", len(tokens), "max", c.maxTokens)
	return truncated, nil
}

// normalizeResponse validates the model output and maps it to an ai.Sentiment.
func normalizeResponse(r sentimentResponse) (ai.Sentiment, error) {
	label := strings.ToUpper(strings.TrimSpace(r.Label))
	switch label {
	case ai.LabelPositive, ai.LabelNegative, ai.LabelNeutral:
	default:
		return ai.Sentiment{}, fmt.Errorf("unknown label %q", r.Label)
	}

	confidence := r.Confidence
	if confidence < 0 || confidence > 1 {
		return ai.Sentiment{}, fmt.Errorf("confidence %v out of range", r.Confidence)
	}

	return ai.Sentiment{Label: label, Confidence: confidence}, nil
}
