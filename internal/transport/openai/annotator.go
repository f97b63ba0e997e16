package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/lexmatch-io/lexmatch/internal/domain"
	"github.com/lexmatch-io/lexmatch/internal/metrics"
)

// systemPrompt instructs the model to return annotations in our wire format.
// Tags follow the Universal Dependencies POS inventory.
const systemPrompt = `You are a linguistic annotator. Given a text, return a JSON object with:
- "tokens": array of {"text", "lemma", "pos", "is_punct"} for every token in order. "lemma" is the lowercase dictionary form, "pos" is a Universal Dependencies tag (NOUN, VERB, ADJ, ADV, PRON, DET, ADP, AUX, CCONJ, NUM, PUNCT, X), "is_punct" is true for punctuation tokens.
- "chunks": array of {"text"} for every noun phrase, using the exact surface text.
Return only the JSON object, nothing else.`

// Annotator is an annotation provider using the OpenAI-compatible chat API.
type Annotator struct {
	client   *openai.Client
	model    string
	provider string
	logger   *zap.Logger
}

// Config holds the annotation provider settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
	Logger   *zap.Logger
}

// NewAnnotator creates an OpenAI-compatible annotation provider.
func NewAnnotator(cfg *Config) *Annotator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Annotator{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Annotate implements domain.Annotator via a chat completion with a JSON
// response format. Empty input short-circuits without an API call.
func (a *Annotator) Annotate(ctx context.Context, text string) (domain.AnnotatedDocument, error) {
	if text == "" {
		return domain.AnnotatedDocument{}, nil
	}

	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()

	resp, err := a.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.AnnotatorRequestsTotal.WithLabelValues(a.provider, "error").Inc()
		metrics.AnnotatorErrorsTotal.WithLabelValues(a.provider, "api_error").Inc()
		return domain.AnnotatedDocument{}, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.AnnotatorRequestsTotal.WithLabelValues(a.provider, "error").Inc()
		metrics.AnnotatorErrorsTotal.WithLabelValues(a.provider, "empty_response").Inc()
		return domain.AnnotatedDocument{}, fmt.Errorf("empty annotation response: %w", domain.ErrAnnotatorProviderError)
	}

	doc, err := parseAnnotation(resp.Choices[0].Message.Content)
	if err != nil {
		metrics.AnnotatorRequestsTotal.WithLabelValues(a.provider, "error").Inc()
		metrics.AnnotatorErrorsTotal.WithLabelValues(a.provider, "parse_error").Inc()
		return domain.AnnotatedDocument{}, err
	}

	metrics.AnnotatorRequestsTotal.WithLabelValues(a.provider, "success").Inc()
	metrics.AnnotatorRequestDuration.WithLabelValues(a.provider).Observe(duration.Seconds())

	return doc, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (a *Annotator) HealthCheck(ctx context.Context) error {
	if _, err := a.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseAnnotation decodes the model's JSON payload into a document.
func parseAnnotation(content string) (domain.AnnotatedDocument, error) {
	var doc domain.AnnotatedDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return domain.AnnotatedDocument{}, fmt.Errorf("parse annotation response: %v: %w",
			err, domain.ErrAnnotatorProviderError)
	}
	for i, tok := range doc.Tokens {
		if tok.POS == "" {
			doc.Tokens[i].POS = domain.POSOther
		}
	}
	return doc, nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrAnnotatorProviderError for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrAnnotatorProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("annotation API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("annotation API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("annotation API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("annotation request failed: %w", wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
