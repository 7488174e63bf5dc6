package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// MaxTokens bounds every completion the bot requests.
const MaxTokens = 300

// Temperature is the OpenAI API default. The client library would otherwise
// send 0.
const Temperature = 1.0

// ErrNoCompletions is returned when the model answers with an empty choice list.
var ErrNoCompletions = errors.New("no completions returned from model")

// PartKind tells whether a Part carries text or an image reference.
type PartKind int

const (
	PartText PartKind = iota
	PartImageURL
)

// Part is one segment of a multi-part prompt.
type Part struct {
	Kind PartKind
	Text string
	URL  string
}

// Text returns a text prompt segment.
func Text(s string) Part {
	return Part{Kind: PartText, Text: s}
}

// ImageURL returns an image prompt segment pointing at url.
func ImageURL(url string) Part {
	return Part{Kind: PartImageURL, URL: url}
}

// Request is a single user turn sent to the model.
type Request struct {
	Model     string
	Parts     []Part
	MaxTokens int
}

// Response holds the candidate completions in the order the model returned them.
type Response struct {
	Completions []string
}

// First returns the first completion, or ErrNoCompletions.
func (r Response) First() (string, error) {
	if len(r.Completions) == 0 {
		return "", ErrNoCompletions
	}
	return r.Completions[0], nil
}

// Client sends a multi-part prompt to an inference API and returns its completions.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

// OpenAIClient implements Client using the OpenAI-compatible API.
type OpenAIClient struct {
	client llms.Model
}

// NewOpenAIClient creates a new OpenAI-compatible client.
func NewOpenAIClient(apiKey, baseURL, model string) (*OpenAIClient, error) {
	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &OpenAIClient{client: client}, nil
}

// Complete sends req as one human message and collects every returned choice.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (Response, error) {
	parts := make([]llms.ContentPart, 0, len(req.Parts))
	for _, p := range req.Parts {
		switch p.Kind {
		case PartText:
			parts = append(parts, llms.TextPart(p.Text))
		case PartImageURL:
			parts = append(parts, llms.ImageURLPart(p.URL))
		}
	}

	msgs := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: parts,
		},
	}

	opts := []llms.CallOption{
		llms.WithTemperature(Temperature),
	}
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}
	if req.MaxTokens > 0 {
		// Older OpenAI-compatible servers only read max_tokens.
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens), openai.WithLegacyMaxTokensField())
	}

	resp, err := c.client.GenerateContent(ctx, msgs, opts...)
	if err != nil {
		return Response{}, fmt.Errorf("failed to generate content: %w", err)
	}

	result := Response{Completions: make([]string, 0, len(resp.Choices))}
	for _, choice := range resp.Choices {
		result.Completions = append(result.Completions, choice.Content)
	}

	return result, nil
}
