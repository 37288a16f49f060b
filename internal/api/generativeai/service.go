package generativeai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

// Gateway is the single abstraction for "ask the generative model for
// text". Every model-dependent component takes it as a dependency so the
// pipeline can be exercised with no network access. A failure of any kind
// (transport, quota, safety block) surfaces as a plain error; callers treat
// every failure identically and fall back.
type Gateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder produces a vector embedding for a piece of text. Used by the
// retrieval collaborator, not by the core pipeline.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ErrGatewayDisabled is returned by the disabled gateway when no API key is
// configured. It is indistinguishable from any other model failure to the
// callers, which is the point.
var ErrGatewayDisabled = errors.New("generative model gateway is disabled")

// GeminiClient implements Gateway and Embedder over the Gemini API.
type GeminiClient struct {
	client         *genai.Client
	model          string
	embeddingModel string
	logger         *slog.Logger
}

var _ Gateway = (*GeminiClient)(nil)
var _ Embedder = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini-backed gateway. The API key comes from
// GOOGLE_GEMINI_API_KEY.
func NewGeminiClient(ctx context.Context, model, embeddingModel string, logger *slog.Logger) (*GeminiClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewGeminiClient")
	defer span.End()

	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	if apiKey == "" {
		err := fmt.Errorf("GOOGLE_GEMINI_API_KEY environment variable is not set")
		span.RecordError(err)
		span.SetStatus(codes.Error, "API key not set")
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, err
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &GeminiClient{
		client:         client,
		model:          model,
		embeddingModel: embeddingModel,
		logger:         logger,
	}, nil
}

// Generate sends the prompt and returns the model's text reply.
func (ai *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "Generate", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", ai.model),
	))
	defer span.End()

	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Content generation failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		err := fmt.Errorf("model returned an empty reply")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Empty reply")
		return "", err
	}

	span.SetStatus(codes.Ok, "Content generated")
	return text, nil
}

// Embed returns the embedding vector for the given text.
func (ai *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "Embed", trace.WithAttributes(
		attribute.Int("text.length", len(text)),
		attribute.String("model", ai.embeddingModel),
	))
	defer span.End()

	result, err := ai.client.Models.EmbedContent(ctx, ai.embeddingModel, genai.Text(text), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Embedding failed")
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		err := fmt.Errorf("model returned no embedding values")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Empty embedding")
		return nil, err
	}

	span.SetStatus(codes.Ok, "Embedding generated")
	return result.Embeddings[0].Values, nil
}

// Disabled is a Gateway/Embedder used when no API key is configured. Every
// call fails, which drives the whole pipeline down its deterministic
// fallback tiers instead of crashing it.
type Disabled struct{}

var _ Gateway = Disabled{}
var _ Embedder = Disabled{}

func (Disabled) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrGatewayDisabled
}

func (Disabled) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, ErrGatewayDisabled
}
