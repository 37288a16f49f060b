package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	generativeai "github.com/akanupam/jharkhand-yatra/internal/api/generativeai"
)

var _ Service = (*ServiceImpl)(nil)

// Service answers free-form questions grounded on the embedded FAQ corpus.
// Unlike the intent and responder services, Answer returns errors: the
// dispatcher owns the fallback boundary for this path.
type Service interface {
	Answer(ctx context.Context, question string) (string, error)
}

type ServiceImpl struct {
	gateway  generativeai.Gateway
	embedder generativeai.Embedder
	repo     Repository
	topK     int
	logger   *slog.Logger
}

func NewServiceImpl(gateway generativeai.Gateway, embedder generativeai.Embedder, repo Repository, topK int, logger *slog.Logger) *ServiceImpl {
	if topK <= 0 {
		topK = 4
	}
	return &ServiceImpl{
		gateway:  gateway,
		embedder: embedder,
		repo:     repo,
		topK:     topK,
		logger:   logger,
	}
}

// Answer embeds the question, retrieves the nearest corpus chunks, and has
// the model answer strictly from them.
func (s *ServiceImpl) Answer(ctx context.Context, question string) (string, error) {
	ctx, span := otel.Tracer("RagService").Start(ctx, "Answer")
	defer span.End()

	embedding, err := s.embedder.Embed(ctx, question)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Embedding failed")
		return "", fmt.Errorf("embedding question: %w", err)
	}

	chunks, err := s.repo.FindSimilarChunks(ctx, embedding, s.topK)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Retrieval failed")
		return "", fmt.Errorf("retrieving corpus chunks: %w", err)
	}
	span.SetAttributes(attribute.Int("chunks.found", len(chunks)))
	if len(chunks) == 0 {
		span.SetStatus(codes.Error, "Empty corpus")
		return "", fmt.Errorf("no corpus chunks available")
	}

	var contexts []string
	for _, c := range chunks {
		contexts = append(contexts, c.Content)
	}

	answer, err := s.gateway.Generate(ctx, groundedPrompt(question, contexts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generation failed")
		return "", fmt.Errorf("generating grounded answer: %w", err)
	}

	span.SetStatus(codes.Ok, "Question answered")
	return strings.TrimSpace(answer), nil
}

func groundedPrompt(question string, contexts []string) string {
	return fmt.Sprintf(`You are a Jharkhand tourism assistant. Answer the question using ONLY
the context below. If the context does not contain the answer, say you
don't have that information and suggest calling the tourism helpline
1800-123-4567.

Context:
%s

Question: %s

Answer in under 100 words, friendly and practical.`,
		strings.Join(contexts, "\n---\n"), question)
}
