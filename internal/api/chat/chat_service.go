package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/akanupam/jharkhand-yatra/app/observability/metrics"
	"github.com/akanupam/jharkhand-yatra/internal/api/intent"
	"github.com/akanupam/jharkhand-yatra/internal/api/rag"
	"github.com/akanupam/jharkhand-yatra/internal/api/responder"
	"github.com/akanupam/jharkhand-yatra/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// ErrEmptyMessage rejects blank input before any classification work.
var ErrEmptyMessage = errors.New("message must not be empty")

const unknownIntentReply = "I'm sorry, I couldn't understand your request. " +
	"I can help with trip planning, nearby attractions, routes, hotels, helplines, " +
	"and festivals in Jharkhand."

const faqFallback = "I can help with questions about traveling in Jharkhand. " +
	"Ask me about destinations like Hundru Falls, Betla National Park, Netarhat, " +
	"or Deoghar, and I'll do my best. For anything urgent, the tourism helpline " +
	"is 1800-123-4567."

// Service is the single entry point for a chat turn: classify the message,
// hand it to the owning responder, and return the reply. It degrades but
// never fails once past input validation.
type Service interface {
	Chat(ctx context.Context, message string) (string, error)
}

type ServiceImpl struct {
	classifier intent.Service
	responders map[types.Intent]*responder.Responder
	faq        rag.Service
	logger     *slog.Logger
}

// NewServiceImpl wires the dispatcher. faq may be nil when retrieval is
// disabled; FAQ queries then get the canned guidance directly.
func NewServiceImpl(classifier intent.Service, responders map[types.Intent]*responder.Responder, faq rag.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		classifier: classifier,
		responders: responders,
		faq:        faq,
		logger:     logger,
	}
}

func (s *ServiceImpl) Chat(ctx context.Context, message string) (string, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "Chat")
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		span.SetStatus(codes.Error, "Empty message")
		return "", ErrEmptyMessage
	}

	start := time.Now()
	defer func() {
		metrics.Get().ChatDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}()
	metrics.Get().ChatRequestsTotal.Add(ctx, 1)

	detected := s.classifier.Classify(ctx, message)
	span.SetAttributes(attribute.String("intent", string(detected)))

	var reply string
	switch detected {
	case types.IntentOutOfDomain:
		reply = s.classifier.ExplainOutOfDomain(ctx, message)
	case types.IntentRAGFAQ:
		reply = s.answerFAQ(ctx, message)
	default:
		r, ok := s.responders[detected]
		if !ok {
			s.logger.WarnContext(ctx, "No responder registered for intent", slog.String("intent", string(detected)))
			span.SetStatus(codes.Ok, "Unknown intent")
			return unknownIntentReply, nil
		}
		reply = r.Respond(ctx, message)
	}

	span.SetStatus(codes.Ok, "Chat turn complete")
	return reply, nil
}

// answerFAQ is the fallback boundary for retrieval: any error from the
// corpus path becomes the canned guidance, never a failed turn.
func (s *ServiceImpl) answerFAQ(ctx context.Context, message string) string {
	if s.faq == nil {
		return faqFallback
	}
	answer, err := s.faq.Answer(ctx, message)
	if err != nil {
		s.logger.WarnContext(ctx, "FAQ retrieval failed, using canned guidance", slog.Any("error", err))
		metrics.Get().RecordFallback(ctx, "faq_canned")
		return faqFallback
	}
	return answer
}
