package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akanupam/jharkhand-yatra/internal/api/generativeai"
	"github.com/akanupam/jharkhand-yatra/internal/api/intent"
	"github.com/akanupam/jharkhand-yatra/internal/api/responder"
	"github.com/akanupam/jharkhand-yatra/internal/types"
)

type fixedClassifier struct {
	intent      types.Intent
	explanation string
}

func (f *fixedClassifier) Classify(context.Context, string) types.Intent { return f.intent }
func (f *fixedClassifier) ExplainOutOfDomain(context.Context, string) string {
	return f.explanation
}

type fixedFAQ struct {
	answer string
	err    error
}

func (f *fixedFAQ) Answer(context.Context, string) (string, error) { return f.answer, f.err }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testResponders(t *testing.T, gateway generativeai.Gateway) map[types.Intent]*responder.Responder {
	t.Helper()
	out := make(map[types.Intent]*responder.Responder)
	for _, cfg := range responder.AllConfigs() {
		cfg := cfg
		out[cfg.Intent] = responder.NewResponder(&cfg, gateway, t.TempDir(), discardLogger())
	}
	return out
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := NewServiceImpl(&fixedClassifier{}, nil, nil, discardLogger())

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := svc.Chat(context.Background(), message)
		assert.ErrorIs(t, err, ErrEmptyMessage, "message %q", message)
	}
}

func TestChatRoutesToResponder(t *testing.T) {
	classifier := &fixedClassifier{intent: types.IntentHelpline}
	svc := NewServiceImpl(classifier, testResponders(t, &generativeai.Disabled{}), nil, discardLogger())

	reply, err := svc.Chat(context.Background(), "emergency numbers")

	require.NoError(t, err)
	assert.Contains(t, reply, "Police: 100")
}

func TestChatOutOfDomainUsesExplainer(t *testing.T) {
	classifier := &fixedClassifier{intent: types.IntentOutOfDomain, explanation: "Try Jharkhand instead!"}
	svc := NewServiceImpl(classifier, testResponders(t, &generativeai.Disabled{}), nil, discardLogger())

	reply, err := svc.Chat(context.Background(), "best beaches in goa")

	require.NoError(t, err)
	assert.Equal(t, "Try Jharkhand instead!", reply)
}

func TestChatFAQPath(t *testing.T) {
	classifier := &fixedClassifier{intent: types.IntentRAGFAQ}

	t.Run("answers from corpus", func(t *testing.T) {
		svc := NewServiceImpl(classifier, nil, &fixedFAQ{answer: "Sarhul falls in spring."}, discardLogger())
		reply, err := svc.Chat(context.Background(), "when is sarhul")
		require.NoError(t, err)
		assert.Equal(t, "Sarhul falls in spring.", reply)
	})

	t.Run("retrieval failure gets canned guidance", func(t *testing.T) {
		svc := NewServiceImpl(classifier, nil, &fixedFAQ{err: errors.New("db down")}, discardLogger())
		reply, err := svc.Chat(context.Background(), "when is sarhul")
		require.NoError(t, err)
		assert.Equal(t, faqFallback, reply)
	})

	t.Run("retrieval disabled gets canned guidance", func(t *testing.T) {
		svc := NewServiceImpl(classifier, nil, nil, discardLogger())
		reply, err := svc.Chat(context.Background(), "when is sarhul")
		require.NoError(t, err)
		assert.Equal(t, faqFallback, reply)
	})
}

func TestChatUnknownIntentGetsFixedReply(t *testing.T) {
	classifier := &fixedClassifier{intent: types.IntentFestivals}
	svc := NewServiceImpl(classifier, map[types.Intent]*responder.Responder{}, nil, discardLogger())

	reply, err := svc.Chat(context.Background(), "sarhul dates")

	require.NoError(t, err)
	assert.Equal(t, unknownIntentReply, reply)
}

// Full pipeline with the model unreachable: keyword classification, then
// heuristic extraction, then the canned composition tier.
func TestChatEndToEndWithoutModelAccess(t *testing.T) {
	gateway := &generativeai.Disabled{}
	classifier := intent.NewServiceImpl(gateway, discardLogger())
	svc := NewServiceImpl(classifier, testResponders(t, gateway), nil, discardLogger())

	reply, err := svc.Chat(context.Background(), "What is near Ranchi for families?")

	require.NoError(t, err)
	assert.Contains(t, reply, "Exploring Ranchi")
	assert.Contains(t, reply, "Tourism Helpline: 1800-123-4567")
}
