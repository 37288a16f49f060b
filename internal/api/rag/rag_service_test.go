package rag

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akanupam/jharkhand-yatra/internal/types"
)

type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return f.vector, f.err
}

type fakeGateway struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGateway) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

type fakeRepo struct {
	chunks []types.DocumentChunk
	err    error
	limit  int
}

func (f *fakeRepo) FindSimilarChunks(_ context.Context, _ []float32, limit int) ([]types.DocumentChunk, error) {
	f.limit = limit
	return f.chunks, f.err
}

func (f *fakeRepo) InsertChunk(context.Context, string, int, string, []float32) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not implemented")
}

func ragLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnswerGroundsOnRetrievedChunks(t *testing.T) {
	gw := &fakeGateway{reply: "Hundru Falls is about 45 km from Ranchi."}
	repo := &fakeRepo{chunks: []types.DocumentChunk{
		{Content: "Hundru Falls is 45 km from Ranchi city."},
		{Content: "Best visited after the monsoon."},
	}}
	svc := NewServiceImpl(gw, &fakeEmbedder{vector: []float32{0.1}}, repo, 4, ragLogger())

	answer, err := svc.Answer(context.Background(), "How far is Hundru Falls?")

	require.NoError(t, err)
	assert.Equal(t, "Hundru Falls is about 45 km from Ranchi.", answer)
	assert.Equal(t, 4, repo.limit)
	assert.Contains(t, gw.prompt, "Hundru Falls is 45 km from Ranchi city.")
	assert.Contains(t, gw.prompt, "How far is Hundru Falls?")
}

func TestAnswerPropagatesEmbeddingFailure(t *testing.T) {
	svc := NewServiceImpl(&fakeGateway{}, &fakeEmbedder{err: errors.New("no key")}, &fakeRepo{}, 4, ragLogger())

	_, err := svc.Answer(context.Background(), "anything")
	assert.ErrorContains(t, err, "embedding question")
}

func TestAnswerPropagatesRetrievalFailure(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}
	svc := NewServiceImpl(&fakeGateway{}, &fakeEmbedder{vector: []float32{1}}, repo, 4, ragLogger())

	_, err := svc.Answer(context.Background(), "anything")
	assert.ErrorContains(t, err, "retrieving corpus chunks")
}

func TestAnswerFailsOnEmptyCorpus(t *testing.T) {
	svc := NewServiceImpl(&fakeGateway{}, &fakeEmbedder{vector: []float32{1}}, &fakeRepo{}, 4, ragLogger())

	_, err := svc.Answer(context.Background(), "anything")
	assert.ErrorContains(t, err, "no corpus chunks")
}

func TestNewServiceImplDefaultsTopK(t *testing.T) {
	repo := &fakeRepo{chunks: []types.DocumentChunk{{Content: "x"}}}
	svc := NewServiceImpl(&fakeGateway{reply: "ok"}, &fakeEmbedder{vector: []float32{1}}, repo, 0, ragLogger())

	_, err := svc.Answer(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, 4, repo.limit)
}
