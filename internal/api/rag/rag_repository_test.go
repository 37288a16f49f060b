package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSimilarChunks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id1, id2 := uuid.New(), uuid.New()
	rows := pgxmock.NewRows([]string{"id", "source", "chunk_index", "content", "similarity"}).
		AddRow(id1, "faq.md", 0, "Hundru Falls is 45 km from Ranchi.", 0.92).
		AddRow(id2, "faq.md", 3, "Betla safaris run morning and afternoon.", 0.81)

	mock.ExpectQuery("SELECT id, source, chunk_index, content").
		WithArgs("[0.1,0.2]", 2).
		WillReturnRows(rows)

	repo := NewPostgresRepository(mock)
	chunks, err := repo.FindSimilarChunks(context.Background(), []float32{0.1, 0.2}, 2)

	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, id1, chunks[0].ID)
	assert.Equal(t, "faq.md", chunks[0].Source)
	assert.InDelta(t, 0.92, chunks[0].Similarity, 1e-9)
	assert.Equal(t, 3, chunks[1].ChunkIndex)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindSimilarChunksQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, source, chunk_index, content").
		WillReturnError(errors.New("connection refused"))

	repo := NewPostgresRepository(mock)
	_, err = repo.FindSimilarChunks(context.Background(), []float32{0.5}, 4)

	assert.ErrorContains(t, err, "querying similar chunks")
}

func TestInsertChunk(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	want := uuid.New()
	mock.ExpectQuery("INSERT INTO document_chunks").
		WithArgs("guide.md", 7, "Netarhat sunsets are best from Magnolia Point.", "[1,2,3]").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(want))

	repo := NewPostgresRepository(mock)
	got, err := repo.InsertChunk(context.Background(), "guide.md", 7,
		"Netarhat sunsets are best from Magnolia Point.", []float32{1, 2, 3})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVectorLiteral(t *testing.T) {
	assert.Equal(t, "[0.5,-1,2.25]", vectorLiteral([]float32{0.5, -1, 2.25}))
	assert.Equal(t, "[]", vectorLiteral(nil))
}
