package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/akanupam/jharkhand-yatra/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository is the persistence surface for the FAQ corpus: embedded text
// chunks with vector similarity search.
type Repository interface {
	FindSimilarChunks(ctx context.Context, embedding []float32, limit int) ([]types.DocumentChunk, error)
	InsertChunk(ctx context.Context, source string, chunkIndex int, content string, embedding []float32) (uuid.UUID, error)
}

// Querier is the subset of the pgx pool the repository needs. It is
// satisfied by *pgxpool.Pool and by pgxmock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	pool Querier
}

func NewPostgresRepository(pool Querier) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindSimilarChunks returns the limit chunks nearest to the query
// embedding by cosine distance, most similar first.
func (r *PostgresRepository) FindSimilarChunks(ctx context.Context, embedding []float32, limit int) ([]types.DocumentChunk, error) {
	ctx, span := otel.Tracer("RagRepository").Start(ctx, "FindSimilarChunks")
	defer span.End()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.pool.Query(ctx, `
        SELECT id, source, chunk_index, content,
               1 - (embedding <=> $1::vector) AS similarity
        FROM document_chunks
        ORDER BY embedding <=> $1::vector
        LIMIT $2`,
		vectorLiteral(embedding), limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Similarity query failed")
		return nil, fmt.Errorf("querying similar chunks: %w", err)
	}
	defer rows.Close()

	var chunks []types.DocumentChunk
	for rows.Next() {
		var c types.DocumentChunk
		if err := rows.Scan(&c.ID, &c.Source, &c.ChunkIndex, &c.Content, &c.Similarity); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Row scan failed")
			return nil, fmt.Errorf("scanning chunk row: %w", err)
		}
		chunks = append(chunks, c)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Row iteration failed")
		return nil, fmt.Errorf("iterating chunk rows: %w", err)
	}

	span.SetStatus(codes.Ok, "Chunks retrieved")
	return chunks, nil
}

// InsertChunk stores one embedded corpus chunk and returns its id.
func (r *PostgresRepository) InsertChunk(ctx context.Context, source string, chunkIndex int, content string, embedding []float32) (uuid.UUID, error) {
	ctx, span := otel.Tracer("RagRepository").Start(ctx, "InsertChunk")
	defer span.End()

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
        INSERT INTO document_chunks (source, chunk_index, content, embedding)
        VALUES ($1, $2, $3, $4::vector)
        RETURNING id`,
		source, chunkIndex, content, vectorLiteral(embedding)).Scan(&id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Insert failed")
		return uuid.Nil, fmt.Errorf("inserting chunk %s[%d]: %w", source, chunkIndex, err)
	}

	span.SetStatus(codes.Ok, "Chunk inserted")
	return id, nil
}

// vectorLiteral renders an embedding in pgvector's text input format.
func vectorLiteral(embedding []float32) string {
	parts := make([]string, len(embedding))
	for i, v := range embedding {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
