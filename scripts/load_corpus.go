package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	database "github.com/akanupam/jharkhand-yatra/app/db"
	"github.com/akanupam/jharkhand-yatra/config"
	generativeai "github.com/akanupam/jharkhand-yatra/internal/api/generativeai"
	"github.com/akanupam/jharkhand-yatra/internal/api/rag"
)

const (
	chunkWordSize    = 180
	embedConcurrency = 4
)

// Loads text files into the FAQ corpus: each file is split into word
// chunks, embedded, and inserted into document_chunks.
func main() {
	corpusDir := flag.String("dir", "corpus", "directory of .txt/.md files to load")
	flag.Parse()

	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	if err := database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	dbpool, err := pgxpool.New(ctx, dbConfig.ConnectionURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Connected to database successfully")

	client, err := generativeai.NewGeminiClient(ctx, cfg.Gemini.Model, cfg.Gemini.EmbeddingModel, logger)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	repo := rag.NewPostgresRepository(dbpool)

	files, err := corpusFiles(*corpusDir)
	if err != nil {
		log.Fatalf("Failed to list corpus files: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("No .txt or .md files found under %s", *corpusDir)
	}

	var totalChunks atomic.Int64
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Error("Failed to read corpus file", slog.String("path", path), slog.Any("error", err))
			continue
		}

		source := filepath.Base(path)
		chunks := splitChunks(string(raw), chunkWordSize)
		logger.Info("Loading corpus file", slog.String("source", source), slog.Int("chunks", len(chunks)))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(embedConcurrency)
		for i, chunk := range chunks {
			i, chunk := i, chunk
			g.Go(func() error {
				embedding, err := client.Embed(gctx, chunk)
				if err != nil {
					logger.Error("Failed to embed chunk",
						slog.String("source", source), slog.Int("chunk", i), slog.Any("error", err))
					return nil
				}
				if _, err := repo.InsertChunk(gctx, source, i, chunk, embedding); err != nil {
					logger.Error("Failed to insert chunk",
						slog.String("source", source), slog.Int("chunk", i), slog.Any("error", err))
					return nil
				}
				totalChunks.Add(1)
				return nil
			})
		}
		_ = g.Wait()
	}

	logger.Info("Corpus load completed", slog.Int64("chunks_inserted", totalChunks.Load()))
}

func corpusFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".txt", ".md":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// splitChunks cuts text into pieces of at most size words, breaking on
// paragraph boundaries where possible.
func splitChunks(text string, size int) []string {
	var chunks []string
	var current []string

	for _, paragraph := range strings.Split(text, "\n\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		if len(current)+len(words) > size && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
		}
		for len(words) > size {
			chunks = append(chunks, strings.Join(words[:size], " "))
			words = words[size:]
		}
		current = append(current, words...)
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}
