package responder

import (
	"context"
	"log/slog"
	"path/filepath"

	generativeai "github.com/akanupam/jharkhand-yatra/internal/api/generativeai"
	"github.com/akanupam/jharkhand-yatra/internal/types"
)

// DomainConfig parameterizes the generic extract/compose engine for one
// intent: extraction schema and defaults, knowledge file and built-in
// default, prompt templates, deterministic fallbacks, and the output
// format constraints. The six responders are six of these records, not six
// implementations.
type DomainConfig struct {
	Intent      types.Intent
	DataFile    string
	DefaultData []byte

	Schema      types.Schema
	WordCeiling int
	// TruncateSuffix is appended after the ellipsis when a reply is cut at
	// the word ceiling (hotels add their booking-channel note here).
	TruncateSuffix string
	// Header is prepended to successful model replies only.
	Header string
	// Footer is deterministic practical information appended to every
	// response, outside model control and exempt from the word ceiling.
	Footer string

	// ExtractionPrompt builds the JSON-only parameter extraction prompt.
	// Nil (or an empty schema) skips the extraction call entirely.
	ExtractionPrompt func(query string) string
	// Heuristics is the deterministic extraction fallback. It scans the
	// original user text and overwrites whatever defaults it can improve.
	Heuristics func(text string, params types.ParamSet)
	// PreCompose may short-circuit composition with a deterministic reply
	// (e.g. route guidance when no destination was found).
	PreCompose func(params types.ParamSet) (string, bool)
	// ComposePrompt builds the grounding prompt from the query, the
	// extracted parameters and the knowledge store.
	ComposePrompt func(query string, params types.ParamSet, store *Store) string
	// Fallback produces the canned response when composition fails.
	Fallback func(query string, params types.ParamSet, store *Store) string
}

// Responder runs the two-call pipeline for one domain. It never returns an
// error to its caller: every model failure lands on a deterministic tier.
type Responder struct {
	cfg     *DomainConfig
	gateway generativeai.Gateway
	store   *Store
	logger  *slog.Logger
}

// NewResponder loads the domain's knowledge and binds the engine to the
// gateway. The store load cannot fail; see LoadStore.
func NewResponder(cfg *DomainConfig, gateway generativeai.Gateway, dataDir string, logger *slog.Logger) *Responder {
	store := LoadStore(filepath.Join(dataDir, cfg.DataFile), cfg.DefaultData, logger)
	return &Responder{
		cfg:     cfg,
		gateway: gateway,
		store:   store,
		logger:  logger.With(slog.String("responder", string(cfg.Intent))),
	}
}

// Respond handles one user message end to end: extract parameters, then
// compose the grounded answer.
func (r *Responder) Respond(ctx context.Context, query string) string {
	params := r.extract(ctx, query)
	return r.compose(ctx, query, params)
}

// Store exposes the loaded knowledge base for tests and for the corpus
// loader; it is immutable.
func (r *Responder) Store() *Store {
	return r.store
}
