package responder

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/akanupam/jharkhand-yatra/app/observability/metrics"
	"github.com/akanupam/jharkhand-yatra/internal/types"
)

// compose produces the final natural-language reply. All responses,
// grounded or canned, end with the domain's deterministic footer; only the
// model-produced portion is subject to the word ceiling.
func (r *Responder) compose(ctx context.Context, query string, params types.ParamSet) string {
	ctx, span := otel.Tracer("Responder").Start(ctx, "Compose", attributeIntent(r.cfg.Intent))
	defer span.End()

	if r.cfg.PreCompose != nil {
		if text, ok := r.cfg.PreCompose(params); ok {
			span.SetStatus(codes.Ok, "Deterministic pre-compose")
			return text + r.cfg.Footer
		}
	}

	prompt := r.cfg.ComposePrompt(query, params, r.store)

	metrics.Get().RecordModelCall(ctx, "compose")
	reply, err := r.gateway.Generate(ctx, prompt)
	if err != nil {
		r.logger.WarnContext(ctx, "Composition call failed, using canned response", slog.Any("error", err))
		metrics.Get().RecordModelFailure(ctx, "compose", "call_failed")
		metrics.Get().RecordFallback(ctx, "compose_canned")
		span.SetStatus(codes.Ok, "Canned fallback")
		return r.cfg.Fallback(query, params, r.store) + r.cfg.Footer
	}

	reply = enforceWordCeiling(strings.TrimSpace(reply), r.cfg.WordCeiling, r.cfg.TruncateSuffix)
	span.SetStatus(codes.Ok, "Response composed")
	return r.cfg.Header + reply + r.cfg.Footer
}

// enforceWordCeiling truncates text to ceiling-5 words plus an ellipsis
// (and the domain suffix) when it exceeds the ceiling.
func enforceWordCeiling(text string, ceiling int, suffix string) string {
	if ceiling <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) <= ceiling {
		return text
	}
	return strings.Join(words[:ceiling-5], " ") + "..." + suffix
}

// titleCase capitalizes the first letter of each space-separated word.
// Location names here are plain ASCII, so no locale handling is needed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
