package responder

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/akanupam/jharkhand-yatra/app/observability/metrics"
	"github.com/akanupam/jharkhand-yatra/internal/types"
)

// extract obtains the structured parameter set for the query. It never
// fails: the worst case is the schema's all-defaults ParamSet. Tiers:
// model JSON reply, then per-domain keyword heuristics over the raw user
// text, then the pre-declared defaults.
func (r *Responder) extract(ctx context.Context, text string) types.ParamSet {
	ctx, span := otel.Tracer("Responder").Start(ctx, "Extract", attributeIntent(r.cfg.Intent))
	defer span.End()

	params := r.cfg.Schema.Defaults()
	if r.cfg.ExtractionPrompt == nil || len(r.cfg.Schema.Fields) == 0 {
		span.SetStatus(codes.Ok, "No extraction schema")
		return params
	}

	metrics.Get().RecordModelCall(ctx, "extract")
	reply, err := r.gateway.Generate(ctx, r.cfg.ExtractionPrompt(text))
	if err != nil {
		r.logger.WarnContext(ctx, "Parameter extraction call failed, using heuristics", slog.Any("error", err))
		metrics.Get().RecordModelFailure(ctx, "extract", "call_failed")
		r.runHeuristics(ctx, text, params)
		span.SetStatus(codes.Ok, "Heuristic fallback")
		return params
	}

	if !overlayJSON(reply, r.cfg.Schema, params) {
		r.logger.WarnContext(ctx, "Model reply carried no parseable JSON object, using heuristics")
		metrics.Get().RecordModelFailure(ctx, "extract", "malformed_output")
		r.runHeuristics(ctx, text, params)
		span.SetStatus(codes.Ok, "Heuristic fallback")
		return params
	}

	span.SetStatus(codes.Ok, "Parameters extracted")
	return params
}

func (r *Responder) runHeuristics(ctx context.Context, text string, params types.ParamSet) {
	metrics.Get().RecordFallback(ctx, "extract_heuristics")
	if r.cfg.Heuristics != nil {
		r.cfg.Heuristics(text, params)
	}
}

// overlayJSON finds the first brace-delimited block in the reply, parses
// it, and overlays every recognized field whose value is neither JSON null
// nor the literal string "null" onto the defaults. Returns false when no
// usable JSON object was found. This is best-effort by design: a reply
// holding several JSON objects yields one invalid greedy block and falls
// through to heuristics.
func overlayJSON(reply string, schema types.Schema, params types.ParamSet) bool {
	blob := extractJSONBlock(reply)
	if blob == "" {
		return false
	}

	var extracted map[string]any
	if err := json.Unmarshal([]byte(blob), &extracted); err != nil {
		return false
	}

	for name, value := range extracted {
		field, ok := schema.Find(name)
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString && s == "null" {
			continue
		}

		switch field.Kind {
		case types.FieldString:
			if s, isString := value.(string); isString {
				params[name] = s
			}
		case types.FieldInt:
			if f, isFloat := value.(float64); isFloat {
				params[name] = int(f)
			}
		case types.FieldStringList:
			if list := (types.ParamSet{name: value}).StringList(name); len(list) > 0 {
				params[name] = list
			}
		}
	}
	return true
}

// extractJSONBlock strips markdown code fences and returns the greedy
// first-to-last brace span of the reply.
func extractJSONBlock(reply string) string {
	reply = strings.TrimSpace(reply)

	if strings.HasPrefix(reply, "```json") {
		reply = strings.TrimPrefix(reply, "```json")
	} else if strings.HasPrefix(reply, "```") {
		reply = strings.TrimPrefix(reply, "```")
	}
	reply = strings.TrimSuffix(strings.TrimSpace(reply), "```")

	first := strings.Index(reply, "{")
	if first == -1 {
		return ""
	}
	last := strings.LastIndex(reply, "}")
	if last == -1 || last <= first {
		return ""
	}
	return strings.TrimSpace(reply[first : last+1])
}

func attributeIntent(intent types.Intent) trace.SpanStartOption {
	return trace.WithAttributes(attribute.String("intent", string(intent)))
}
