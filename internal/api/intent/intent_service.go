package intent

import (
	"context"
	"log/slog"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/akanupam/jharkhand-yatra/app/observability/metrics"
	generativeai "github.com/akanupam/jharkhand-yatra/internal/api/generativeai"
	"github.com/akanupam/jharkhand-yatra/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service classifies free text into an intent and produces redirect
// messages for out-of-domain queries. Classify never fails: when the model
// is unavailable it runs entirely on the keyword fallback.
type Service interface {
	Classify(ctx context.Context, text string) types.Intent
	ExplainOutOfDomain(ctx context.Context, query string) string
}

// Place-name tables driving the keyword fallback. The non-Jharkhand check
// has priority over every intent keyword group.
var nonJharkhandPlaces = []string{
	"paris", "london", "new york", "mumbai", "delhi",
	"bangalore", "chennai", "goa", "kerala", "kashmir",
}

var jharkhandPlaces = []string{
	"ranchi", "jamshedpur", "deoghar", "dhanbad", "bokaro",
	"netarhat", "betla", "hundru", "jonha", "jharkhand",
}

var (
	planningKeywords  = []string{"plan", "itinerary", "trip", "tour", "days"}
	proximityKeywords = []string{"near", "nearby", "around", "close"}
	transportKeywords = []string{"reach", "route", "distance", "how to get"}
	hotelKeywords     = []string{"hotel", "stay", "accommodation"}
	helplineKeywords  = []string{"helpline", "emergency", "contact"}
	festivalKeywords  = []string{"festival", "event", "mela"}
)

const outOfDomainFallback = "I specialize in Jharkhand tourism and can only help with destinations within Jharkhand. " +
	"However, Jharkhand has amazing attractions like Hundru Falls, Betla National Park, " +
	"and the spiritual city of Deoghar. Would you like to explore these instead?"

type ServiceImpl struct {
	gateway generativeai.Gateway
	cache   *cache.Cache
	logger  *slog.Logger
}

// NewServiceImpl creates the intent router. Out-of-domain explanations are
// cached per query so repeated off-topic probes don't burn model quota.
func NewServiceImpl(gateway generativeai.Gateway, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		gateway: gateway,
		cache:   cache.New(1*time.Hour, 10*time.Minute),
		logger:  logger,
	}
}

// Classify determines the intent of the user's message. The model path is
// tried first; any failure or unrecognized label drops to the keyword
// classifier, which needs no model access at all.
func (s *ServiceImpl) Classify(ctx context.Context, text string) types.Intent {
	ctx, span := otel.Tracer("IntentService").Start(ctx, "Classify", trace.WithAttributes(
		attribute.Int("text.length", len(text)),
	))
	defer span.End()

	metrics.Get().RecordModelCall(ctx, "classify")
	reply, err := s.gateway.Generate(ctx, getClassificationPrompt(text))
	if err != nil {
		s.logger.WarnContext(ctx, "Model classification failed, using keyword fallback", slog.Any("error", err))
		metrics.Get().RecordModelFailure(ctx, "classify", "call_failed")
		metrics.Get().RecordFallback(ctx, "intent_keyword")
		span.SetStatus(codes.Ok, "Keyword fallback")
		return s.recordIntent(ctx, s.fallbackClassify(text), "keyword")
	}

	label := strings.ToUpper(strings.TrimSpace(reply))
	intent, ok := types.ParseIntent(label)
	if !ok {
		s.logger.WarnContext(ctx, "Model returned unrecognized intent label, using keyword fallback",
			slog.String("label", label))
		metrics.Get().RecordModelFailure(ctx, "classify", "unrecognized_label")
		metrics.Get().RecordFallback(ctx, "intent_keyword")
		span.SetStatus(codes.Ok, "Keyword fallback")
		return s.recordIntent(ctx, s.fallbackClassify(text), "keyword")
	}

	span.SetAttributes(attribute.String("intent", string(intent)))
	span.SetStatus(codes.Ok, "Classified")
	return s.recordIntent(ctx, intent, "model")
}

func (s *ServiceImpl) recordIntent(ctx context.Context, intent types.Intent, path string) types.Intent {
	metrics.Get().RecordIntent(ctx, string(intent), path)
	return intent
}

// fallbackClassify is the deterministic keyword classifier. It errs toward
// answering rather than refusing, except when a competing place name is
// explicit. Note the gating is uneven on purpose: HELPLINE fires without a
// Jharkhand place match while most other intents require one; this mirrors
// the behavior the service has always had.
func (s *ServiceImpl) fallbackClassify(text string) types.Intent {
	t := strings.ToLower(text)

	hasNonJharkhand := containsAny(t, nonJharkhandPlaces)
	hasJharkhand := containsAny(t, jharkhandPlaces)

	switch {
	case hasNonJharkhand:
		return types.IntentOutOfDomain
	case containsAny(t, planningKeywords):
		if hasJharkhand || !hasNonJharkhand {
			return types.IntentTripPlanner
		}
		return types.IntentOutOfDomain
	case containsAny(t, proximityKeywords):
		if hasJharkhand {
			return types.IntentAreaSuggest
		}
		return types.IntentOutOfDomain
	case containsAny(t, transportKeywords):
		if hasJharkhand {
			return types.IntentRouteHelper
		}
		return types.IntentOutOfDomain
	case containsAny(t, hotelKeywords):
		if hasJharkhand {
			return types.IntentHotelSuggest
		}
		return types.IntentOutOfDomain
	case containsAny(t, helplineKeywords):
		return types.IntentHelpline
	case containsAny(t, festivalKeywords):
		if hasJharkhand {
			return types.IntentFestivals
		}
		return types.IntentOutOfDomain
	default:
		return types.IntentRAGFAQ
	}
}

// ExplainOutOfDomain produces a short redirecting message suggesting an
// in-domain analog. On any model failure the fixed canned paragraph is
// returned instead.
func (s *ServiceImpl) ExplainOutOfDomain(ctx context.Context, query string) string {
	ctx, span := otel.Tracer("IntentService").Start(ctx, "ExplainOutOfDomain")
	defer span.End()

	cacheKey := strings.ToLower(strings.TrimSpace(query))
	if cached, found := s.cache.Get(cacheKey); found {
		span.SetStatus(codes.Ok, "Cache hit")
		return cached.(string)
	}

	metrics.Get().RecordModelCall(ctx, "out_of_domain")
	reply, err := s.gateway.Generate(ctx, getOutOfDomainPrompt(query))
	if err != nil {
		s.logger.WarnContext(ctx, "Out-of-domain explanation failed, using canned text", slog.Any("error", err))
		metrics.Get().RecordModelFailure(ctx, "out_of_domain", "call_failed")
		metrics.Get().RecordFallback(ctx, "out_of_domain_canned")
		span.SetStatus(codes.Ok, "Canned fallback")
		return outOfDomainFallback
	}

	reply = strings.TrimSpace(reply)
	s.cache.Set(cacheKey, reply, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "Explanation generated")
	return reply
}

func containsAny(t string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
