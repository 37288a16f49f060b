package types

// Intent is the category of a user request. It decides which responder
// handles the message.
type Intent string

const (
	IntentTripPlanner  Intent = "TRIP_PLANNER"
	IntentAreaSuggest  Intent = "AREA_SUGGEST"
	IntentRouteHelper  Intent = "ROUTE_HELPER"
	IntentHotelSuggest Intent = "HOTEL_SUGGEST"
	IntentHelpline     Intent = "HELPLINE"
	IntentFestivals    Intent = "FESTIVALS"
	IntentRAGFAQ       Intent = "RAG_FAQ"
	IntentOutOfDomain  Intent = "OUT_OF_DOMAIN"
)

// ValidIntents is the closed set of labels the classifier may produce.
var ValidIntents = []Intent{
	IntentTripPlanner,
	IntentAreaSuggest,
	IntentRouteHelper,
	IntentHotelSuggest,
	IntentHelpline,
	IntentFestivals,
	IntentRAGFAQ,
	IntentOutOfDomain,
}

// ParseIntent maps a trimmed, upper-cased model reply to an Intent.
func ParseIntent(s string) (Intent, bool) {
	for _, intent := range ValidIntents {
		if s == string(intent) {
			return intent, true
		}
	}
	return "", false
}

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply envelope.
type ChatResponse struct {
	Reply string `json:"reply"`
}
