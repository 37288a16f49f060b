package responder

import (
	_ "embed"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/akanupam/jharkhand-yatra/internal/types"
)

//go:embed defaults/places.json
var defaultPlaces []byte

//go:embed defaults/locations.json
var defaultLocations []byte

//go:embed defaults/routes.json
var defaultRoutes []byte

//go:embed defaults/hotels.json
var defaultHotels []byte

//go:embed defaults/helplines.json
var defaultHelplines []byte

//go:embed defaults/festivals.json
var defaultFestivals []byte

var durationPattern = regexp.MustCompile(`(\d+)\s*day`)

var interestKeywords = map[string][]string{
	"nature":     {"nature", "natural", "scenic"},
	"wildlife":   {"wildlife", "animal", "safari", "tiger"},
	"religious":  {"religious", "temple", "spiritual"},
	"adventure":  {"adventure", "trek", "hiking"},
	"waterfalls": {"waterfall", "falls"},
	"culture":    {"culture", "cultural", "tribal"},
}

var knownCities = []string{"ranchi", "jamshedpur", "deoghar", "dhanbad", "bokaro"}

var knownStops = []string{
	"ranchi", "jamshedpur", "deoghar", "dhanbad", "bokaro",
	"netarhat", "betla", "hundru", "parasnath", "hazaribagh",
}

// TripPlannerConfig builds multi-day itineraries from the places store.
func TripPlannerConfig() DomainConfig {
	return DomainConfig{
		Intent:      types.IntentTripPlanner,
		DataFile:    "places.json",
		DefaultData: defaultPlaces,
		WordCeiling: 150,
		Schema: types.Schema{Fields: []types.Field{
			{Name: "duration_days", Kind: types.FieldInt, Default: 3},
			{Name: "interests", Kind: types.FieldStringList, Default: []string{"nature", "culture"}},
			{Name: "start_location", Kind: types.FieldString, Default: "Ranchi"},
			{Name: "budget_level", Kind: types.FieldString, Default: "moderate"},
			{Name: "travel_month", Kind: types.FieldString, Default: ""},
			{Name: "group_type", Kind: types.FieldString, Default: "family"},
		}},
		ExtractionPrompt: tripExtractionPrompt,
		Heuristics:       tripHeuristics,
		ComposePrompt:    tripComposePrompt,
		Header:           "🌟 **Your Personalized Jharkhand Adventure Awaits!** 🌟\n\n",
		Fallback:         tripFallback,
		Footer:           plannerFooter,
	}
}

// AreaSuggestConfig answers "what is near X" queries from the locations store.
func AreaSuggestConfig() DomainConfig {
	return DomainConfig{
		Intent:      types.IntentAreaSuggest,
		DataFile:    "locations.json",
		DefaultData: defaultLocations,
		WordCeiling: 100,
		Schema: types.Schema{Fields: []types.Field{
			{Name: "location", Kind: types.FieldString, Default: ""},
			{Name: "attraction_type", Kind: types.FieldString, Default: "any"},
			{Name: "distance_preference", Kind: types.FieldString, Default: "any"},
			{Name: "group_context", Kind: types.FieldString, Default: ""},
			{Name: "time_available", Kind: types.FieldString, Default: ""},
		}},
		ExtractionPrompt: areaExtractionPrompt,
		Heuristics:       areaHeuristics,
		ComposePrompt:    areaComposePrompt,
		Fallback:         areaFallback,
		Footer:           areaFooter,
	}
}

// RouteHelperConfig gives point-to-point transport guidance.
func RouteHelperConfig() DomainConfig {
	return DomainConfig{
		Intent:      types.IntentRouteHelper,
		DataFile:    "routes.json",
		DefaultData: defaultRoutes,
		WordCeiling: 100,
		Schema: types.Schema{Fields: []types.Field{
			{Name: "origin", Kind: types.FieldString, Default: ""},
			{Name: "destination", Kind: types.FieldString, Default: ""},
			{Name: "mode_preference", Kind: types.FieldString, Default: "any"},
			{Name: "time_preference", Kind: types.FieldString, Default: "any"},
			{Name: "budget_concern", Kind: types.FieldString, Default: "no"},
			{Name: "group_size", Kind: types.FieldString, Default: "solo"},
			{Name: "special_needs", Kind: types.FieldString, Default: "none"},
		}},
		ExtractionPrompt: routeExtractionPrompt,
		Heuristics:       routeHeuristics,
		PreCompose:       routeMissingDestination,
		ComposePrompt:    routeComposePrompt,
		Fallback:         routeFallback,
		Footer:           routeFooter,
	}
}

// HotelSuggestConfig recommends stays straight from the hotels store.
// Hotel queries carry no parameters worth a model round trip.
func HotelSuggestConfig() DomainConfig {
	return DomainConfig{
		Intent:         types.IntentHotelSuggest,
		DataFile:       "hotels.json",
		DefaultData:    defaultHotels,
		WordCeiling:    100,
		TruncateSuffix: " Book via MakeMyTrip/Booking.com",
		ComposePrompt:  hotelComposePrompt,
		Fallback:       hotelFallback,
		Footer:         hotelFooter,
	}
}

// HelplineConfig surfaces emergency and tourism contact numbers.
func HelplineConfig() DomainConfig {
	return DomainConfig{
		Intent:        types.IntentHelpline,
		DataFile:      "helplines.json",
		DefaultData:   defaultHelplines,
		WordCeiling:   100,
		ComposePrompt: helplineComposePrompt,
		Fallback:      helplineFallback,
		Footer:        helplineFooter,
	}
}

// FestivalsConfig covers festival and event queries.
func FestivalsConfig() DomainConfig {
	return DomainConfig{
		Intent:        types.IntentFestivals,
		DataFile:      "festivals.json",
		DefaultData:   defaultFestivals,
		WordCeiling:   100,
		ComposePrompt: festivalComposePrompt,
		Fallback:      festivalFallback,
		Footer:        festivalFooter,
	}
}

// AllConfigs returns every responder domain in routing order.
func AllConfigs() []DomainConfig {
	return []DomainConfig{
		TripPlannerConfig(),
		AreaSuggestConfig(),
		RouteHelperConfig(),
		HotelSuggestConfig(),
		HelplineConfig(),
		FestivalsConfig(),
	}
}

func tripHeuristics(text string, params types.ParamSet) {
	lower := strings.ToLower(text)

	if m := durationPattern.FindStringSubmatch(lower); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil && days > 0 {
			params["duration_days"] = days
		}
	}

	var interests []string
	for interest, keywords := range interestKeywords {
		if containsAny(lower, keywords) {
			interests = append(interests, interest)
		}
	}
	if len(interests) > 0 {
		sort.Strings(interests)
		params["interests"] = interests
	}
}

func areaHeuristics(text string, params types.ParamSet) {
	lower := strings.ToLower(text)
	for _, city := range knownCities {
		if strings.Contains(lower, city) {
			params["location"] = titleCase(city)
			return
		}
	}
}

func routeHeuristics(text string, params types.ParamSet) {
	lower := strings.ToLower(text)
	var found []string
	for _, stop := range knownStops {
		if strings.Contains(lower, stop) {
			found = append(found, titleCase(stop))
		}
	}
	if len(found) >= 2 {
		params["origin"] = found[0]
		params["destination"] = found[1]
	} else if len(found) == 1 {
		params["destination"] = found[0]
	}
}
