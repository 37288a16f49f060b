package responder

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akanupam/jharkhand-yatra/internal/types"
)

func tripExtractionPrompt(query string) string {
	return fmt.Sprintf(`Analyze this Jharkhand tourism query and extract trip planning parameters.
Query: %q

Return a JSON-formatted response with these fields:
{
    "duration_days": <number or null>,
    "interests": [<list of: nature, wildlife, religious, adventure, waterfalls, culture>],
    "start_location": "<city name or null>",
    "budget_level": "<budget/moderate/luxury or null>",
    "travel_month": "<month name or null>",
    "group_type": "<solo/family/friends/couple or null>"
}

Example response:
{
    "duration_days": 3,
    "interests": ["nature", "wildlife"],
    "start_location": "Ranchi",
    "budget_level": "moderate",
    "travel_month": null,
    "group_type": "family"
}`, query)
}

func tripComposePrompt(query string, params types.ParamSet, store *Store) string {
	var data types.PlacesData
	_ = store.Decode(&data)

	duration := params.Int("duration_days", 3)
	interests := params.StringList("interests")
	selected := selectPlaces(data, interests, duration)

	var placeDetails []string
	for _, place := range selected {
		detail := fmt.Sprintf("%s (%s)", place.Name, orDefault(place.Location, "Jharkhand"))
		if len(place.Highlights) > 0 {
			n := len(place.Highlights)
			if n > 2 {
				n = 2
			}
			detail += " - Known for: " + strings.Join(place.Highlights[:n], ", ")
		}
		placeDetails = append(placeDetails, detail)
	}

	return fmt.Sprintf(`You are a warm, friendly Jharkhand tour guide.
The user wants a detailed travel plan.

Trip Profile:
- Duration: %d days
- Interests: %s
- Starting from: %s
- Group type: %s
- Budget level: %s

Places to build the plan from (do not invent places outside this list):
%s

Instructions:
Always provide a structured **Day-wise Itinerary**.
For each day, format like this:

Day <number>:
🌅 Morning: <Activity + local breakfast suggestion>
🌞 Afternoon: <Main site + lunch suggestion>
🌆 Evening: <Site / activity + dinner suggestion>
💡 Travel Tip: <1 practical insider tip for the day>
💰 Approx Budget: ₹<estimate>

Notes:
- Must **always** include "Day 1", "Day 2" etc. with emojis.
- Mention at least 1 **local dish** per day.
- Use a guide-like, conversational tone: ("You'll love...", "Don't miss...")
- Keep it under ~150 words so it's crisp but rich.`,
		duration,
		strings.Join(interests, ", "),
		params.String("start_location", "Ranchi"),
		params.String("group_type", "family"),
		params.String("budget_level", "moderate"),
		"- "+strings.Join(placeDetails, "\n- "))
}

func areaExtractionPrompt(query string) string {
	return fmt.Sprintf(`Analyze this query about nearby places in Jharkhand:
Query: %q

Extract and return in JSON format:
{
    "location": "<city name or null>",
    "attraction_type": "<waterfall/temple/park/wildlife/any or null>",
    "distance_preference": "<walking/short drive/day trip/any or null>",
    "group_context": "<family/couple/solo/friends or null>",
    "time_available": "<few hours/half day/full day or null>"
}

Common Jharkhand cities: Ranchi, Jamshedpur, Deoghar, Dhanbad, Bokaro`, query)
}

func areaComposePrompt(query string, params types.ParamSet, store *Store) string {
	location := params.String("location", "")

	var locationInfo string
	if entry, ok := store.Lookup(location); location != "" && ok {
		locationInfo = fmt.Sprintf("Available attractions near %s:\n", location)
		if m, isMap := entry.(map[string]any); isMap {
			for _, attr := range types.ParamSet(m).StringList("attractions") {
				locationInfo += "- " + attr + "\n"
			}
		}
	} else {
		locationInfo = generalAttractionsParagraph
	}

	return fmt.Sprintf(`You are a friendly Jharkhand tourism guide. Based on this context, suggest nearby places:

User Context:
- Location: %s
- Interest type: %s
- Distance preference: %s
- Group: %s
- Time available: %s

%s

Provide suggestions in this format:
1. Start with a warm greeting
2. List 3-5 relevant places with name and distance, what makes it special, best time to visit, a quick tip
3. Group by distance if applicable (Walking distance, Short drive, Day trip)
4. Use emojis for visual appeal

Keep the tone conversational and helpful, like a local friend giving advice.
Mention specific local food or experiences where relevant.
Make the response ~100 words max crisp and rich`,
		orDefault(location, "not specified"),
		params.String("attraction_type", "any"),
		params.String("distance_preference", "any"),
		orDefault(params.String("group_context", ""), "general visitors"),
		orDefault(params.String("time_available", ""), "flexible"),
		locationInfo)
}

func routeExtractionPrompt(query string) string {
	return fmt.Sprintf(`Analyze this transportation/route query for Jharkhand:
Query: %q

Extract and return in JSON format:
{
    "origin": "<starting city/location>",
    "destination": "<ending city/location>",
    "mode_preference": "<bus/train/taxi/any>",
    "time_preference": "<morning/afternoon/evening/night/any>",
    "budget_concern": "<yes/no>",
    "group_size": "<solo/couple/family/group>",
    "special_needs": "<elderly/children/disabled/none>"
}

Common Jharkhand locations: Ranchi, Jamshedpur, Deoghar, Dhanbad, Bokaro, Netarhat,
Betla National Park, Hundru Falls, Parasnath, Hazaribagh`, query)
}

func routeComposePrompt(query string, params types.ParamSet, store *Store) string {
	origin := params.String("origin", "your location")
	destination := params.String("destination", "your destination")

	routeKey := strings.ToLower(strings.ReplaceAll(origin+"_to_"+destination, " ", "_"))
	var routeInfo string
	if routes, ok := store.Lookup("major_routes"); ok {
		if m, isMap := routes.(map[string]any); isMap {
			if specific, found := m[routeKey]; found {
				routeInfo = "Known route information:\n" + indentJSON(specific)
			}
		}
	}

	var transportDetails string
	if info, ok := store.Lookup("transport_info"); ok {
		transportDetails = indentJSON(info)
	}

	return fmt.Sprintf(`You are a helpful Jharkhand travel guide providing route directions.

User wants to travel:
- From: %s
- To: %s
- Preferred mode: %s
- Time preference: %s
- Budget conscious: %s
- Group: %s
- Special needs: %s

%s

Available transport options in Jharkhand:
%s

Provide route guidance including:
1. 🗺️ Route Overview (distance, time, main highway/road)
2. 🚌 Transportation options with availability, approximate cost, where to board, booking tips
3. ⏰ Best time to travel and journey tips
4. ⚠️ Road conditions and safety tips

Use emojis, be friendly and practical. Include local insights.
If the route is not common, suggest the best possible way.
Don't exceed 100 words.`,
		origin,
		destination,
		params.String("mode_preference", "any"),
		params.String("time_preference", "any"),
		params.String("budget_concern", "no"),
		params.String("group_size", "solo"),
		params.String("special_needs", "none"),
		routeInfo,
		transportDetails)
}

func hotelComposePrompt(query string, params types.ParamSet, store *Store) string {
	return fmt.Sprintf(`You are a Jharkhand hotel booking assistant.
User query: %q

Available hotels data:
%s

Provide hotel suggestions in EXACTLY this format (MAX 100 words total):

🏨 [Location] Hotels:

💎 Luxury: [1-2 options with price range]
🏢 Mid-range: [1-2 options with price range]
💰 Budget: [1-2 options with price range]

💡 Tip: [One short tip]

Be specific with hotel names and approximate prices (₹).`, query, store.ContextJSON())
}

func helplineComposePrompt(query string, params types.ParamSet, store *Store) string {
	return fmt.Sprintf(`You are a Jharkhand tourism helpline assistant.
User query: %q

Available helplines:
%s

Provide ONLY the most relevant helpline numbers in this format (MAX 100 words):

📞 [Category] Helplines:

🚨 [Service]: [Number]
(List 3-5 most relevant numbers)

💡 Quick tip: [One practical tip]

Focus on what the user specifically needs. If general emergency, show main emergency numbers.
If tourism-related, prioritize tourism helplines.`, query, store.ContextJSON())
}

func festivalComposePrompt(query string, params types.ParamSet, store *Store) string {
	currentMonth := time.Now().Format("January")
	return fmt.Sprintf(`You are a Jharkhand festival guide. Current month: %s
User query: %q

Festival data:
%s

Provide festival info in this format (MAX 100 words):

🎊 [Festival/Event Name]:

📅 When: [Time/Date]
📍 Where: [Main locations]
✨ Highlights: [2-3 key attractions]

🎭 Also check: [1-2 other festivals]

💡 Tip: [One visitor tip]

Focus on what's most relevant to the query. If asking about current/upcoming, prioritize those.`,
		currentMonth, query, store.ContextJSON())
}

const generalAttractionsParagraph = `Popular attractions in Jharkhand:
Ranchi: Hundru Falls, Jonha Falls, Rock Garden, Tagore Hill
Jamshedpur: Dalma Wildlife Sanctuary, Dimna Lake, Jubilee Park
Deoghar: Baidyanath Temple, Naulakha Temple, Trikuta Parvata
Netarhat: Hill station, sunset points
Betla National Park: Wildlife and nature`

func indentJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
