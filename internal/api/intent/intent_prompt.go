package intent

import "fmt"

func getClassificationPrompt(text string) string {
	return fmt.Sprintf(`You are an intent classifier for a Jharkhand tourism chatbot.

CRITICAL RULES:
1. This chatbot ONLY handles queries about Jharkhand state, India
2. If the query is about any location OUTSIDE Jharkhand, return "OUT_OF_DOMAIN"
3. If the query mentions non-Jharkhand places (like Paris, Mumbai, Delhi, Goa, etc.), return "OUT_OF_DOMAIN"

For VALID Jharkhand queries, classify into one of these intents:
- TRIP_PLANNER: Planning trips, itineraries, tour suggestions within Jharkhand
- AREA_SUGGEST: Nearby places, attractions around a location in Jharkhand
- ROUTE_HELPER: Directions, how to reach, transportation within/to Jharkhand
- HOTEL_SUGGEST: Accommodation, hotels, stays in Jharkhand
- HELPLINE: Emergency numbers, helplines for Jharkhand tourism
- FESTIVALS: Events, festivals, cultural programs in Jharkhand
- RAG_FAQ: General questions about Jharkhand tourism

Query: %q

Analyze carefully:
1. Does this query relate to Jharkhand? (cities like Ranchi, Jamshedpur, Deoghar, places like Betla, Netarhat, etc.)
2. If location is not mentioned, could it be asking about Jharkhand tourism?
3. If it mentions any non-Jharkhand location explicitly, it's OUT_OF_DOMAIN

Return ONLY the intent label, nothing else.
Examples:
- "Plan a trip to Paris" -> OUT_OF_DOMAIN
- "Plan a trip to Ranchi" -> TRIP_PLANNER
- "Hotels in Mumbai" -> OUT_OF_DOMAIN
- "Hotels in Jamshedpur" -> HOTEL_SUGGEST
- "Weekend trip" -> TRIP_PLANNER (assumes Jharkhand context)`, text)
}

func getOutOfDomainPrompt(query string) string {
	return fmt.Sprintf(`The user asked about something outside Jharkhand: %q

Generate a polite, helpful response that:
1. Acknowledges their query
2. Explains you only handle Jharkhand tourism
3. Suggests similar things they can explore in Jharkhand

Keep it friendly and under 100 words.

Example: If they ask about "beaches in Goa", you might suggest "waterfalls in Jharkhand"`, query)
}
