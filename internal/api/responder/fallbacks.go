package responder

import (
	"fmt"
	"strings"

	"github.com/akanupam/jharkhand-yatra/internal/types"
)

// Canned replies used when the model is unreachable. They are built from the
// same knowledge stores the prompts use, so the degraded path stays grounded.

const plannerFooter = `

---
📋 **ESSENTIAL INFORMATION:**

🚨 **Emergency Contacts:**
• Police: 100 | Ambulance: 108
• Tourist Helpline: 1800-123-4567
• Forest Dept (Betla): 1800-123-5555
• Women's Helpline: 1091

🌦️ **Weather Tips:**
• Oct-Mar: Pleasant (15-25°C) - Best time!
• Apr-Jun: Hot (25-40°C) - Early morning visits
• Jul-Sep: Monsoon - Waterfalls at their best!

💡 **Pro Tips:**
• Book accommodations in advance
• Carry cash for local markets
• Try local cuisine: Dhuska, Rugra, Handia
• Respect tribal customs and traditions
• Download offline maps for remote areas`

const areaFooter = `

📌 **Quick Info:**
• Tourism Helpline: 1800-123-4567
• Best season: October to March
• Local transport: Auto-rickshaws and taxis available`

const routeFooter = `

🚨 **Emergency Contacts:**
• Highway Helpline: 1033
• Ambulance: 108
• Tourism Helpline: 1800-123-4567

💡 Carry water and snacks. Keep vehicle documents handy at check posts.`

const hotelFooter = `

📞 Bookings: MakeMyTrip, Booking.com, or hotel direct lines
☎️ Tourism Helpline: 1800-123-4567`

const helplineFooter = `

💾 Save these numbers before traveling to remote areas.`

const festivalFooter = `

📅 Dates vary by lunar calendar. Confirm with Jharkhand Tourism: 1800-123-4567`

func tripFallback(query string, params types.ParamSet, store *Store) string {
	var data types.PlacesData
	_ = store.Decode(&data)

	duration := params.Int("duration_days", 3)
	selected := selectPlaces(data, params.StringList("interests"), duration)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Here's a %d-day Jharkhand itinerary starting from %s:\n\n",
		duration, params.String("start_location", "Ranchi")))

	perDay := 2
	day := 1
	for i := 0; i < len(selected) && day <= duration; i += perDay {
		b.WriteString(fmt.Sprintf("**Day %d:**\n", day))
		for j := i; j < i+perDay && j < len(selected); j++ {
			place := selected[j]
			b.WriteString(fmt.Sprintf("• %s", place.Name))
			if place.Location != "" {
				b.WriteString(" (" + place.Location + ")")
			}
			if place.Duration != "" {
				b.WriteString(" - " + place.Duration)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		day++
	}

	b.WriteString("Best visited October to March. Start early each day to make the most of daylight.")
	return b.String()
}

func areaFallback(query string, params types.ParamSet, store *Store) string {
	location := params.String("location", "")
	title := "Jharkhand"
	if location != "" {
		title = titleCase(location)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗺️ **Exploring %s!**\n\n", title))

	if entry, ok := store.Lookup(location); location != "" && ok {
		if m, isMap := entry.(map[string]any); isMap {
			attractions := types.ParamSet(m).StringList("attractions")
			if len(attractions) > 0 {
				b.WriteString("Top nearby attractions:\n")
				max := len(attractions)
				if max > 5 {
					max = 5
				}
				for _, attr := range attractions[:max] {
					b.WriteString("• " + attr + "\n")
				}
				return b.String()
			}
		}
	}

	b.WriteString(`Top picks across the state:
• Hundru Falls and Jonha Falls near Ranchi
• Baidyanath Temple in Deoghar
• Betla National Park for wildlife
• Netarhat for hills and sunsets
• Dimna Lake near Jamshedpur`)
	return b.String()
}

func routeFallback(query string, params types.ParamSet, store *Store) string {
	origin := orDefault(params.String("origin", ""), "your starting point")
	destination := orDefault(params.String("destination", ""), "your destination")

	return fmt.Sprintf(`🗺️ **Getting from %s to %s**

🚌 **By Bus:** State buses connect all major Jharkhand towns. Board at the main bus stand; tickets are cheap (₹50-300) and buses run roughly hourly on trunk routes.

🚆 **By Train:** Ranchi, Jamshedpur (Tatanagar), Dhanbad, and Deoghar (Jasidih) are on the rail network. Check IRCTC for timings.

🚕 **By Taxi:** Private taxis and app cabs cover intercity runs; agree the fare before starting. Expect ₹12-15/km.

⏰ Travel in daylight where possible. Roads to remote spots like Netarhat and Betla are scenic but slow.`,
		titleCase(origin), titleCase(destination))
}

func routeMissingDestination(params types.ParamSet) (string, bool) {
	if params.String("destination", "") != "" {
		return "", false
	}
	return `I'm here to help you navigate Jharkhand! 🧭

Tell me where you want to go, for example:
• "How do I reach Netarhat from Ranchi?"
• "Best way to get to Betla National Park"
• "Train from Dhanbad to Deoghar"

Popular destinations: Ranchi, Jamshedpur, Deoghar, Netarhat, Betla, Hundru Falls, Parasnath.`, true
}

func hotelFallback(query string, params types.ParamSet, store *Store) string {
	return `🏨 **Jharkhand Hotel Options:**

💎 Luxury: Radisson Blu Ranchi, The Sonnet Jamshedpur (₹5000-10000)
🏢 Mid-range: Hotel Capitol Hill Ranchi, Ginger Jamshedpur (₹2000-4000)
💰 Budget: Hotel Embassy Ranchi, local lodges near stations (₹800-1500)

💡 Tip: Deoghar fills up during Shravani Mela (July-August); book weeks ahead.`
}

func helplineFallback(query string, params types.ParamSet, store *Store) string {
	lower := strings.ToLower(query)
	switch {
	case containsAny(lower, []string{"medical", "hospital", "doctor", "ambulance"}):
		return `🏥 **Medical Helplines:**

🚑 Ambulance: 108
🏥 Medical Helpline: 104
🚨 Emergency: 112

💡 Quick tip: RIMS Ranchi and TMH Jamshedpur are the largest hospitals in the state.`
	case containsAny(lower, []string{"tourist", "tourism", "travel"}):
		return `🧳 **Tourism Helplines:**

📞 Jharkhand Tourism: 1800-123-4567
🚆 Railway Enquiry: 139
🚌 State Transport: 0651-2490734

💡 Quick tip: Tourism offices at Ranchi airport and major stations can arrange guides.`
	default:
		return `📞 **Emergency Helplines:**

🚨 Police: 100
🚑 Ambulance: 108
🔥 Fire: 101
👩 Women's Helpline: 1091
📞 Tourism Helpline: 1800-123-4567

💡 Quick tip: 112 works as the single emergency number across India.`
	}
}

func festivalFallback(query string, params types.ParamSet, store *Store) string {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "sarhul"):
		return `🎊 **Sarhul:**

📅 When: Spring (March-April), on Chaitra Shukla Tritiya
📍 Where: Across tribal Jharkhand, biggest processions in Ranchi
✨ Highlights: Sal blossom worship, traditional dance, village processions

💡 Tip: Join the Ranchi procession route near Albert Ekka Chowk for the best views.`
	case strings.Contains(lower, "karma"):
		return `🎊 **Karma Festival:**

📅 When: August-September (Bhadrapada Ekadashi)
📍 Where: Villages across Jharkhand
✨ Highlights: Karam tree worship, all-night Jhumar dance, sibling blessings

💡 Tip: Rural celebrations around Khunti and Gumla are the most traditional.`
	case containsAny(lower, []string{"upcoming", "next", "this month"}):
		return `🎊 **Festival Calendar Highlights:**

📅 Sarhul: March-April
📅 Shravani Mela (Deoghar): July-August
📅 Karma: August-September
📅 Sohrai: October-November

💡 Tip: Dates follow the lunar calendar, so confirm locally before planning.`
	default:
		return `🎊 **Festivals of Jharkhand:**

✨ Sarhul (spring), Karma (harvest), Sohrai (cattle festival), Tusu Parab (winter)
📍 Shravani Mela in Deoghar draws millions of devotees each monsoon

🎭 Also check: Chhath Puja on the riverbanks of Ranchi

💡 Tip: Tribal festivals welcome respectful visitors; ask before photographing rituals.`
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
