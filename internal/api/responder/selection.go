package responder

import (
	"sort"
	"strings"

	"github.com/akanupam/jharkhand-yatra/internal/types"
)

// interestCategories maps a declared interest to the destination
// categories serving it, in priority order.
var interestCategories = map[string][]string{
	"nature":     {"nature_wildlife", "hill_stations", "waterfalls"},
	"wildlife":   {"nature_wildlife"},
	"religious":  {"religious_sites"},
	"adventure":  {"waterfalls", "hill_stations", "nature_wildlife"},
	"waterfalls": {"waterfalls"},
	"culture":    {"religious_sites", "hill_stations"},
}

// placeCategoryOrder fixes the walk order of the fill pass; categories in
// the data but not listed here follow alphabetically.
var placeCategoryOrder = []string{"nature_wildlife", "waterfalls", "hill_stations", "religious_sites"}

const maxSelectedPlaces = 10

// selectPlaces picks the candidate destinations for an itinerary. Pass 1
// walks the declared interests through the interest-to-category mapping,
// collecting unique-by-name places up to min(durationDays*2, 10). Pass 2
// fills any remaining slots from all categories, admitting half-day visits
// regardless of trip length and everything else once the trip spans two or
// more days.
func selectPlaces(data types.PlacesData, interests []string, durationDays int) []types.Place {
	maxPlaces := durationDays * 2
	if maxPlaces > maxSelectedPlaces {
		maxPlaces = maxSelectedPlaces
	}
	if maxPlaces < 1 {
		maxPlaces = 1
	}

	seen := make(map[string]bool)
	var selected []types.Place

	for _, interest := range interests {
		for _, category := range interestCategories[interest] {
			for _, place := range data.Destinations[category] {
				if len(selected) >= maxPlaces {
					break
				}
				if seen[place.Name] {
					continue
				}
				selected = append(selected, place)
				seen[place.Name] = true
			}
		}
	}

	if len(selected) < maxPlaces {
		for _, category := range orderedCategories(data) {
			for _, place := range data.Destinations[category] {
				if len(selected) >= maxPlaces {
					break
				}
				if seen[place.Name] {
					continue
				}
				duration := strings.ToLower(place.Duration)
				if strings.Contains(duration, "half day") || durationDays >= 2 {
					selected = append(selected, place)
					seen[place.Name] = true
				}
			}
		}
	}

	if len(selected) == 0 {
		limit := durationDays * 2
		if limit < 1 {
			limit = 1
		}
		selected = mustVisitPlaces(data, limit)
	}
	return selected
}

// mustVisitPlaces flattens all categories in walk order when no interest
// matched anything. Capped at twice the trip length only; the ten-place
// ceiling does not apply to this list.
func mustVisitPlaces(data types.PlacesData, maxPlaces int) []types.Place {
	var all []types.Place
	for _, category := range orderedCategories(data) {
		all = append(all, data.Destinations[category]...)
	}
	if len(all) > maxPlaces {
		all = all[:maxPlaces]
	}
	return all
}

// orderedCategories returns every category key in deterministic walk
// order: the fixed list first, then any extra keys alphabetically.
func orderedCategories(data types.PlacesData) []string {
	listed := make(map[string]bool, len(placeCategoryOrder))
	var out []string
	for _, category := range placeCategoryOrder {
		listed[category] = true
		if _, ok := data.Destinations[category]; ok {
			out = append(out, category)
		}
	}
	var extra []string
	for category := range data.Destinations {
		if !listed[category] {
			extra = append(extra, category)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
