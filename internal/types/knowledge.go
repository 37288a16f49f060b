package types

import "github.com/google/uuid"

// Place is one destination record in the places knowledge file.
type Place struct {
	Name              string   `json:"name"`
	Location          string   `json:"location"`
	BestTime          string   `json:"best_time,omitempty"`
	Duration          string   `json:"duration,omitempty"`
	Significance      string   `json:"significance,omitempty"`
	Highlights        []string `json:"highlights,omitempty"`
	Activities        []string `json:"activities,omitempty"`
	NearbyAttractions []string `json:"nearby_attractions,omitempty"`
}

// PlacesData is the typed shape of the trip-planner knowledge file:
// category name mapped to destination records.
type PlacesData struct {
	Destinations map[string][]Place `json:"jharkhand_destinations"`
}

// DocumentChunk is one retrieved fragment of the tourism corpus backing
// the open-domain FAQ responder.
type DocumentChunk struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	ChunkIndex int       `json:"chunk_index"`
	Content    string    `json:"content"`
	Similarity float64   `json:"similarity,omitempty"`
}
