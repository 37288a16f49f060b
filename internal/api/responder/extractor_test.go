package responder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akanupam/jharkhand-yatra/internal/api/generativeai"
	"github.com/akanupam/jharkhand-yatra/internal/types"
)

func TestExtractReturnsDefaultsForAnyInput(t *testing.T) {
	r := newTestResponder(t, TripPlannerConfig(), &generativeai.Disabled{})

	for _, text := range []string{"", "   ", "{{{]]] \x00 garbage", "plan a trip"} {
		params := r.extract(context.Background(), text)
		assert.Equal(t, 3, params.Int("duration_days", 0), "input %q", text)
		assert.Equal(t, "Ranchi", params.String("start_location", ""), "input %q", text)
		assert.NotEmpty(t, params.StringList("interests"), "input %q", text)
	}
}

func TestExtractOverlaysModelJSON(t *testing.T) {
	gw := &scriptedGateway{replies: []string{
		`{"duration_days": 5, "interests": ["wildlife"], "start_location": "Jamshedpur", "travel_month": null}`,
	}}
	r := newTestResponder(t, TripPlannerConfig(), gw)

	params := r.extract(context.Background(), "5 day wildlife trip from jamshedpur")

	assert.Equal(t, 5, params.Int("duration_days", 0))
	assert.Equal(t, []string{"wildlife"}, params.StringList("interests"))
	assert.Equal(t, "Jamshedpur", params.String("start_location", ""))
	// JSON null keeps the default.
	assert.Equal(t, "", params.String("travel_month", ""))
}

func TestExtractSkipsLiteralNullStrings(t *testing.T) {
	gw := &scriptedGateway{replies: []string{
		`{"duration_days": 2, "budget_level": "null", "group_type": "null"}`,
	}}
	r := newTestResponder(t, TripPlannerConfig(), gw)

	params := r.extract(context.Background(), "weekend trip")

	assert.Equal(t, 2, params.Int("duration_days", 0))
	assert.Equal(t, "moderate", params.String("budget_level", ""))
	assert.Equal(t, "family", params.String("group_type", ""))
}

func TestExtractHandlesFencedJSON(t *testing.T) {
	gw := &scriptedGateway{replies: []string{
		"```json\n{\"duration_days\": 4}\n```",
	}}
	r := newTestResponder(t, TripPlannerConfig(), gw)

	params := r.extract(context.Background(), "four days please")
	assert.Equal(t, 4, params.Int("duration_days", 0))
}

func TestExtractHandlesNestedObjects(t *testing.T) {
	// The greedy brace span encloses nested objects whole; unknown nested
	// fields are dropped by the schema lookup.
	gw := &scriptedGateway{replies: []string{
		`Here you go: {"duration_days": 4, "interests": ["nature"], "extra": {"deep": {"deeper": 1}}}`,
	}}
	r := newTestResponder(t, TripPlannerConfig(), gw)

	params := r.extract(context.Background(), "four day nature trip")

	assert.Equal(t, 4, params.Int("duration_days", 0))
	assert.Equal(t, []string{"nature"}, params.StringList("interests"))
	_, hasExtra := params["extra"]
	assert.False(t, hasExtra)
	assert.Equal(t, "Ranchi", params.String("start_location", ""))
}

func TestExtractFallsBackToHeuristicsOnProse(t *testing.T) {
	gw := &scriptedGateway{replies: []string{
		"Sure! I think a seven day trip sounds wonderful.",
	}}
	r := newTestResponder(t, TripPlannerConfig(), gw)

	params := r.extract(context.Background(), "Plan a 7 day waterfall trip")

	assert.Equal(t, 7, params.Int("duration_days", 0))
	assert.Contains(t, params.StringList("interests"), "waterfalls")
}

func TestExtractMultipleObjectsFallThroughToHeuristics(t *testing.T) {
	// Two objects make the greedy first-to-last brace span invalid JSON.
	gw := &scriptedGateway{replies: []string{
		`{"duration_days": 9} and also {"duration_days": 8}`,
	}}
	r := newTestResponder(t, TripPlannerConfig(), gw)

	params := r.extract(context.Background(), "2 day temple tour")

	assert.Equal(t, 2, params.Int("duration_days", 0))
	assert.Contains(t, params.StringList("interests"), "religious")
}

func TestExtractIgnoresUnknownAndMistypedFields(t *testing.T) {
	gw := &scriptedGateway{replies: []string{
		`{"duration_days": "three", "favorite_color": "green", "interests": "nature"}`,
	}}
	r := newTestResponder(t, TripPlannerConfig(), gw)

	params := r.extract(context.Background(), "plan something")

	assert.Equal(t, 3, params.Int("duration_days", 0))
	_, hasColor := params["favorite_color"]
	assert.False(t, hasColor)
}

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"surrounding prose", `Here you go: {"a": 1} hope that helps`, `{"a": 1}`},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"no braces", "no json here", ""},
		{"only open brace", "start { and nothing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONBlock(tt.reply))
		})
	}
}

func TestSchemaDefaultsCopiesSlices(t *testing.T) {
	schema := types.Schema{Fields: []types.Field{
		{Name: "interests", Kind: types.FieldStringList, Default: []string{"nature"}},
	}}

	first := schema.Defaults()
	first["interests"] = append(first.StringList("interests"), "culture")

	second := schema.Defaults()
	require.Equal(t, []string{"nature"}, second.StringList("interests"))
}

func TestRouteHeuristicsPicksOriginAndDestination(t *testing.T) {
	params := RouteHelperConfig().Schema.Defaults()
	routeHeuristics("how to reach netarhat from ranchi", params)

	assert.Equal(t, "Ranchi", params.String("origin", ""))
	assert.Equal(t, "Netarhat", params.String("destination", ""))
}
