package responder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akanupam/jharkhand-yatra/internal/api/generativeai"
)

func TestComposeTruncatesLongReplies(t *testing.T) {
	long := strings.Repeat("word ", 10000)
	gw := &scriptedGateway{replies: []string{long}}
	cfg := HelplineConfig()
	r := newTestResponder(t, cfg, gw)

	reply := r.compose(context.Background(), "helpline numbers", cfg.Schema.Defaults())

	body := strings.TrimSuffix(reply, cfg.Footer)
	require.True(t, strings.HasSuffix(body, "..."))
	assert.Len(t, strings.Fields(body), cfg.WordCeiling-5)
}

func TestComposeAppendsTruncateSuffix(t *testing.T) {
	long := strings.Repeat("hotel ", 500)
	gw := &scriptedGateway{replies: []string{long}}
	cfg := HotelSuggestConfig()
	r := newTestResponder(t, cfg, gw)

	reply := r.compose(context.Background(), "hotels in ranchi", cfg.Schema.Defaults())

	body := strings.TrimSuffix(reply, cfg.Footer)
	assert.True(t, strings.HasSuffix(body, "... Book via MakeMyTrip/Booking.com"))
}

func TestComposeLeavesShortRepliesAlone(t *testing.T) {
	gw := &scriptedGateway{replies: []string{"Call 108 for an ambulance."}}
	cfg := HelplineConfig()
	r := newTestResponder(t, cfg, gw)

	reply := r.compose(context.Background(), "ambulance", cfg.Schema.Defaults())

	assert.Contains(t, reply, "Call 108 for an ambulance.")
	assert.NotContains(t, reply, "...")
}

func TestComposeAlwaysAppendsFooter(t *testing.T) {
	for _, cfg := range AllConfigs() {
		t.Run(string(cfg.Intent), func(t *testing.T) {
			r := newTestResponder(t, cfg, &generativeai.Disabled{})
			reply := r.compose(context.Background(), "tell me about travel in jharkhand", cfg.Schema.Defaults())
			assert.True(t, strings.HasSuffix(reply, cfg.Footer))
			assert.NotEmpty(t, strings.TrimSuffix(reply, cfg.Footer))
		})
	}
}

func TestComposeAddsHeaderOnSuccessOnly(t *testing.T) {
	cfg := TripPlannerConfig()

	gw := &scriptedGateway{replies: []string{"Day 1: Hundru Falls."}}
	r := newTestResponder(t, cfg, gw)
	reply := r.compose(context.Background(), "plan a trip", cfg.Schema.Defaults())
	assert.True(t, strings.HasPrefix(reply, cfg.Header))

	down := newTestResponder(t, cfg, &generativeai.Disabled{})
	canned := down.compose(context.Background(), "plan a trip", cfg.Schema.Defaults())
	assert.False(t, strings.HasPrefix(canned, cfg.Header))
	assert.Contains(t, canned, "Day 1")
}

func TestComposeCannedPathIsDeterministic(t *testing.T) {
	for _, cfg := range AllConfigs() {
		cfg := cfg
		t.Run(string(cfg.Intent), func(t *testing.T) {
			r := newTestResponder(t, cfg, &generativeai.Disabled{})
			first := r.Respond(context.Background(), "plan 3 days near ranchi with hotels and festivals")
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, r.Respond(context.Background(), "plan 3 days near ranchi with hotels and festivals"))
			}
		})
	}
}

func TestEnforceWordCeiling(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		ceiling int
		suffix  string
		want    string
	}{
		{"under ceiling", "one two three", 10, "", "one two three"},
		{"at ceiling", "one two three", 3, "", "one two three"},
		{"over ceiling", "a b c d e f g h i j k", 10, "", "a b c d e..."},
		{"with suffix", "a b c d e f g h i j k", 10, " more", "a b c d e... more"},
		{"no ceiling", "a b c", 0, "", "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enforceWordCeiling(tt.text, tt.ceiling, tt.suffix))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Ranchi", titleCase("ranchi"))
	assert.Equal(t, "Betla National Park", titleCase("betla national park"))
	assert.Equal(t, "", titleCase(""))
}
