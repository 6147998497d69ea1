package badge

import (
	"strings"
	"testing"

	"hitbadge-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountKmb(t *testing.T) {
	opts := models.DefaultBadgeOptions()

	tests := []struct {
		name     string
		count    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"one", 1, "1"},
		{"under a thousand", 999, "999"},
		{"exact thousand", 1000, "1K"},
		{"truncated thousands", 1234, "1.23K"},
		{"keeps three significant digits", 12345, "12.3K"},
		{"rounds down not up", 1999, "1.99K"},
		{"exact million", 1000000, "1M"},
		{"millions truncated", 1234567, "1.23M"},
		{"billions", 1500000000, "1.5B"},
		{"billions truncated", 9876543210, "9.87B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCount(tt.count, opts))
		})
	}
}

func TestFormatCountPlain(t *testing.T) {
	opts := models.DefaultBadgeOptions()
	opts.IsKmbFormat = false

	tests := []struct {
		count    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{1000000000, "1,000,000,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCount(tt.count, opts))
	}
}

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	opts := models.BadgeOptions{
		IconBackgroundColorCode: "#111111",
		EyeColorCode:            "#222222",
		TextColorCode:           "#333333",
		TextBackgroundColorCode: "#444444",
		IsKmbFormat:             true,
	}
	record := models.NewHitRecord("alice", "home", 1234567)

	svg := Render(record, opts)

	assert.Contains(t, svg, "1.23M")
	assert.Contains(t, svg, "#111111")
	assert.Contains(t, svg, "#222222")
	assert.Contains(t, svg, "#333333")
	assert.Contains(t, svg, "#444444")
	assert.NotContains(t, svg, "@Count")
	assert.NotContains(t, svg, "@EyeBg")
	assert.NotContains(t, svg, "@EyeColor")
	assert.NotContains(t, svg, "@TextBg")
	assert.NotContains(t, svg, "@TextColor")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(svg), "<svg"))
}

func TestRenderDefaultOptions(t *testing.T) {
	record := models.NewHitRecord("alice", "home", 42)

	svg := Render(record, models.DefaultBadgeOptions())

	assert.Contains(t, svg, ">42<")
	assert.Contains(t, svg, "#555555")
	assert.Contains(t, svg, "#7B1E7A")
}
