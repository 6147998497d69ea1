// Package badge renders the SVG hit-count badge. The template is
// compiled into the binary and shared by every request.
package badge

import (
	_ "embed"
	"math"
	"strconv"
	"strings"

	"hitbadge-backend/models"
)

//go:embed image.svg
var imageTemplate string

// ContentType is the response content type for rendered badges.
const ContentType = "image/svg+xml; charset=utf-8"

// Render substitutes the count and color options into the badge
// template and returns the finished SVG document.
func Render(record *models.HitRecord, opts models.BadgeOptions) string {
	r := strings.NewReplacer(
		"@Count", FormatCount(record.HitCount, opts),
		"@EyeBg", opts.IconBackgroundColorCode,
		"@TextBg", opts.TextBackgroundColorCode,
		"@EyeColor", opts.EyeColorCode,
		"@TextColor", opts.TextColorCode,
	)
	return r.Replace(imageTemplate)
}

// FormatCount renders the count for display. Plain mode groups the
// exact count with thousands separators. KMB mode truncates to the top
// three significant digits and abbreviates with K/M/B, rounding down,
// never up.
func FormatCount(count int64, opts models.BadgeOptions) string {
	if !opts.IsKmbFormat {
		return groupThousands(count)
	}

	// index = 10^max(0, floor(log10(count)) - 2). A zero count has no
	// log10, so it keeps index 1 and falls through to the last branch.
	index := int64(1)
	if count > 0 {
		if p := int(math.Log10(float64(count))) - 2; p > 0 {
			index = int64(math.Pow(10, float64(p)))
		}
	}
	count = count / index * index

	switch {
	case count >= 1_000_000_000:
		return formatScaled(count, 1e9) + "B"
	case count >= 1_000_000:
		return formatScaled(count, 1e6) + "M"
	case count >= 1_000:
		return formatScaled(count, 1e3) + "K"
	default:
		return groupThousands(count)
	}
}

// formatScaled divides count by unit and prints at most two decimal
// places, trimming trailing zeros.
func formatScaled(count int64, unit float64) string {
	v := math.Round(float64(count)/unit*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupThousands renders n with comma separators, e.g. 1234567 ->
// "1,234,567".
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
