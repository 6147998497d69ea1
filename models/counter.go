package models

// HitRecord is a persisted visit counter for one (user, page) pair.
// Keys are stored lowercase; HitCount only moves forward.
type HitRecord struct {
	User     string `json:"user" dynamodbav:"user"`
	PageID   string `json:"page_id" dynamodbav:"page_id"`
	HitCount int64  `json:"hit_count" dynamodbav:"hit_count"`
}

// NewHitRecord creates an in-memory record for a pair that has no
// persisted counter yet.
func NewHitRecord(user, pageID string, hitCount int64) *HitRecord {
	return &HitRecord{
		User:     user,
		PageID:   pageID,
		HitCount: hitCount,
	}
}

// BadgeOptions control how the badge is rendered. All fields bind from
// query parameters; missing parameters keep the defaults.
type BadgeOptions struct {
	IconBackgroundColorCode string `form:"iconBackgroundColorCode" json:"icon_background_color_code"`
	EyeColorCode            string `form:"eyeColorCode" json:"eye_color_code"`
	TextColorCode           string `form:"textColorCode" json:"text_color_code"`
	TextBackgroundColorCode string `form:"textBackgroundColorCode" json:"text_background_color_code"`
	NoCount                 bool   `form:"noCount" json:"no_count"`
	IsKmbFormat             bool   `form:"isKmbFormat" json:"is_kmb_format"`
}

// DefaultBadgeOptions returns the stock badge styling with abbreviated
// count formatting enabled.
func DefaultBadgeOptions() BadgeOptions {
	return BadgeOptions{
		IconBackgroundColorCode: "#555555",
		EyeColorCode:            "#FFFFFF",
		TextColorCode:           "#FFFFFF",
		TextBackgroundColorCode: "#7B1E7A",
		NoCount:                 false,
		IsKmbFormat:             true,
	}
}
