package models

// UserStats is computed on demand from stored records; it is never persisted.
type UserStats struct {
	TotalEntries    int64    `json:"total_entries"`
	AvgMood         float64  `json:"avg_mood"`
	AvgStress       float64  `json:"avg_stress"`
	RecentPatterns  []string `json:"recent_patterns"`
	Recommendations []string `json:"recommendations"`
}
