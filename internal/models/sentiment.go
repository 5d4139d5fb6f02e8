package models

// DefaultInsight is returned whenever the model gives no usable insight,
// including when the analysis call fails outright.
const DefaultInsight = "Take care of yourself and remember that it's okay to have ups and downs."

// SentimentResult is the structured outcome of analyzing one piece of text.
// It is never persisted on its own; its fields are copied onto the entry or
// chat turn being created.
type SentimentResult struct {
	Sentiment        string   `json:"sentiment"`
	MoodScore        float64  `json:"mood_score"`
	Insight          string   `json:"insight"`
	StressIndicators []string `json:"stress_indicators"`
}

// DefaultSentimentResult is the tuple every analysis starts from and the one
// returned whole when the gateway fails or the reply contains nothing usable.
func DefaultSentimentResult() SentimentResult {
	return SentimentResult{
		Sentiment:        "neutral",
		MoodScore:        5.0,
		Insight:          DefaultInsight,
		StressIndicators: []string{},
	}
}
