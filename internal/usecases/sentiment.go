package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"serenity/internal/ai"
	"serenity/internal/logger"
	"serenity/internal/models"
)

const analysisPersona = "You are a mental health AI assistant specializing in sentiment analysis for students. " +
	"Analyze the emotional tone and provide supportive insights. Be empathetic, non-judgmental, and focus on student wellness."

const analysisSessionID = "sentiment-analysis"

const analysisPromptTemplate = `Analyze the following journal entry from a student and provide:
1. Sentiment (positive, neutral, negative, mixed)
2. Mood score (1-10, where 1 is very negative, 10 is very positive)
3. Brief supportive insight (2-3 sentences)
4. Any stress indicators detected

Journal entry: "%s"

Respond in this format:
Sentiment: [sentiment]
Mood Score: [score]
Insight: [insight]
Stress Indicators: [indicators or none]`

// parseRules maps each recognized reply line to the field it sets. Rules are
// independent: a line that fails to parse leaves its field at the default,
// and unrecognized lines are skipped. Keeping the rules in one ordered slice
// confines future format drift to this table.
var parseRules = []struct {
	prefix string
	apply  func(*models.SentimentResult, string)
}{
	{"Sentiment:", func(r *models.SentimentResult, v string) {
		r.Sentiment = strings.ToLower(v)
	}},
	{"Mood Score:", func(r *models.SentimentResult, v string) {
		// An unparsable score resets the field to its default, even if an
		// earlier line had set it.
		score, err := strconv.ParseFloat(v, 64)
		if err != nil {
			score = 5.0
		}
		r.MoodScore = score
	}},
	{"Insight:", func(r *models.SentimentResult, v string) {
		r.Insight = v
	}},
	{"Stress Indicators:", func(r *models.SentimentResult, v string) {
		if !strings.EqualFold(v, "none") && v != "" {
			r.StressIndicators = []string{v}
		}
	}},
}

// Analyzer turns free text into a structured SentimentResult via the gateway.
type Analyzer struct {
	gateway ai.Gateway
}

func NewAnalyzer(gateway ai.Gateway) *Analyzer {
	return &Analyzer{gateway: gateway}
}

// Analyze is a total function: any gateway failure or parse anomaly degrades
// to defaults instead of surfacing. Sentiment analysis is best-effort and
// must never block the creation of the record it decorates.
func (a *Analyzer) Analyze(ctx context.Context, text string) models.SentimentResult {
	result := models.DefaultSentimentResult()

	prompt := fmt.Sprintf(analysisPromptTemplate, text)
	reply, err := a.gateway.Send(ctx, analysisPersona, analysisSessionID, prompt)
	if err != nil {
		logger.Logger.Warn("sentiment analysis failed, keeping defaults", "err", err)
		return result
	}

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		for _, rule := range parseRules {
			if strings.HasPrefix(line, rule.prefix) {
				rule.apply(&result, strings.TrimSpace(strings.TrimPrefix(line, rule.prefix)))
				break
			}
		}
	}

	return result
}
