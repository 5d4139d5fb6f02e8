package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"serenity/internal/models"
)

// Docs cross the store boundary as ISO-8601 timestamps inside schemaless
// maps. These tests pin that contract without a database.

func TestTimestampRoundTrip(t *testing.T) {
	t.Parallel()

	orig := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	parsed, err := parseTimestamp(formatTimestamp(orig))

	require.NoError(t, err)
	require.True(t, parsed.Equal(orig))
	require.Equal(t, time.UTC, parsed.Location())
}

func TestParseTimestamp_AcceptsSecondPrecision(t *testing.T) {
	t.Parallel()

	parsed, err := parseTimestamp("2025-03-14T09:26:53Z")
	require.NoError(t, err)
	require.Equal(t, 2025, parsed.Year())

	_, err = parseTimestamp("not-a-timestamp")
	require.Error(t, err)
}

func TestJournalDoc_SurvivesStoreSerialization(t *testing.T) {
	t.Parallel()

	entry := models.NewJournalEntry("u1", "rough week", []string{"school"}, models.PrivacyAnonymous)
	entry.MoodScore = 4.5
	entry.Sentiment = "negative"
	entry.AIInsights = "Be kind to yourself."

	doc := journalToDoc(entry)
	require.IsType(t, "", doc["created_at"], "created_at must be an ISO-8601 string")

	// Through the same JSON pass the store applies.
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	stored := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &stored))

	got, err := journalFromDoc(stored)
	require.NoError(t, err)
	require.Equal(t, entry.ID, got.ID)
	require.Equal(t, entry.Sentiment, got.Sentiment)
	require.Equal(t, entry.MoodScore, got.MoodScore)
	require.Equal(t, entry.Tags, got.Tags)
	require.True(t, got.CreatedAt.Equal(entry.CreatedAt))
}

func TestMoodDoc_IntLevelsSurviveJSONNumbers(t *testing.T) {
	t.Parallel()

	checkin := models.NewMoodCheckIn("u1", 2, 5, 3, "exams")

	raw, err := json.Marshal(moodToDoc(checkin))
	require.NoError(t, err)
	stored := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &stored))

	got, err := moodFromDoc(stored)
	require.NoError(t, err)
	require.Equal(t, 2, got.MoodLevel)
	require.Equal(t, 5, got.StressLevel)
	require.Equal(t, 3, got.EnergyLevel)
	require.Equal(t, "exams", got.Notes)
}

func TestFromDoc_MissingTimestampFails(t *testing.T) {
	t.Parallel()

	_, err := chatFromDoc(map[string]any{"id": "x"})
	require.Error(t, err)
}

// A doc without created_at is rejected rather than stamped with the clock.
func TestDocCreatedAt_MissingFieldFails(t *testing.T) {
	t.Parallel()

	_, err := docCreatedAt(map[string]any{"id": "x"})
	require.Error(t, err)

	got, err := docCreatedAt(map[string]any{"created_at": "2025-03-14T09:26:53Z"})
	require.NoError(t, err)
	require.Equal(t, 2025, got.Year())
}
