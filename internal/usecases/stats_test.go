package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "serenity/internal/errors"
	"serenity/internal/models"
)

type fakeStatsSource struct {
	entries     int64
	entriesErr  error
	checkins    []models.MoodCheckIn
	checkinsErr error

	lastLimit int
}

func (f *fakeStatsSource) CountEntries(_ context.Context, _ string) (int64, error) {
	return f.entries, f.entriesErr
}

func (f *fakeStatsSource) RecentCheckIns(_ context.Context, _ string, limit int) ([]models.MoodCheckIn, error) {
	f.lastLimit = limit
	return f.checkins, f.checkinsErr
}

func checkins(moodStress ...[2]int) []models.MoodCheckIn {
	out := make([]models.MoodCheckIn, 0, len(moodStress))
	for _, ms := range moodStress {
		out = append(out, models.MoodCheckIn{MoodLevel: ms[0], StressLevel: ms[1]})
	}
	return out
}

func TestComputeStats_NoCheckIns(t *testing.T) {
	t.Parallel()

	source := &fakeStatsSource{entries: 7}
	stats, err := NewStatsEngine(source).ComputeStats(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, int64(7), stats.TotalEntries)
	require.Equal(t, 3.0, stats.AvgMood)
	require.Equal(t, 3.0, stats.AvgStress)
	require.Equal(t, []string{recAffirmation}, stats.Recommendations)
	require.Empty(t, stats.RecentPatterns)
}

func TestComputeStats_ReadsTenMostRecent(t *testing.T) {
	t.Parallel()

	source := &fakeStatsSource{}
	_, err := NewStatsEngine(source).ComputeStats(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, 10, source.lastLimit)
}

func TestComputeStats_HighStressLowMood(t *testing.T) {
	t.Parallel()

	source := &fakeStatsSource{checkins: checkins([2]int{2, 4}, [2]int{2, 4})}
	stats, err := NewStatsEngine(source).ComputeStats(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, 2.0, stats.AvgMood)
	require.Equal(t, 4.0, stats.AvgStress)

	// All matching recommendation rules fire, in fixed order.
	require.Equal(t, []string{recTakeBreaks, recBreathing, recJoy, recReachOut}, stats.Recommendations)

	// The stress pattern co-occurs with the low-mood pattern.
	require.Equal(t, []string{patternStress, patternLowMood}, stats.RecentPatterns)
}

func TestComputeStats_HighStressHighMood(t *testing.T) {
	t.Parallel()

	source := &fakeStatsSource{checkins: checkins([2]int{4, 4}, [2]int{5, 4})}
	stats, err := NewStatsEngine(source).ComputeStats(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, []string{recTakeBreaks, recBreathing}, stats.Recommendations)
	require.Equal(t, []string{patternStress, patternPositive}, stats.RecentPatterns)
}

func TestComputeStats_LowMoodWithoutHighStress(t *testing.T) {
	t.Parallel()

	source := &fakeStatsSource{checkins: checkins([2]int{2, 3}, [2]int{2, 3})}
	stats, err := NewStatsEngine(source).ComputeStats(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, []string{recJoy, recReachOut}, stats.Recommendations)
	require.Equal(t, []string{patternLowMood}, stats.RecentPatterns)
}

func TestComputeStats_PositiveMood(t *testing.T) {
	t.Parallel()

	source := &fakeStatsSource{checkins: checkins([2]int{4, 2}, [2]int{5, 2})}
	stats, err := NewStatsEngine(source).ComputeStats(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, []string{recAffirmation}, stats.Recommendations)
	require.Equal(t, []string{patternPositive}, stats.RecentPatterns)
}

// 3.6666... rounds half away from zero to 3.7.
func TestComputeStats_RoundsToOneDecimal(t *testing.T) {
	t.Parallel()

	source := &fakeStatsSource{checkins: checkins([2]int{3, 3}, [2]int{4, 3}, [2]int{4, 3})}
	stats, err := NewStatsEngine(source).ComputeStats(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, 3.7, stats.AvgMood)
	require.Equal(t, 3.0, stats.AvgStress)
}

func TestComputeStats_BoundaryValuesDoNotTrigger(t *testing.T) {
	t.Parallel()

	// Exactly 3.5 stress and 2.5 mood: strict comparisons, nothing fires.
	source := &fakeStatsSource{checkins: checkins([2]int{2, 3}, [2]int{3, 4})}
	stats, err := NewStatsEngine(source).ComputeStats(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, 2.5, stats.AvgMood)
	require.Equal(t, 3.5, stats.AvgStress)
	require.Equal(t, []string{recAffirmation}, stats.Recommendations)
	require.Empty(t, stats.RecentPatterns)
}

func TestComputeStats_StoreErrorsPropagate(t *testing.T) {
	t.Parallel()

	countErr := apperrors.NewStore("storage.Count", errors.New("connection refused"))
	_, err := NewStatsEngine(&fakeStatsSource{entriesErr: countErr}).ComputeStats(context.Background(), "u1")
	require.ErrorIs(t, err, countErr)

	findErr := apperrors.NewStore("storage.Find", errors.New("connection refused"))
	_, err = NewStatsEngine(&fakeStatsSource{checkinsErr: findErr}).ComputeStats(context.Background(), "u1")
	require.ErrorIs(t, err, findErr)
}

func TestRound1_HalfAwayFromZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3.7, round1(11.0/3.0))
	require.Equal(t, 2.5, round1(2.45))
	require.Equal(t, 3.0, round1(3.0))
}
