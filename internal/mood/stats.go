package mood

import (
	"github.com/julianstephens/mindcare/internal/constants"
	apperrors "github.com/julianstephens/mindcare/internal/errors"
	"github.com/julianstephens/mindcare/internal/models"
)

// Stats derives the average and trend of chronologically ordered entries.
//
// The recent window is the last three entries and the prior window the up to
// three entries before it. Short histories use whatever each window holds;
// when the prior window is empty it mirrors the recent one, so the trend
// reads as stable rather than improving.
func Stats(entries []models.MoodEntry) (models.MoodStats, error) {
	n := len(entries)
	if n == 0 {
		return models.MoodStats{}, apperrors.InsufficientData("no mood entries recorded")
	}

	recentStart := max(0, n-constants.TrendWindow)
	priorStart := max(0, recentStart-constants.TrendWindow)

	stats := models.MoodStats{
		Average:        mean(entries),
		RecentTrendAvg: mean(entries[recentStart:]),
		Count:          n,
		RecentCount:    n - recentStart,
		PriorCount:     recentStart - priorStart,
	}

	if stats.PriorCount == 0 {
		stats.PriorTrendAvg = stats.RecentTrendAvg
	} else {
		stats.PriorTrendAvg = mean(entries[priorStart:recentStart])
	}
	stats.IsImproving = stats.RecentTrendAvg > stats.PriorTrendAvg

	return stats, nil
}

func mean(entries []models.MoodEntry) float64 {
	sum := 0
	for _, e := range entries {
		sum += e.Score
	}
	return float64(sum) / float64(len(entries))
}
