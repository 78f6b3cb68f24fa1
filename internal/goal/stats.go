package goal

import "math"

type Stats struct {
	Total           int `json:"total"`
	Active          int `json:"active"`
	Completed       int `json:"completed"`
	Paused          int `json:"paused"`
	CompletionRate  int `json:"completionRate"`
	AverageProgress int `json:"averageProgress"`
}

// Summarize computes dashboard counters. Percentages are rounded to the
// nearest integer and are zero for an empty list.
func Summarize(goals []Goal) Stats {
	var stats Stats
	progressSum := 0

	for _, g := range goals {
		stats.Total++
		progressSum += g.Progress

		switch g.Status {
		case StatusActive:
			stats.Active++
		case StatusCompleted:
			stats.Completed++
		case StatusPaused:
			stats.Paused++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
		stats.AverageProgress = int(math.Round(float64(progressSum) / float64(stats.Total)))
	}
	return stats
}
