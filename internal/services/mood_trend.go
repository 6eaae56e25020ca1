package services

import "github.com/terraincognita07/fittrack/internal/models"

// moodScores maps moods to the 5..1 scale used for the trend sparkline.
var moodScores = map[string]int{
	models.MoodGreat:    5,
	models.MoodGood:     4,
	models.MoodOkay:     3,
	models.MoodTired:    2,
	models.MoodNotGreat: 1,
}

// MoodScore returns the numeric score for a mood, or zero for an
// unknown value.
func MoodScore(mood string) int {
	return moodScores[mood]
}

// MoodTrendScores maps each check-in to its mood score, preserving
// persisted order.
func MoodTrendScores(checkIns []models.CheckIn) []int {
	scores := make([]int, 0, len(checkIns))
	for _, checkIn := range checkIns {
		scores = append(scores, MoodScore(checkIn.Mood))
	}
	return scores
}

// TrimTrailingMoodScores keeps at most the last maxPoints scores, the
// shape sparkline consumers render.
func TrimTrailingMoodScores(scores []int, maxPoints int) []int {
	if maxPoints <= 0 || len(scores) <= maxPoints {
		return scores
	}
	return scores[len(scores)-maxPoints:]
}
