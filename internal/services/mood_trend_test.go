package services

import (
	"testing"

	"github.com/terraincognita07/fittrack/internal/models"
)

func TestMoodScoreScale(t *testing.T) {
	tests := []struct {
		mood string
		want int
	}{
		{mood: models.MoodGreat, want: 5},
		{mood: models.MoodGood, want: 4},
		{mood: models.MoodOkay, want: 3},
		{mood: models.MoodTired, want: 2},
		{mood: models.MoodNotGreat, want: 1},
		{mood: "ecstatic", want: 0},
		{mood: "", want: 0},
	}

	for _, test := range tests {
		if got := MoodScore(test.mood); got != test.want {
			t.Fatalf("MoodScore(%q) = %d, want %d", test.mood, got, test.want)
		}
	}
}

func TestMoodTrendScoresPreservesPersistedOrder(t *testing.T) {
	scores := MoodTrendScores([]models.CheckIn{
		{Mood: models.MoodTired},
		{Mood: models.MoodGreat},
		{Mood: "unknown"},
	})

	want := []int{2, 5, 0}
	if len(scores) != len(want) {
		t.Fatalf("expected %d scores, got %d", len(want), len(scores))
	}
	for i := range want {
		if scores[i] != want[i] {
			t.Fatalf("expected scores %v, got %v", want, scores)
		}
	}
}

func TestTrimTrailingMoodScoresKeepsLastPoints(t *testing.T) {
	source := []int{1, 2, 3, 4, 5}

	unchanged := TrimTrailingMoodScores(source, 10)
	if len(unchanged) != 5 {
		t.Fatalf("expected unchanged scores, got %v", unchanged)
	}

	trimmed := TrimTrailingMoodScores(source, 3)
	if len(trimmed) != 3 || trimmed[0] != 3 || trimmed[2] != 5 {
		t.Fatalf("expected trailing three scores, got %v", trimmed)
	}
}
