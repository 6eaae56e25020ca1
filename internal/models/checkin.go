package models

const (
	MoodGreat    = "great"
	MoodGood     = "good"
	MoodOkay     = "okay"
	MoodTired    = "tired"
	MoodNotGreat = "not_great"
)

const (
	SleepPoor      = "poor"
	SleepFair      = "fair"
	SleepGood      = "good"
	SleepExcellent = "excellent"
)

// Moods in order from best to worst; the position drives trend scoring.
var Moods = []string{
	MoodGreat,
	MoodGood,
	MoodOkay,
	MoodTired,
	MoodNotGreat,
}

var SleepQualities = []string{
	SleepPoor,
	SleepFair,
	SleepGood,
	SleepExcellent,
}

// CheckIn is one daily wellbeing record. The store permits multiple
// check-ins on the same date; today-lookups return the earliest one in
// persisted order.
type CheckIn struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Mood         string `json:"mood"`
	EnergyLevel  int    `json:"energyLevel"`
	SleepQuality string `json:"sleepQuality"`
	Notes        string `json:"notes,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

func IsValidMood(value string) bool {
	for _, mood := range Moods {
		if value == mood {
			return true
		}
	}
	return false
}

func IsValidSleepQuality(value string) bool {
	for _, quality := range SleepQualities {
		if value == quality {
			return true
		}
	}
	return false
}
