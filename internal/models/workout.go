package models

const (
	ExerciseRunning  = "running"
	ExerciseCycling  = "cycling"
	ExerciseStrength = "strength"
	ExerciseYoga     = "yoga"
	ExerciseOther    = "other"
)

const (
	IntensityEasy     = "easy"
	IntensityModerate = "moderate"
	IntensityHard     = "hard"
)

// ExerciseTypes lists every valid exercise type in canonical order.
var ExerciseTypes = []string{
	ExerciseRunning,
	ExerciseCycling,
	ExerciseStrength,
	ExerciseYoga,
	ExerciseOther,
}

var Intensities = []string{
	IntensityEasy,
	IntensityModerate,
	IntensityHard,
}

// Workout is one logged exercise session. Date is the calendar day the
// session is attributed to (ISO YYYY-MM-DD); Timestamp is the creation
// instant in milliseconds and only orders entries within a day.
type Workout struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	ExerciseType string `json:"exerciseType"`
	Duration     int    `json:"duration"`
	Intensity    string `json:"intensity"`
	Notes        string `json:"notes,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

func IsValidExerciseType(value string) bool {
	for _, exerciseType := range ExerciseTypes {
		if value == exerciseType {
			return true
		}
	}
	return false
}

func IsValidIntensity(value string) bool {
	for _, intensity := range Intensities {
		if value == intensity {
			return true
		}
	}
	return false
}
