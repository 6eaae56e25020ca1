package models

const (
	DefaultDisplayName  = "Fitness Tracker"
	DefaultWeeklyGoal   = 5
	DefaultReminderTime = "07:00"
)

// UserSettings is the single preferences record. Exactly one logical
// instance exists; reading when nothing was ever saved yields
// DefaultSettings rather than an error.
type UserSettings struct {
	DisplayName          string `json:"displayName"`
	WeeklyGoal           int    `json:"weeklyGoal"`
	ReminderEnabled      bool   `json:"reminderEnabled"`
	ReminderTime         string `json:"reminderTime"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

func DefaultSettings() UserSettings {
	return UserSettings{
		DisplayName:          DefaultDisplayName,
		WeeklyGoal:           DefaultWeeklyGoal,
		ReminderEnabled:      false,
		ReminderTime:         DefaultReminderTime,
		NotificationsEnabled: true,
	}
}
