package constants

// Storage keys. Each key holds exactly one JSON document.
const (
	KeySleepData         = "sleepData"
	KeyWeightData        = "weightData"
	KeyMoodData          = "moodData"
	KeyMeals             = "meals"
	KeyRunningActivities = "runningActivities"
	KeyJournalEntries    = "journalEntries"
	KeyWeeklyWaterData   = "weeklyWaterData"
	KeyWaterGoal         = "waterGoal"
	KeyWaterIntake       = "waterIntake"
	KeyWaterIntakeDate   = "waterIntakeDate"
	KeyCalorieGoal       = "calorieGoal"
	KeyUserWeight        = "userWeight"
	KeyUserHeight        = "userHeight"
	KeyTheme             = "theme"
	KeyRemindersEnabled  = "remindersEnabled"
	KeySoundsEnabled     = "soundsEnabled"
	KeyTimezone          = "timezone"
	KeyProfile           = "wellnessHubUser"
)

// AllKeys lists every storage key the application owns, in export order.
var AllKeys = []string{
	KeySleepData,
	KeyWeightData,
	KeyMoodData,
	KeyMeals,
	KeyRunningActivities,
	KeyJournalEntries,
	KeyWeeklyWaterData,
	KeyWaterGoal,
	KeyWaterIntake,
	KeyWaterIntakeDate,
	KeyCalorieGoal,
	KeyUserWeight,
	KeyUserHeight,
	KeyTheme,
	KeyRemindersEnabled,
	KeySoundsEnabled,
	KeyTimezone,
	KeyProfile,
}

const (
	// Default preference values
	DefaultTheme            = "default"
	DefaultCalorieGoal      = 2000
	DefaultWaterGoal        = 8
	DefaultUserWeightKg     = 70.0
	DefaultWeightGoal       = 65.0
	DefaultWeightUnit       = "kg"
	DefaultRemindersEnabled = false
	DefaultSoundsEnabled    = true
	DefaultTimezone         = "Local"

	// Aggregation defaults
	GoodSleepQuality     = 4
	MinSleepQuality      = 1
	MaxSleepQuality      = 5
	SleepChartWindow     = 7
	WeightChartWindow    = 10
	JournalChartWindow   = 10
	MoodChartWindow      = 14
	DefaultStretchSecs   = 30
	DefaultMeditationSec = 300

	// Reminder intervals in minutes
	WaterReminderMin   = 60
	StretchReminderMin = 120
	BreatheReminderMin = 180
)

// Themes lists the accepted theme names.
var Themes = []string{"default", "dark", "calm", "energetic"}
