package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "wellhub"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/wellhub/wellhub.db"
	Version            = "v0.3.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wellhub-"

	// Notify constants
	NotifierLockfileName   = "wellhub-notifier.lock"
	TrayAppIdentifier      = "com.julianstephens.wellhub"
	TrayProcessPrefix      = "wellhub-tray"
	NotificationDuration   = 5 * time.Second
	ReminderToastDuration  = 10 * time.Second
	WatchDebounce          = 250 * time.Millisecond
	DefaultTimerTickPeriod = time.Second
)

// Session states. The first eight are the tab bar, in order.
const (
	StateDashboard SessionState = iota
	StateSleep
	StateWeight
	StateWater
	StateMeals
	StateMood
	StateJournal
	StateBreathe
	StateForm
	StateConfirmDelete
)

// NumMainTabs is the number of states reachable with tab.
const NumMainTabs = int(StateBreathe) + 1

// TabTitles lists the tab labels in SessionState order.
var TabTitles = []string{"Dashboard", "Sleep", "Weight", "Water", "Meals", "Mood", "Journal", "Breathe"}
