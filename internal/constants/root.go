package constants

// TrackingMode represents how the user wants to track their sobriety
type TrackingMode string

// EnergyLevel represents the energy rating on a daily check-in
type EnergyLevel string

// MoodTone represents the emotional tone rating on a daily check-in
type MoodTone string

const (
	AppName           = "haven"
	DefaultConfigPath = "~/.config/haven/haven.db"
	SettingsFileName  = "settings.json"
	Version           = "v0.3.0"

	// DateFormat is the standard calendar-date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	BackupKey          = "haven.backup.snapshot"
	BackupVersion      = "1.0.0"
	BackupMaxAttempts  = 3
	BackupBaseDelayMs  = 750
	BackupSizeWarnByte = 5 * 1024 * 1024
	BackupStaleDays    = 30

	// SOSLogDisplayLimit caps how many SOS activations are read back for display
	SOSLogDisplayLimit = 50

	// Tracking mode constants
	TrackingSober  TrackingMode = "sober"
	TrackingTrying TrackingMode = "trying"

	// Energy level constants
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"

	// Mood tone constants
	ToneSad   MoodTone = "sad"
	ToneCalm  MoodTone = "calm"
	ToneHappy MoodTone = "happy"
)
