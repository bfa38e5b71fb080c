package storage

import (
	"errors"

	"github.com/haven-app/haven/internal/models"
)

// ErrAlreadyCheckedIn is returned when a second check-in is created for the
// same calendar date.
var ErrAlreadyCheckedIn = errors.New("already checked in today")

// ErrNotFound is returned when a record with the given id does not exist.
var ErrNotFound = errors.New("record not found")

type Provider interface {
	// Lifecycle
	Init() error
	Close() error
	ResetDatabase() error

	// User
	SaveUser(user models.User) (models.User, error)
	GetUser() (*models.User, error)
	UpdateUserName(name string) error
	SetOnboardingComplete(done bool) error
	SetSetupStep(step int) error

	// Support person
	SaveSupportPerson(name, phone string) (models.SupportPerson, error)
	GetSupportPerson() (*models.SupportPerson, error)

	// Sobriety tracking
	SaveSobrietyData(data models.SobrietyData) (models.SobrietyData, error)
	GetSobrietyData() (*models.SobrietyData, error)

	// Reasons
	ReplaceUserReasons(reasons []string) ([]models.UserReason, error)
	GetUserReasons() ([]models.UserReason, error)

	// Journal
	CreateJournalEntry(content, timestamp string) (models.JournalEntry, error)
	GetJournalEntries() ([]models.JournalEntry, error)
	UpdateJournalEntry(id int64, content string) error
	DeleteJournalEntry(id int64) error

	// Intentions
	CreateIntention(content, timestamp string) (models.Intention, error)
	GetIntentions() ([]models.Intention, error)
	GetCurrentIntention() (*models.Intention, error)
	UpdateIntention(id int64, content string) error
	DeleteIntention(id int64) error

	// Daily check-ins
	CreateDailyCheckIn(checkIn models.DailyCheckIn) (models.DailyCheckIn, error)
	GetDailyCheckIns() ([]models.DailyCheckIn, error)
	GetTodayCheckIn() (*models.DailyCheckIn, error)

	// SOS activation log
	LogSOSActivation(timestamp string) models.SOSLog
	GetSOSLogs() ([]models.SOSLog, error)
	GetAllSOSLogs() ([]models.SOSLog, error)

	// Encouragements
	GetEncouragements() ([]models.Encouragement, error)
	GetRandomUnseenEncouragement() (*models.Encouragement, error)
	MarkEncouragementSeen(id int64) error
	ResetAllEncouragements() error
	GetEncouragementStats() (models.EncouragementStats, error)

	// Bulk resets
	ClearUserData() error
	ClearAllData() error

	// Snapshot replay (insert-or-replace keyed by original id)
	UpsertUser(user models.User) error
	UpsertSupportPerson(person models.SupportPerson) error
	UpsertSobrietyData(data models.SobrietyData) error
	UpsertUserReason(reason models.UserReason) error
	UpsertJournalEntry(entry models.JournalEntry) error
	UpsertIntention(intention models.Intention) error
	UpsertDailyCheckIn(checkIn models.DailyCheckIn) error
	UpsertSOSLog(log models.SOSLog) error

	// Restore-skip inputs
	HasUserData() (bool, error)
	HasAnyContent() (bool, error)

	// Utils
	GetConfigPath() string
}
