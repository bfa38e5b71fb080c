// Package export produces the user-triggered "export all data" document.
// This is a one-way format intended for human sharing, not a second
// persistence contract: restore never reads it.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haven-app/haven/internal/models"
	"github.com/haven-app/haven/internal/sobriety"
	"github.com/haven-app/haven/internal/storage"
)

// Document is a superset of the backup snapshot: it adds an export id,
// encouragement stats, and the resolved sobriety day count.
type Document struct {
	ExportID           string                    `json:"exportId"`
	ExportedAt         string                    `json:"exportedAt"`
	User               *models.User              `json:"user"`
	SupportPerson      *models.SupportPerson     `json:"supportPerson"`
	SobrietyData       *models.SobrietyData      `json:"sobrietyData"`
	DaysSober          *int                      `json:"daysSober,omitempty"`
	UserReasons        []models.UserReason       `json:"userReasons"`
	JournalEntries     []models.JournalEntry     `json:"journalEntries"`
	Intentions         []models.Intention        `json:"intentions"`
	DailyCheckIns      []models.DailyCheckIn     `json:"dailyCheckIns"`
	SOSLogs            []models.SOSLog           `json:"sosLogs"`
	EncouragementStats models.EncouragementStats `json:"encouragementStats"`
}

// Build assembles the export document from the current store state.
func Build(store storage.Provider) (Document, error) {
	doc := Document{
		ExportID:   uuid.New().String(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var err error
	if doc.User, err = store.GetUser(); err != nil {
		return Document{}, err
	}
	if doc.SupportPerson, err = store.GetSupportPerson(); err != nil {
		return Document{}, err
	}
	if doc.SobrietyData, err = store.GetSobrietyData(); err != nil {
		return Document{}, err
	}
	if doc.UserReasons, err = store.GetUserReasons(); err != nil {
		return Document{}, err
	}
	if doc.JournalEntries, err = store.GetJournalEntries(); err != nil {
		return Document{}, err
	}
	if doc.Intentions, err = store.GetIntentions(); err != nil {
		return Document{}, err
	}
	if doc.DailyCheckIns, err = store.GetDailyCheckIns(); err != nil {
		return Document{}, err
	}
	if doc.SOSLogs, err = store.GetAllSOSLogs(); err != nil {
		return Document{}, err
	}
	if doc.EncouragementStats, err = store.GetEncouragementStats(); err != nil {
		return Document{}, err
	}

	if doc.SobrietyData != nil && doc.SobrietyData.SoberDate != nil {
		if days, countErr := sobriety.DaysSober(*doc.SobrietyData.SoberDate, time.Now()); countErr == nil {
			doc.DaysSober = &days
		}
	}

	return doc, nil
}

// Marshal renders the document as indented JSON for sharing.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}
