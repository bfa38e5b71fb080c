package models

import "github.com/haven-app/haven/internal/constants"

// User is the single on-device profile row. The store keeps at most one,
// identified by "most recently created".
type User struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	HasCompletedOnboarding bool   `json:"hasCompletedOnboarding"`
	SetupStep              int    `json:"setupStep"`
	CreatedAt              string `json:"createdAt"` // RFC3339 timestamp
	UpdatedAt              string `json:"updatedAt"` // RFC3339 timestamp
}

// SupportPerson is the one emergency contact. Singleton-by-convention.
type SupportPerson struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// SobrietyData holds the user's tracking preferences. Singleton-by-convention.
// SoberDate is a YYYY-MM-DD calendar date; day counts derived from it use
// midnight-to-midnight subtraction, never exact 24-hour deltas.
type SobrietyData struct {
	ID               int64                  `json:"id"`
	TrackingSobriety bool                   `json:"trackingSobriety"`
	TrackingMode     constants.TrackingMode `json:"trackingMode"`
	SoberDate        *string                `json:"soberDate,omitempty"`
	CreatedAt        string                 `json:"createdAt"`
	UpdatedAt        string                 `json:"updatedAt"`
}

// UserReason is one free-text motivation. The set is replaced wholesale on edit.
type UserReason struct {
	ID        int64  `json:"id"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}
