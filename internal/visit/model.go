// Package visit provides the scheduled visit domain model and data access.
package visit

import (
	"fmt"
	"time"
)

// Status represents where a visit is in its workflow. Transitions are
// unrestricted in any direction and there is no terminal state.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// IsValid checks if a visit status is recognized.
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Visit represents a scheduled property visit.
//
// ClientName, AgentName, PropertyTitle and PropertyAddress are snapshots
// taken when the visit is scheduled. They are display copies and are not
// re-synchronized if the referenced records later change.
type Visit struct {
	ID              string `json:"id"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	ClientID        string `json:"clientId"`
	ClientName      string `json:"clientName"`
	AgentID         string `json:"agentId"`
	AgentName       string `json:"agentName"`
	PropertyID      string `json:"propertyId"`
	PropertyTitle   string `json:"propertyTitle"`
	PropertyAddress string `json:"propertyAddress"`
	Status          Status `json:"status"`
	Notes           string `json:"notes,omitempty"`
}

// Validate checks the fields a visit must have before it is stored.
func (v *Visit) Validate() error {
	if _, err := time.Parse("2006-01-02", v.Date); err != nil {
		return fmt.Errorf("invalid visit date (use YYYY-MM-DD): %w", err)
	}
	if _, err := time.Parse("15:04", v.Time); err != nil {
		return fmt.Errorf("invalid visit time (use HH:MM): %w", err)
	}
	if v.ClientID == "" {
		return fmt.Errorf("visit client id is required")
	}
	if !v.Status.IsValid() {
		return fmt.Errorf("invalid visit status: %q", v.Status)
	}
	return nil
}
