// Package property provides the property listing domain model and data access.
package property

import "fmt"

// Type classifies a property listing.
type Type string

const (
	TypeHouse     Type = "house"
	TypeApartment Type = "apartment"
	TypeCondo     Type = "condo"
	TypeLand      Type = "land"
)

// IsValid checks if a property type is recognized.
func (t Type) IsValid() bool {
	switch t {
	case TypeHouse, TypeApartment, TypeCondo, TypeLand:
		return true
	}
	return false
}

// Status represents where a listing is in the sales workflow.
// Transitions are unrestricted: any status may replace any other.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusPending   Status = "pending"
)

// IsValid checks if a listing status is recognized.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusPending:
		return true
	}
	return false
}

// Property represents a managed real-estate listing.
type Property struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Price     int64    `json:"price"`
	Type      Type     `json:"type"`
	Status    Status   `json:"status"`
	Bedrooms  *int64   `json:"bedrooms,omitempty"`
	Bathrooms *float64 `json:"bathrooms,omitempty"`
	Area      *float64 `json:"area,omitempty"`
	ImageURL  string   `json:"image,omitempty"`
}

// Validate checks the fields a listing must have before it is stored.
func (p *Property) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("property title is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("property price must be >= 0, got %d", p.Price)
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("invalid property type: %q", p.Type)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("invalid property status: %q", p.Status)
	}
	return nil
}
