// Package contract provides the sale/rental contract model and data access.
package contract

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"imobdesk/internal/filter"
	"imobdesk/internal/store"
)

// Type classifies a contract.
type Type string

const (
	TypeSale   Type = "sale"
	TypeRental Type = "rental"
)

// Status represents where a contract is in its lifecycle.
type Status string

const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
	StatusExpired Status = "expired"
)

// Contract represents a signed or pending property contract.
// PropertyTitle and ClientName are display snapshots taken at creation.
type Contract struct {
	ID            string `json:"id"`
	PropertyID    string `json:"propertyId"`
	PropertyTitle string `json:"propertyTitle"`
	ClientName    string `json:"clientName"`
	Type          Type   `json:"contractType"`
	Date          string `json:"date"` // YYYY-MM-DD
	Status        Status `json:"status"`
	Value         int64  `json:"value"`
}

// Filter holds the optional contract criteria.
type Filter struct {
	Search string
	Status string
	Type   string
}

// Apply narrows contracts to those matching every applied criterion.
func (f Filter) Apply(contracts []Contract) []Contract {
	out := make([]Contract, 0, len(contracts))
	for _, c := range contracts {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f Filter) matches(c Contract) bool {
	if filter.Applied(f.Search) {
		if !filter.FoldContains(c.PropertyTitle, f.Search) &&
			!filter.FoldContains(c.ClientName, f.Search) {
			return false
		}
	}
	if filter.Applied(f.Status) && string(c.Status) != f.Status {
		return false
	}
	if filter.Applied(f.Type) && string(c.Type) != f.Type {
		return false
	}
	return true
}

// Repository provides data access for contracts.
type Repository struct {
	store store.Store
}

// NewRepository creates a contract repository.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// List returns all contracts in insertion order.
func (r *Repository) List(ctx context.Context) ([]Contract, error) {
	docs, err := r.store.List(ctx, store.Contracts)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}

	contracts := make([]Contract, 0, len(docs))
	for _, doc := range docs {
		var c Contract
		if err := json.Unmarshal(doc.Body, &c); err != nil {
			return nil, fmt.Errorf("decoding contract %s: %w", doc.ID, err)
		}
		contracts = append(contracts, c)
	}

	return contracts, nil
}

// Create stores a new contract, assigning it an id.
func (r *Repository) Create(ctx context.Context, c *Contract) (*Contract, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Value < 0 {
		return nil, fmt.Errorf("contract value must be >= 0, got %d", c.Value)
	}

	body, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding contract %s: %w", c.ID, err)
	}
	if err := r.store.Put(ctx, store.Contracts, c.ID, body); err != nil {
		return nil, fmt.Errorf("saving contract %s: %w", c.ID, err)
	}

	return c, nil
}
