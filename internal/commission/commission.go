// Package commission provides the agent commission model and data access.
package commission

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"imobdesk/internal/filter"
	"imobdesk/internal/store"
)

// Status represents where a commission payment is in its lifecycle.
type Status string

const (
	StatusPaid       Status = "paid"
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
)

// Commission represents an agent's commission on a closed deal.
// AgentName, PropertyTitle and ClientName are display snapshots.
type Commission struct {
	ID            string `json:"id"`
	AgentName     string `json:"agentName"`
	PropertyTitle string `json:"propertyTitle"`
	ClientName    string `json:"clientName"`
	Date          string `json:"date"` // YYYY-MM-DD
	Status        Status `json:"status"`
	Value         int64  `json:"value"`
}

// Filter holds the optional commission criteria.
type Filter struct {
	Search string
	Status string
}

// Apply narrows commissions to those matching every applied criterion.
func (f Filter) Apply(commissions []Commission) []Commission {
	out := make([]Commission, 0, len(commissions))
	for _, c := range commissions {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f Filter) matches(c Commission) bool {
	if filter.Applied(f.Search) {
		if !filter.FoldContains(c.AgentName, f.Search) &&
			!filter.FoldContains(c.PropertyTitle, f.Search) &&
			!filter.FoldContains(c.ClientName, f.Search) {
			return false
		}
	}
	if filter.Applied(f.Status) && string(c.Status) != f.Status {
		return false
	}
	return true
}

// Repository provides data access for commissions.
type Repository struct {
	store store.Store
}

// NewRepository creates a commission repository.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// List returns all commissions in insertion order.
func (r *Repository) List(ctx context.Context) ([]Commission, error) {
	docs, err := r.store.List(ctx, store.Commissions)
	if err != nil {
		return nil, fmt.Errorf("listing commissions: %w", err)
	}

	commissions := make([]Commission, 0, len(docs))
	for _, doc := range docs {
		var c Commission
		if err := json.Unmarshal(doc.Body, &c); err != nil {
			return nil, fmt.Errorf("decoding commission %s: %w", doc.ID, err)
		}
		commissions = append(commissions, c)
	}

	return commissions, nil
}

// Create stores a new commission, assigning it an id.
func (r *Repository) Create(ctx context.Context, c *Commission) (*Commission, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Value < 0 {
		return nil, fmt.Errorf("commission value must be >= 0, got %d", c.Value)
	}

	body, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding commission %s: %w", c.ID, err)
	}
	if err := r.store.Put(ctx, store.Commissions, c.ID, body); err != nil {
		return nil, fmt.Errorf("saving commission %s: %w", c.ID, err)
	}

	return c, nil
}
