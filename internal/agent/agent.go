// Package agent provides the listing agent model and data access.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"imobdesk/internal/store"
)

// Agent represents a listing agent who conducts property visits.
type Agent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Repository provides data access for agents.
type Repository struct {
	store store.Store
}

// NewRepository creates an agent repository.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// List returns all agents in insertion order.
func (r *Repository) List(ctx context.Context) ([]Agent, error) {
	docs, err := r.store.List(ctx, store.Agents)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}

	agents := make([]Agent, 0, len(docs))
	for _, doc := range docs {
		var a Agent
		if err := json.Unmarshal(doc.Body, &a); err != nil {
			return nil, fmt.Errorf("decoding agent %s: %w", doc.ID, err)
		}
		agents = append(agents, a)
	}

	return agents, nil
}

// Get returns an agent by its id.
func (r *Repository) Get(ctx context.Context, id string) (*Agent, error) {
	doc, err := r.store.Get(ctx, store.Agents, id)
	if err != nil {
		return nil, fmt.Errorf("getting agent %s: %w", id, err)
	}

	var a Agent
	if err := json.Unmarshal(doc.Body, &a); err != nil {
		return nil, fmt.Errorf("decoding agent %s: %w", id, err)
	}

	return &a, nil
}

// Create stores a new agent, assigning it an id.
func (r *Repository) Create(ctx context.Context, a *Agent) (*Agent, error) {
	if a.Name == "" {
		return nil, fmt.Errorf("agent name is required")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	body, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encoding agent %s: %w", a.ID, err)
	}
	if err := r.store.Put(ctx, store.Agents, a.ID, body); err != nil {
		return nil, fmt.Errorf("saving agent %s: %w", a.ID, err)
	}

	return a, nil
}
