package visit

import (
	"context"
	"encoding/json"
	"fmt"

	"imobdesk/internal/store"
)

// Repository provides CRUD operations for visits on top of the
// document store. Visits are created through the schedule package,
// which owns the id assignment and the client counter update.
type Repository struct {
	store store.Store
}

// NewRepository creates a visit repository.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// List returns all visits in insertion order.
func (r *Repository) List(ctx context.Context) ([]Visit, error) {
	docs, err := r.store.List(ctx, store.Visits)
	if err != nil {
		return nil, fmt.Errorf("listing visits: %w", err)
	}

	visits := make([]Visit, 0, len(docs))
	for _, doc := range docs {
		var v Visit
		if err := json.Unmarshal(doc.Body, &v); err != nil {
			return nil, fmt.Errorf("decoding visit %s: %w", doc.ID, err)
		}
		visits = append(visits, v)
	}

	return visits, nil
}

// Get returns a visit by its id.
func (r *Repository) Get(ctx context.Context, id string) (*Visit, error) {
	doc, err := r.store.Get(ctx, store.Visits, id)
	if err != nil {
		return nil, fmt.Errorf("getting visit %s: %w", id, err)
	}

	var v Visit
	if err := json.Unmarshal(doc.Body, &v); err != nil {
		return nil, fmt.Errorf("decoding visit %s: %w", id, err)
	}

	return &v, nil
}

// Put validates and writes a visit.
func (r *Repository) Put(ctx context.Context, v *Visit) error {
	if err := v.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding visit %s: %w", v.ID, err)
	}
	if err := r.store.Put(ctx, store.Visits, v.ID, body); err != nil {
		return fmt.Errorf("saving visit %s: %w", v.ID, err)
	}

	return nil
}

// Delete removes a visit by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, store.Visits, id); err != nil {
		return fmt.Errorf("deleting visit %s: %w", id, err)
	}
	return nil
}
