package property

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"imobdesk/internal/store"
)

// Repository provides CRUD operations for properties on top of the
// document store.
type Repository struct {
	store store.Store
}

// NewRepository creates a property repository.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// List returns all properties in insertion order.
func (r *Repository) List(ctx context.Context) ([]Property, error) {
	docs, err := r.store.List(ctx, store.Properties)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	properties := make([]Property, 0, len(docs))
	for _, doc := range docs {
		var p Property
		if err := json.Unmarshal(doc.Body, &p); err != nil {
			return nil, fmt.Errorf("decoding property %s: %w", doc.ID, err)
		}
		properties = append(properties, p)
	}

	return properties, nil
}

// Get returns a property by its id.
func (r *Repository) Get(ctx context.Context, id string) (*Property, error) {
	doc, err := r.store.Get(ctx, store.Properties, id)
	if err != nil {
		return nil, fmt.Errorf("getting property %s: %w", id, err)
	}

	var p Property
	if err := json.Unmarshal(doc.Body, &p); err != nil {
		return nil, fmt.Errorf("decoding property %s: %w", id, err)
	}

	return &p, nil
}

// Create validates and stores a new property, assigning it an id.
func (r *Repository) Create(ctx context.Context, p *Property) (*Property, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := r.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update validates and overwrites an existing property.
func (r *Repository) Update(ctx context.Context, p *Property) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := r.store.Get(ctx, store.Properties, p.ID); err != nil {
		return fmt.Errorf("getting property %s: %w", p.ID, err)
	}
	return r.save(ctx, p)
}

// Delete removes a property by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, store.Properties, id); err != nil {
		return fmt.Errorf("deleting property %s: %w", id, err)
	}
	return nil
}

func (r *Repository) save(ctx context.Context, p *Property) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding property %s: %w", p.ID, err)
	}
	if err := r.store.Put(ctx, store.Properties, p.ID, body); err != nil {
		return fmt.Errorf("saving property %s: %w", p.ID, err)
	}
	return nil
}
