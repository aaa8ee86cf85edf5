package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"imobdesk/internal/store"
)

// Repository provides CRUD operations for clients on top of the
// document store.
type Repository struct {
	store store.Store
}

// NewRepository creates a client repository.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// List returns all clients in insertion order.
func (r *Repository) List(ctx context.Context) ([]Client, error) {
	docs, err := r.store.List(ctx, store.Clients)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	clients := make([]Client, 0, len(docs))
	for _, doc := range docs {
		var c Client
		if err := json.Unmarshal(doc.Body, &c); err != nil {
			return nil, fmt.Errorf("decoding client %s: %w", doc.ID, err)
		}
		clients = append(clients, c)
	}

	return clients, nil
}

// Get returns a client by its id.
func (r *Repository) Get(ctx context.Context, id string) (*Client, error) {
	doc, err := r.store.Get(ctx, store.Clients, id)
	if err != nil {
		return nil, fmt.Errorf("getting client %s: %w", id, err)
	}

	var c Client
	if err := json.Unmarshal(doc.Body, &c); err != nil {
		return nil, fmt.Errorf("decoding client %s: %w", id, err)
	}

	return &c, nil
}

// Create stores a new client. The derived counters always start at zero
// regardless of what the caller supplied.
func (r *Repository) Create(ctx context.Context, c *Client) (*Client, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.ViewedProperties = 0
	c.ScheduledVisits = 0
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := r.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update overwrites a client's editable fields. The derived counters are
// carried over from the stored record, never from the caller.
func (r *Repository) Update(ctx context.Context, c *Client) error {
	stored, err := r.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	c.ViewedProperties = stored.ViewedProperties
	c.ScheduledVisits = stored.ScheduledVisits

	if err := c.Validate(); err != nil {
		return err
	}
	return r.save(ctx, c)
}

// Put writes a client as-is, counters included. Reserved for the
// schedule package, which owns the counter update paths.
func (r *Repository) Put(ctx context.Context, c *Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return r.save(ctx, c)
}

// Delete removes a client by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, store.Clients, id); err != nil {
		return fmt.Errorf("deleting client %s: %w", id, err)
	}
	return nil
}

func (r *Repository) save(ctx context.Context, c *Client) error {
	body, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding client %s: %w", c.ID, err)
	}
	if err := r.store.Put(ctx, store.Clients, c.ID, body); err != nil {
		return fmt.Errorf("saving client %s: %w", c.ID, err)
	}
	return nil
}
