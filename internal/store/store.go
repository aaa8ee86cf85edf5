// Package store defines the document store contract that all
// persistence drivers implement.
package store

import (
	"context"
	"errors"
)

// Collection names used across the application.
const (
	Properties  = "properties"
	Clients     = "clients"
	Agents      = "agents"
	Visits      = "visits"
	Contracts   = "contracts"
	Commissions = "commissions"
)

// ErrNotFound is returned when a document id does not exist in a collection.
var ErrNotFound = errors.New("document not found")

// Document is a single record in a collection, serialized as JSON.
type Document struct {
	ID   string
	Body []byte
}

// Store is a minimal document store keyed by collection name and id.
// List returns documents in insertion order. Put upserts: an existing
// document keeps its position, a new one is appended.
type Store interface {
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Put(ctx context.Context, collection, id string, body []byte) error
	Delete(ctx context.Context, collection, id string) error
	Close() error
}
