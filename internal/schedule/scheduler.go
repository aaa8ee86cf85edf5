// Package schedule coordinates visit creation with the derived counters
// kept on client records.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"imobdesk/internal/agent"
	"imobdesk/internal/client"
	"imobdesk/internal/metrics"
	"imobdesk/internal/property"
	"imobdesk/internal/store"
	"imobdesk/internal/visit"
)

// Options configures scheduler behavior.
type Options struct {
	// DecrementOnDelete controls whether deleting a visit decrements the
	// client's ScheduledVisits counter. Off by default: the counter means
	// "visits ever scheduled for this client", so cancellations and
	// deletions do not take it back down.
	DecrementOnDelete bool
}

// Scheduler owns every write path that touches the derived counters on
// client records. Scheduling a visit appends exactly one visit and bumps
// the referenced client's ScheduledVisits by exactly 1.
type Scheduler struct {
	visits     *visit.Repository
	clients    *client.Repository
	agents     *agent.Repository
	properties *property.Repository
	opts       Options
}

// New creates a scheduler over the given store.
func New(s store.Store, opts Options) *Scheduler {
	return &Scheduler{
		visits:     visit.NewRepository(s),
		clients:    client.NewRepository(s),
		agents:     agent.NewRepository(s),
		properties: property.NewRepository(s),
		opts:       opts,
	}
}

// Request describes a visit to schedule.
type Request struct {
	ClientID   string
	AgentID    string
	PropertyID string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Notes      string
}

// Schedule creates a visit with status "scheduled", snapshotting the
// client, agent and property display fields, and increments the client's
// ScheduledVisits counter.
//
// The agent and property must exist: their snapshots anchor the visit.
// A missing client does not fail the call; the visit is still recorded
// and the counter update is skipped. If the counter write fails after
// the visit write succeeded, the visit is rolled back so the two
// collections never end up half-updated.
func (s *Scheduler) Schedule(ctx context.Context, req Request) (*visit.Visit, error) {
	a, err := s.agents.Get(ctx, req.AgentID)
	if err != nil {
		return nil, fmt.Errorf("resolving agent: %w", err)
	}

	p, err := s.properties.Get(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("resolving property: %w", err)
	}

	v := &visit.Visit{
		ID:              uuid.NewString(),
		Date:            req.Date,
		Time:            req.Time,
		ClientID:        req.ClientID,
		AgentID:         a.ID,
		AgentName:       a.Name,
		PropertyID:      p.ID,
		PropertyTitle:   p.Title,
		PropertyAddress: p.Address,
		Status:          visit.StatusScheduled,
		Notes:           req.Notes,
	}

	c, err := s.clients.Get(ctx, req.ClientID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// The visit still goes through; only the counter is skipped.
		slog.Warn("scheduling visit for unknown client, counter not updated",
			"clientId", req.ClientID, "visitId", v.ID)
		c = nil
	case err != nil:
		return nil, err
	default:
		v.ClientName = c.Name
	}

	if err := s.visits.Put(ctx, v); err != nil {
		return nil, err
	}

	if c != nil {
		c.ScheduledVisits++
		if err := s.clients.Put(ctx, c); err != nil {
			if rollbackErr := s.visits.Delete(ctx, v.ID); rollbackErr != nil {
				return nil, fmt.Errorf("updating client counter: %w (visit rollback also failed: %v)", err, rollbackErr)
			}
			return nil, fmt.Errorf("updating client counter: %w", err)
		}
	}

	metrics.VisitsScheduled.Inc()
	return v, nil
}

// SetStatus moves a visit to the given status. Any status may replace
// any other; there is no terminal state.
func (s *Scheduler) SetStatus(ctx context.Context, id string, status visit.Status) (*visit.Visit, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid visit status: %q", status)
	}

	v, err := s.visits.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Status = status
	if err := s.visits.Put(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

// Delete removes a visit. With DecrementOnDelete set, the client's
// counter is taken back down (never below zero); otherwise the counter
// keeps counting visits ever scheduled.
func (s *Scheduler) Delete(ctx context.Context, id string) error {
	v, err := s.visits.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.visits.Delete(ctx, id); err != nil {
		return err
	}

	if !s.opts.DecrementOnDelete {
		return nil
	}

	c, err := s.clients.Get(ctx, v.ClientID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if c.ScheduledVisits > 0 {
		c.ScheduledVisits--
		if err := s.clients.Put(ctx, c); err != nil {
			return fmt.Errorf("updating client counter: %w", err)
		}
	}

	return nil
}

// RecordView increments a client's ViewedProperties counter after the
// client was shown a property's details.
func (s *Scheduler) RecordView(ctx context.Context, clientID string) error {
	c, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return err
	}

	c.ViewedProperties++
	if err := s.clients.Put(ctx, c); err != nil {
		return fmt.Errorf("updating client counter: %w", err)
	}

	return nil
}
