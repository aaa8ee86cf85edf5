// Package client provides the client (buyer/renter) domain model and
// data access.
package client

import (
	"fmt"
	"strings"

	"imobdesk/internal/filter"
)

// Client represents a person looking for a property.
//
// ViewedProperties and ScheduledVisits are derived counters. They are
// never authored directly: creates start them at zero, updates keep the
// stored values, and the only increment paths live in the schedule
// package.
type Client struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	ViewedProperties int64  `json:"viewedProperties"`
	ScheduledVisits  int64  `json:"scheduledVisits"`
	ImageURL         string `json:"image,omitempty"`
}

// Validate checks the fields a client must have before it is stored.
func (c *Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("client name is required")
	}
	if c.ViewedProperties < 0 || c.ScheduledVisits < 0 {
		return fmt.Errorf("client counters must be non-negative")
	}
	return nil
}

// Search narrows clients to those whose name, email, phone or city
// contains the query. Name, email and city match case-insensitively;
// phone is matched by plain substring. An empty query returns the input
// unchanged in content and order.
func Search(clients []Client, query string) []Client {
	if !filter.Applied(query) {
		return append([]Client(nil), clients...)
	}

	out := make([]Client, 0, len(clients))
	for _, c := range clients {
		if filter.FoldContains(c.Name, query) ||
			filter.FoldContains(c.Email, query) ||
			strings.Contains(c.Phone, query) ||
			filter.FoldContains(c.City, query) {
			out = append(out, c)
		}
	}
	return out
}
