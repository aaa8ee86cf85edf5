// Package stats computes the dashboard summary counts.
package stats

import (
	"context"
	"fmt"
	"time"

	"imobdesk/internal/client"
	"imobdesk/internal/contract"
	"imobdesk/internal/property"
	"imobdesk/internal/store"
	"imobdesk/internal/visit"
)

// Summary holds the dashboard counts.
type Summary struct {
	Properties         int            `json:"properties"`
	PropertiesByStatus map[string]int `json:"propertiesByStatus"`
	Clients            int            `json:"clients"`
	Visits             int            `json:"visits"`
	VisitsByStatus     map[string]int `json:"visitsByStatus"`
	VisitsToday        int            `json:"visitsToday"`
	ActiveContracts    int            `json:"activeContracts"`
	TotalContractValue int64          `json:"totalContractValue"`
}

// Collect reads every collection and tallies the dashboard counts.
func Collect(ctx context.Context, st store.Store) (*Summary, error) {
	return collectAt(ctx, st, time.Now().Format("2006-01-02"))
}

func collectAt(ctx context.Context, st store.Store, today string) (*Summary, error) {
	properties, err := property.NewRepository(st).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting property stats: %w", err)
	}

	clients, err := client.NewRepository(st).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting client stats: %w", err)
	}

	visits, err := visit.NewRepository(st).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting visit stats: %w", err)
	}

	contracts, err := contract.NewRepository(st).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting contract stats: %w", err)
	}

	s := &Summary{
		Properties:         len(properties),
		PropertiesByStatus: make(map[string]int),
		Clients:            len(clients),
		Visits:             len(visits),
		VisitsByStatus:     make(map[string]int),
	}

	for _, p := range properties {
		s.PropertiesByStatus[string(p.Status)]++
	}
	for _, v := range visits {
		s.VisitsByStatus[string(v.Status)]++
		if v.Date == today {
			s.VisitsToday++
		}
	}
	for _, c := range contracts {
		if c.Status == contract.StatusActive {
			s.ActiveContracts++
		}
		s.TotalContractValue += c.Value
	}

	return s, nil
}
