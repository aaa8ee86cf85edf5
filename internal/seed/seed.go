// Package seed loads the demo dataset into an empty store.
package seed

import (
	"context"
	"fmt"

	"imobdesk/internal/agent"
	"imobdesk/internal/client"
	"imobdesk/internal/commission"
	"imobdesk/internal/contract"
	"imobdesk/internal/property"
	"imobdesk/internal/store"
	"imobdesk/internal/visit"
)

func ptrInt(v int64) *int64       { return &v }
func ptrFloat(v float64) *float64 { return &v }

func properties() []property.Property {
	return []property.Property{
		{ID: "1", Title: "Apartamento Moderno no Centro", Address: "Rua Principal, 123", City: "São Paulo", Price: 750000, Type: property.TypeApartment, Status: property.StatusAvailable, Bedrooms: ptrInt(2), Bathrooms: ptrFloat(2), Area: ptrFloat(95)},
		{ID: "2", Title: "Casa Espaçosa com Jardim", Address: "Avenida dos Carvalhos, 456", City: "Rio de Janeiro", Price: 1250000, Type: property.TypeHouse, Status: property.StatusAvailable, Bedrooms: ptrInt(4), Bathrooms: ptrFloat(3), Area: ptrFloat(210)},
		{ID: "3", Title: "Condomínio de Luxo com Vista para o Mar", Address: "Rua da Praia, 789", City: "Florianópolis", Price: 980000, Type: property.TypeCondo, Status: property.StatusSold, Bedrooms: ptrInt(3), Bathrooms: ptrFloat(2), Area: ptrFloat(150)},
		{ID: "4", Title: "Estúdio Aconchegante no Centro Histórico", Address: "Rua da Videira, 101", City: "Salvador", Price: 550000, Type: property.TypeApartment, Status: property.StatusPending, Bedrooms: ptrInt(1), Bathrooms: ptrFloat(1), Area: ptrFloat(65)},
		{ID: "5", Title: "Sobrado Renovado no Bairro Nobre", Address: "Avenida do Parque, 202", City: "Curitiba", Price: 895000, Type: property.TypeHouse, Status: property.StatusAvailable, Bedrooms: ptrInt(3), Bathrooms: ptrFloat(2.5), Area: ptrFloat(180)},
		{ID: "6", Title: "Terreno com Vista para a Montanha", Address: "Estrada das Serras, 303", City: "Belo Horizonte", Price: 350000, Type: property.TypeLand, Status: property.StatusAvailable, Area: ptrFloat(1200)},
	}
}

func clients() []client.Client {
	return []client.Client{
		{ID: "1", Name: "John Smith", Email: "john.smith@example.com", Phone: "(555) 123-4567", City: "New York", ViewedProperties: 12, ScheduledVisits: 4},
		{ID: "2", Name: "Emily Johnson", Email: "emily.johnson@example.com", Phone: "(555) 234-5678", City: "Los Angeles", ViewedProperties: 8, ScheduledVisits: 2},
		{ID: "3", Name: "Michael Brown", Email: "michael.brown@example.com", Phone: "(555) 345-6789", City: "Chicago", ViewedProperties: 15, ScheduledVisits: 5},
		{ID: "4", Name: "Jessica Davis", Email: "jessica.davis@example.com", Phone: "(555) 456-7890", City: "Miami", ViewedProperties: 5, ScheduledVisits: 1},
		{ID: "5", Name: "David Wilson", Email: "david.wilson@example.com", Phone: "(555) 567-8901", City: "San Francisco", ViewedProperties: 10, ScheduledVisits: 3},
		{ID: "6", Name: "Sarah Martinez", Email: "sarah.martinez@example.com", Phone: "(555) 678-9012", City: "Denver", ViewedProperties: 7, ScheduledVisits: 2},
	}
}

func agents() []agent.Agent {
	return []agent.Agent{
		{ID: "1", Name: "Pedro Almeida"},
		{ID: "2", Name: "Juliana Ferreira"},
		{ID: "3", Name: "Roberto Campos"},
		{ID: "4", Name: "Fernanda Lima"},
		{ID: "5", Name: "Marcos Souza"},
	}
}

func visits() []visit.Visit {
	return []visit.Visit{
		{ID: "1", Date: "2025-04-07", Time: "10:00", ClientID: "1", ClientName: "John Smith", AgentID: "1", AgentName: "Pedro Almeida", PropertyID: "1", PropertyTitle: "Apartamento Moderno no Centro", PropertyAddress: "Rua Principal, 123", Status: visit.StatusScheduled},
		{ID: "2", Date: "2025-04-08", Time: "14:30", ClientID: "2", ClientName: "Emily Johnson", AgentID: "2", AgentName: "Juliana Ferreira", PropertyID: "2", PropertyTitle: "Casa Espaçosa com Jardim", PropertyAddress: "Avenida dos Carvalhos, 456", Status: visit.StatusScheduled},
		{ID: "3", Date: "2025-04-06", Time: "11:15", ClientID: "3", ClientName: "Michael Brown", AgentID: "3", AgentName: "Roberto Campos", PropertyID: "3", PropertyTitle: "Condomínio de Luxo com Vista para o Mar", PropertyAddress: "Rua da Praia, 789", Status: visit.StatusCompleted},
		{ID: "4", Date: "2025-04-09", Time: "16:00", ClientID: "4", ClientName: "Jessica Davis", AgentID: "4", AgentName: "Fernanda Lima", PropertyID: "4", PropertyTitle: "Estúdio Aconchegante no Centro Histórico", PropertyAddress: "Rua da Videira, 101", Status: visit.StatusScheduled},
		{ID: "5", Date: "2025-04-05", Time: "13:45", ClientID: "5", ClientName: "David Wilson", AgentID: "5", AgentName: "Marcos Souza", PropertyID: "5", PropertyTitle: "Sobrado Renovado no Bairro Nobre", PropertyAddress: "Avenida do Parque, 202", Status: visit.StatusCanceled},
	}
}

func contracts() []contract.Contract {
	return []contract.Contract{
		{ID: "1", PropertyID: "1", PropertyTitle: "Apartamento Moderno no Centro", ClientName: "John Smith", Type: contract.TypeSale, Date: "2025-02-10", Status: contract.StatusActive, Value: 750000},
		{ID: "2", PropertyID: "2", PropertyTitle: "Casa Espaçosa com Jardim", ClientName: "Emily Johnson", Type: contract.TypeSale, Date: "2025-03-15", Status: contract.StatusPending, Value: 1250000},
		{ID: "3", PropertyID: "4", PropertyTitle: "Estúdio Aconchegante no Centro Histórico", ClientName: "Michael Brown", Type: contract.TypeRental, Date: "2025-04-01", Status: contract.StatusActive, Value: 2500},
		{ID: "4", PropertyID: "5", PropertyTitle: "Sobrado Renovado no Bairro Nobre", ClientName: "Jessica Davis", Type: contract.TypeSale, Date: "2025-03-20", Status: contract.StatusExpired, Value: 895000},
	}
}

func commissions() []commission.Commission {
	return []commission.Commission{
		{ID: "1", AgentName: "Pedro Almeida", PropertyTitle: "Apartamento Moderno no Centro", ClientName: "John Smith", Date: "2025-02-15", Status: commission.StatusPaid, Value: 22500},
		{ID: "2", AgentName: "Juliana Ferreira", PropertyTitle: "Casa Espaçosa com Jardim", ClientName: "Emily Johnson", Date: "2025-03-20", Status: commission.StatusPending, Value: 37500},
		{ID: "3", AgentName: "Pedro Almeida", PropertyTitle: "Estúdio Aconchegante no Centro Histórico", ClientName: "Michael Brown", Date: "2025-04-05", Status: commission.StatusProcessing, Value: 16500},
	}
}

// Load writes the demo dataset into the store. Collections that already
// hold documents are left untouched so a reseed never clobbers user data.
func Load(ctx context.Context, st store.Store) error {
	propRepo := property.NewRepository(st)
	if empty, err := isEmpty(ctx, st, store.Properties); err != nil {
		return err
	} else if empty {
		for _, p := range properties() {
			if _, err := propRepo.Create(ctx, &p); err != nil {
				return fmt.Errorf("seeding property %s: %w", p.ID, err)
			}
		}
	}

	clientRepo := client.NewRepository(st)
	if empty, err := isEmpty(ctx, st, store.Clients); err != nil {
		return err
	} else if empty {
		// Put rather than Create: the demo counters are part of the dataset.
		for _, c := range clients() {
			if err := clientRepo.Put(ctx, &c); err != nil {
				return fmt.Errorf("seeding client %s: %w", c.ID, err)
			}
		}
	}

	agentRepo := agent.NewRepository(st)
	if empty, err := isEmpty(ctx, st, store.Agents); err != nil {
		return err
	} else if empty {
		for _, a := range agents() {
			if _, err := agentRepo.Create(ctx, &a); err != nil {
				return fmt.Errorf("seeding agent %s: %w", a.ID, err)
			}
		}
	}

	visitRepo := visit.NewRepository(st)
	if empty, err := isEmpty(ctx, st, store.Visits); err != nil {
		return err
	} else if empty {
		for _, v := range visits() {
			if err := visitRepo.Put(ctx, &v); err != nil {
				return fmt.Errorf("seeding visit %s: %w", v.ID, err)
			}
		}
	}

	contractRepo := contract.NewRepository(st)
	if empty, err := isEmpty(ctx, st, store.Contracts); err != nil {
		return err
	} else if empty {
		for _, c := range contracts() {
			if _, err := contractRepo.Create(ctx, &c); err != nil {
				return fmt.Errorf("seeding contract %s: %w", c.ID, err)
			}
		}
	}

	commissionRepo := commission.NewRepository(st)
	if empty, err := isEmpty(ctx, st, store.Commissions); err != nil {
		return err
	} else if empty {
		for _, c := range commissions() {
			if _, err := commissionRepo.Create(ctx, &c); err != nil {
				return fmt.Errorf("seeding commission %s: %w", c.ID, err)
			}
		}
	}

	return nil
}

func isEmpty(ctx context.Context, st store.Store, collection string) (bool, error) {
	docs, err := st.List(ctx, collection)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", collection, err)
	}
	return len(docs) == 0, nil
}
