package client

import (
	"context"
	"reflect"
	"testing"

	"imobdesk/internal/store/memory"
)

func testClients() []Client {
	return []Client{
		{ID: "1", Name: "John Smith", Email: "john.smith@example.com", Phone: "(555) 123-4567", City: "New York", ViewedProperties: 12, ScheduledVisits: 4},
		{ID: "2", Name: "Emily Johnson", Email: "emily.johnson@example.com", Phone: "(555) 234-5678", City: "Los Angeles", ViewedProperties: 8, ScheduledVisits: 2},
		{ID: "3", Name: "Michael Brown", Email: "michael.brown@example.com", Phone: "(555) 345-6789", City: "Chicago", ViewedProperties: 15, ScheduledVisits: 5},
	}
}

func names(clients []Client) []string {
	out := make([]string, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.Name)
	}
	return out
}

func TestSearchEmptyQueryIsIdentity(t *testing.T) {
	clients := testClients()

	got := Search(clients, "")
	if !reflect.DeepEqual(got, clients) {
		t.Errorf("empty query changed the collection: %v", names(got))
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	clients := testClients()

	upper := Search(clients, "SMITH")
	lower := Search(clients, "smith")
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("case changed results: %v vs %v", names(upper), names(lower))
	}
	if len(lower) != 1 || lower[0].Name != "John Smith" {
		t.Errorf("search smith = %v, want [John Smith]", names(lower))
	}
}

func TestSearchCoversEmailPhoneCity(t *testing.T) {
	clients := testClients()

	cases := []struct {
		query string
		want  []string
	}{
		{"emily.johnson@", []string{"Emily Johnson"}},
		{"345-6789", []string{"Michael Brown"}},
		{"chicago", []string{"Michael Brown"}},
	}

	for _, c := range cases {
		got := Search(clients, c.query)
		if !reflect.DeepEqual(names(got), c.want) {
			t.Errorf("search %q = %v, want %v", c.query, names(got), c.want)
		}
	}
}

func TestSearchIsSubsetAndIdempotent(t *testing.T) {
	clients := testClients()

	once := Search(clients, "john")
	twice := Search(once, "john")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("search not idempotent: %v vs %v", names(once), names(twice))
	}
	for _, c := range once {
		found := false
		for _, orig := range clients {
			if orig.ID == c.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("search invented client %s", c.ID)
		}
	}
}

func TestCreateZeroesCounters(t *testing.T) {
	repo := NewRepository(memory.New())
	ctx := context.Background()

	c, err := repo.Create(ctx, &Client{Name: "John Smith", ViewedProperties: 99, ScheduledVisits: 99})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ViewedProperties != 0 || c.ScheduledVisits != 0 {
		t.Errorf("counters = %d/%d, want 0/0", c.ViewedProperties, c.ScheduledVisits)
	}
}

func TestUpdateKeepsStoredCounters(t *testing.T) {
	repo := NewRepository(memory.New())
	ctx := context.Background()

	c, err := repo.Create(ctx, &Client{Name: "John Smith"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Simulate the schedule package bumping a counter.
	c.ScheduledVisits = 3
	if err := repo.Put(ctx, c); err != nil {
		t.Fatalf("put: %v", err)
	}

	// A user edit must not be able to author the counter.
	edit := &Client{ID: c.ID, Name: "John A. Smith", ScheduledVisits: 42}
	if err := repo.Update(ctx, edit); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "John A. Smith" {
		t.Errorf("name = %q, want updated name", got.Name)
	}
	if got.ScheduledVisits != 3 {
		t.Errorf("scheduledVisits = %d, want 3 (stored value)", got.ScheduledVisits)
	}
}
