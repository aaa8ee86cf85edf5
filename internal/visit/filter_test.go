package visit

import (
	"reflect"
	"testing"
)

func testVisits() []Visit {
	return []Visit{
		{ID: "1", Date: "2025-04-07", Time: "10:00", ClientName: "John Smith", AgentName: "Sarah Johnson", PropertyTitle: "Apartamento Moderno no Centro", PropertyAddress: "Rua Principal, 123, São Paulo", Status: StatusScheduled},
		{ID: "2", Date: "2025-04-08", Time: "14:30", ClientName: "Emily Johnson", AgentName: "Michael Brown", PropertyTitle: "Casa Familiar Espaçosa com Jardim", PropertyAddress: "Avenida Carvalho, 456, Rio de Janeiro", Status: StatusScheduled},
		{ID: "3", Date: "2025-04-06", Time: "11:15", ClientName: "Michael Brown", AgentName: "Jessica Davis", PropertyTitle: "Condomínio de Luxo com Vista para o Mar", PropertyAddress: "Rua da Praia, 789, Salvador", Status: StatusCompleted},
		{ID: "4", Date: "2025-04-05", Time: "13:45", ClientName: "David Wilson", AgentName: "Sarah Martinez", PropertyTitle: "Casa Geminada Renovada", PropertyAddress: "Avenida do Parque, 202, Curitiba", Status: StatusCanceled},
	}
}

func ids(visits []Visit) []string {
	out := make([]string, 0, len(visits))
	for _, v := range visits {
		out = append(out, v.ID)
	}
	return out
}

func TestEmptyFilterIsIdentity(t *testing.T) {
	visits := testVisits()

	got := Filter{}.Apply(visits)
	if !reflect.DeepEqual(got, visits) {
		t.Errorf("empty filter changed the collection: %v", ids(got))
	}
}

func TestSearchCoversSnapshotFields(t *testing.T) {
	visits := testVisits()

	cases := []struct {
		search string
		want   []string
	}{
		{"emily", []string{"2"}},         // client name
		{"jessica", []string{"3"}},       // agent name
		{"geminada", []string{"4"}},      // property title
		{"rua principal", []string{"1"}}, // property address
	}

	for _, c := range cases {
		got := Filter{Search: c.search}.Apply(visits)
		if !reflect.DeepEqual(ids(got), c.want) {
			t.Errorf("search %q = %v, want %v", c.search, ids(got), c.want)
		}
	}
}

func TestStatusFilter(t *testing.T) {
	visits := testVisits()

	got := Filter{Status: "scheduled"}.Apply(visits)
	if !reflect.DeepEqual(ids(got), []string{"1", "2"}) {
		t.Errorf("status scheduled = %v, want [1 2]", ids(got))
	}

	got = Filter{Status: "all"}.Apply(visits)
	if len(got) != len(visits) {
		t.Errorf("status all = %v, want full collection", ids(got))
	}
}

func TestDateFilterIsExactEquality(t *testing.T) {
	visits := testVisits()

	got := Filter{Date: "2025-04-07"}.Apply(visits)
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Errorf("date ISO = %v, want [1]", ids(got))
	}

	// The same day in BR format normalizes to the same calendar date.
	got = Filter{Date: "07/04/2025"}.Apply(visits)
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Errorf("date BR = %v, want [1]", ids(got))
	}

	// Partial date strings are not containment-matched.
	got = Filter{Date: "2025-04"}.Apply(visits)
	if len(got) != len(visits) {
		t.Errorf("unparseable date should be ignored, got %v", ids(got))
	}
}

func TestCombinedCriteria(t *testing.T) {
	visits := testVisits()

	got := Filter{Search: "casa", Status: "scheduled"}.Apply(visits)
	if !reflect.DeepEqual(ids(got), []string{"2"}) {
		t.Errorf("search+status = %v, want [2]", ids(got))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	visits := testVisits()
	f := Filter{Status: "scheduled"}

	once := f.Apply(visits)
	twice := f.Apply(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestStatusTransitionsUnrestricted(t *testing.T) {
	v := Visit{ID: "1", Date: "2025-04-07", Time: "10:00", ClientID: "c1", Status: StatusCanceled}

	// A canceled visit may be marked completed; there is no terminal state.
	v.Status = StatusCompleted
	if err := v.Validate(); err != nil {
		t.Fatalf("canceled -> completed should validate: %v", err)
	}
}
