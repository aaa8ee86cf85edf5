package visit

import "imobdesk/internal/filter"

// Filter holds the optional visit criteria. Empty fields (and the "all"
// sentinel) are ignored; applied fields combine with AND.
//
// Date matches by exact calendar-date equality against the visit's
// normalized date, not by display-string containment.
type Filter struct {
	Search string
	Status string
	Date   string
}

// Apply narrows visits to those matching every applied criterion.
// The input is not mutated and relative order is preserved.
func (f Filter) Apply(visits []Visit) []Visit {
	out := make([]Visit, 0, len(visits))
	for _, v := range visits {
		if f.matches(v) {
			out = append(out, v)
		}
	}
	return out
}

func (f Filter) matches(v Visit) bool {
	if filter.Applied(f.Search) {
		if !filter.FoldContains(v.ClientName, f.Search) &&
			!filter.FoldContains(v.AgentName, f.Search) &&
			!filter.FoldContains(v.PropertyTitle, f.Search) &&
			!filter.FoldContains(v.PropertyAddress, f.Search) {
			return false
		}
	}
	if filter.Applied(f.Status) && string(v.Status) != f.Status {
		return false
	}
	if day, ok := filter.Date(f.Date); ok && v.Date != day {
		return false
	}
	return true
}
