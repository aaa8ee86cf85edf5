package property

import "imobdesk/internal/filter"

// Filter holds the optional listing criteria. Empty fields (and the
// "all" sentinel) are ignored; applied fields combine with AND.
type Filter struct {
	Search   string
	Status   string
	Type     string
	City     string
	MinPrice string
	MaxPrice string
}

// Apply narrows properties to those matching every applied criterion.
// The input is not mutated and relative order is preserved.
func (f Filter) Apply(properties []Property) []Property {
	out := make([]Property, 0, len(properties))
	for _, p := range properties {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Filter) matches(p Property) bool {
	if filter.Applied(f.Search) {
		if !filter.FoldContains(p.Title, f.Search) &&
			!filter.FoldContains(p.Address, f.Search) &&
			!filter.FoldContains(p.City, f.Search) {
			return false
		}
	}
	if filter.Applied(f.Status) && string(p.Status) != f.Status {
		return false
	}
	if filter.Applied(f.Type) && string(p.Type) != f.Type {
		return false
	}
	if filter.Applied(f.City) && p.City != f.City {
		return false
	}
	if min, ok := filter.Bound(f.MinPrice); ok && p.Price < min {
		return false
	}
	if max, ok := filter.Bound(f.MaxPrice); ok && p.Price > max {
		return false
	}
	return true
}
