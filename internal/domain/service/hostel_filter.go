package service

import (
	"strings"

	"unihostel/internal/domain/entity"
)

// FilterCriteria are the listing-page filter controls. Zero values mean
// "not set"; the sentinel "all" on Location and Type also means no
// constraint. All set criteria are ANDed together.
type FilterCriteria struct {
	Query         string
	Location      string
	Type          string
	Facilities    []string
	MinRating     float64
	AvailableOnly bool
}

// FilterHostels returns the hostels matching every active criterion,
// preserving input order. It never mutates the input and returns an empty
// slice when nothing matches. Firestore gives us no full-text or composite
// containment queries, so the whole fetched set is filtered in memory.
func FilterHostels(all []*entity.Hostel, criteria FilterCriteria) []*entity.Hostel {
	matched := make([]*entity.Hostel, 0, len(all))

	for _, hostel := range all {
		if matchesHostel(hostel, criteria) {
			matched = append(matched, hostel)
		}
	}

	return matched
}

func matchesHostel(hostel *entity.Hostel, criteria FilterCriteria) bool {
	if criteria.Query != "" {
		q := strings.ToLower(criteria.Query)
		if !strings.Contains(strings.ToLower(hostel.Name), q) &&
			!strings.Contains(strings.ToLower(hostel.Location), q) {
			return false
		}
	}

	if criteria.Location != "" && criteria.Location != "all" &&
		!strings.Contains(hostel.Location, criteria.Location) {
		return false
	}

	if criteria.Type != "" && criteria.Type != "all" && hostel.Type != criteria.Type {
		return false
	}

	// Every selected facility must be present, not just one.
	for _, facility := range criteria.Facilities {
		if !containsString(hostel.Facilities, facility) {
			return false
		}
	}

	if hostel.Rating < criteria.MinRating {
		return false
	}

	if criteria.AvailableOnly && !hostel.Available {
		return false
	}

	return true
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
