package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unihostel/internal/domain/entity"
)

func sampleHostels() []*entity.Hostel {
	return []*entity.Hostel{
		{
			ID:         "h1",
			Name:       "Sunrise",
			Location:   "Near LU",
			Type:       "coed",
			Rating:     4.8,
			Available:  true,
			Facilities: []string{"wifi", "ac"},
		},
		{
			ID:         "h2",
			Name:       "Campus Edge",
			Location:   "Near BBAU",
			Type:       "boys",
			Rating:     4.5,
			Available:  false,
			Facilities: []string{"wifi", "food", "laundry"},
		},
		{
			ID:         "h3",
			Name:       "Green Nest",
			Location:   "Near LU",
			Type:       "girls",
			Rating:     3.9,
			Available:  true,
			Facilities: []string{"food", "security"},
		},
	}
}

func hostelIDs(hostels []*entity.Hostel) []string {
	ids := make([]string, 0, len(hostels))
	for _, h := range hostels {
		ids = append(ids, h.ID)
	}
	return ids
}

func TestFilterHostelsEmptyCriteriaReturnsAllInOrder(t *testing.T) {
	hostels := sampleHostels()

	result := FilterHostels(hostels, FilterCriteria{})

	assert.Equal(t, []string{"h1", "h2", "h3"}, hostelIDs(result))
}

func TestFilterHostelsByType(t *testing.T) {
	hostels := sampleHostels()

	result := FilterHostels(hostels, FilterCriteria{Type: "boys"})

	assert.Equal(t, []string{"h2"}, hostelIDs(result))
}

func TestFilterHostelsAvailableOnly(t *testing.T) {
	hostels := sampleHostels()

	result := FilterHostels(hostels, FilterCriteria{AvailableOnly: true})

	assert.Equal(t, []string{"h1", "h3"}, hostelIDs(result))
}

func TestFilterHostelsQueryIsCaseInsensitive(t *testing.T) {
	hostels := sampleHostels()

	byName := FilterHostels(hostels, FilterCriteria{Query: "sunrise"})
	assert.Equal(t, []string{"h1"}, hostelIDs(byName))

	byLocation := FilterHostels(hostels, FilterCriteria{Query: "bbau"})
	assert.Equal(t, []string{"h2"}, hostelIDs(byLocation))
}

func TestFilterHostelsLocationSentinelAll(t *testing.T) {
	hostels := sampleHostels()

	result := FilterHostels(hostels, FilterCriteria{Location: "all"})

	assert.Len(t, result, len(hostels))
}

func TestFilterHostelsLocationIsSubstringMatch(t *testing.T) {
	hostels := sampleHostels()

	result := FilterHostels(hostels, FilterCriteria{Location: "LU"})

	assert.Equal(t, []string{"h1", "h3"}, hostelIDs(result))
}

func TestFilterHostelsFacilitiesRequireAll(t *testing.T) {
	hostels := sampleHostels()

	// h1 has {wifi, ac}: wifi+gym must not match, wifi+ac and wifi must.
	assert.Empty(t, FilterHostels(hostels, FilterCriteria{Facilities: []string{"wifi", "gym"}}))
	assert.Equal(t, []string{"h1"}, hostelIDs(FilterHostels(hostels, FilterCriteria{Facilities: []string{"wifi", "ac"}})))
	assert.Equal(t, []string{"h1", "h2"}, hostelIDs(FilterHostels(hostels, FilterCriteria{Facilities: []string{"wifi"}})))
}

func TestFilterHostelsMinRating(t *testing.T) {
	hostels := sampleHostels()

	result := FilterHostels(hostels, FilterCriteria{MinRating: 4.0})

	assert.Equal(t, []string{"h1", "h2"}, hostelIDs(result))
}

func TestFilterHostelsCriteriaCompose(t *testing.T) {
	hostels := sampleHostels()

	// Applying two criteria together must equal applying them in sequence,
	// in either order.
	combined := FilterHostels(hostels, FilterCriteria{MinRating: 4.0, AvailableOnly: true})
	sequential := FilterHostels(FilterHostels(hostels, FilterCriteria{MinRating: 4.0}), FilterCriteria{AvailableOnly: true})
	reversed := FilterHostels(FilterHostels(hostels, FilterCriteria{AvailableOnly: true}), FilterCriteria{MinRating: 4.0})

	assert.Equal(t, hostelIDs(sequential), hostelIDs(combined))
	assert.Equal(t, hostelIDs(reversed), hostelIDs(combined))
	assert.Equal(t, []string{"h1"}, hostelIDs(combined))
}

func TestFilterHostelsDoesNotMutateInput(t *testing.T) {
	hostels := sampleHostels()

	FilterHostels(hostels, FilterCriteria{Type: "girls"})

	assert.Equal(t, []string{"h1", "h2", "h3"}, hostelIDs(hostels))
}

func TestFilterHostelsNoMatchReturnsEmptySlice(t *testing.T) {
	hostels := sampleHostels()

	result := FilterHostels(hostels, FilterCriteria{Query: "no such hostel"})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
