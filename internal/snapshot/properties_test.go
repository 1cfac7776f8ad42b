package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"banglprop/server/internal/models"
)

func propertyFixtures() []models.PropertyRecord {
	return []models.PropertyRecord{
		{
			URL: "https://x.com/ready", Name: "Ready Towers", Handover: "Ready to Move",
			PriceMinLakhs: floatPtr(50), Status: models.StatusReadyToMove,
			Locality: "Whitefield", Builder: "Prestige", Source: "99acres",
			UpdatedAt: "2025-06-01 10:00:00",
		},
		{
			URL: "https://x.com/y2026", Name: "Soon Homes", Handover: "Jun 2026",
			HandoverYear: intPtr(2026), PriceMinLakhs: floatPtr(60),
			Locality: "Sarjapur Road", Builder: "Sobha", Source: "nobroker",
			UpdatedAt: "2025-06-01 10:00:01",
		},
		{
			URL: "https://x.com/y2029", Name: "Later Heights", Handover: "Jan 2029",
			HandoverYear: intPtr(2029), PriceMinLakhs: floatPtr(40), PriceMaxLakhs: floatPtr(60),
			Locality: "Hebbal", Builder: "Brigade", Source: "99acres",
			UpdatedAt: "2025-06-01 10:00:02",
		},
		{
			URL: "https://x.com/unpriced", Name: "Mystery Manor", Handover: "Ready to Move",
			Locality: "Whitefield", Builder: "Prestige", Source: "99acres",
			UpdatedAt: "2025-06-01 10:00:03",
		},
	}
}

func propertyURLs(page models.PropertyPage) []string {
	out := make([]string, len(page.Data))
	for i, p := range page.Data {
		out[i] = p.URL
	}
	return out
}

func TestSnapshotPropertyPredicates(t *testing.T) {
	s := New(propertyFixtures(), nil, testLogger())

	tests := []struct {
		name   string
		filter models.PropertyFilter
		want   []string
	}{
		{"price overlap keeps open max", models.PropertyFilter{PriceMin: 55},
			[]string{"https://x.com/ready", "https://x.com/y2026", "https://x.com/y2029", "https://x.com/unpriced"}},
		{"price min excludes capped range", models.PropertyFilter{PriceMin: 70},
			[]string{"https://x.com/ready", "https://x.com/y2026", "https://x.com/unpriced"}},
		{"price max excludes high min", models.PropertyFilter{PriceMax: 45},
			[]string{"https://x.com/y2029", "https://x.com/unpriced"}},
		{"ready sentinel", models.PropertyFilter{HandoverYear: "ready"},
			[]string{"https://x.com/ready", "https://x.com/unpriced"}},
		{"numeric year", models.PropertyFilter{HandoverYear: "2026"},
			[]string{"https://x.com/y2026"}},
		{"garbage year ignored", models.PropertyFilter{HandoverYear: "soon"},
			[]string{"https://x.com/ready", "https://x.com/y2026", "https://x.com/y2029", "https://x.com/unpriced"}},
		{"locality substring", models.PropertyFilter{Locality: "whitefield"},
			[]string{"https://x.com/ready", "https://x.com/unpriced"}},
		{"builder substring", models.PropertyFilter{Builder: " sobha "},
			[]string{"https://x.com/y2026"}},
		{"source exact", models.PropertyFilter{Source: "nobroker"},
			[]string{"https://x.com/y2026"}},
		{"status exact", models.PropertyFilter{Status: models.StatusReadyToMove},
			[]string{"https://x.com/ready"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := s.QueryProperties(tt.filter)
			assert.ElementsMatch(t, tt.want, propertyURLs(page))
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}

func TestSnapshotPropertySortModes(t *testing.T) {
	s := New(propertyFixtures(), nil, testLogger())

	recent := s.QueryProperties(models.PropertyFilter{Sort: models.SortRecent})
	assert.Equal(t, []string{
		"https://x.com/ready", "https://x.com/y2026", "https://x.com/y2029", "https://x.com/unpriced",
	}, propertyURLs(recent))

	late := s.QueryProperties(models.PropertyFilter{Sort: models.SortLate})
	assert.Equal(t, []string{
		"https://x.com/y2029", "https://x.com/y2026", "https://x.com/ready", "https://x.com/unpriced",
	}, propertyURLs(late))

	byUpdate := s.QueryProperties(models.PropertyFilter{})
	assert.Equal(t, []string{
		"https://x.com/y2029", "https://x.com/y2026", "https://x.com/ready", "https://x.com/unpriced",
	}, propertyURLs(byUpdate))
}

func TestSnapshotPropertyPagination(t *testing.T) {
	s := New(propertyFixtures(), nil, testLogger())

	page := s.QueryProperties(models.PropertyFilter{Page: 2, Limit: 3})
	assert.Equal(t, 4, page.Total)
	assert.Len(t, page.Data, 1)

	page = s.QueryProperties(models.PropertyFilter{Page: 99, Limit: 3})
	assert.Empty(t, page.Data)
	assert.Equal(t, 4, page.Total)
}
