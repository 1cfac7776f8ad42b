package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banglprop/server/internal/models"
)

func urls(page models.PropertyPage) []string {
	out := make([]string, len(page.Data))
	for i, p := range page.Data {
		out[i] = p.URL
	}
	return out
}

func TestPropertyPriceOverlap(t *testing.T) {
	d, rw := newTestStore(t)
	insertProperty(t, rw, models.PropertyRecord{
		URL: "u1", Name: "Ranged", PriceMinLakhs: floatPtr(40), PriceMaxLakhs: floatPtr(60),
	}, "2025-06-01 10:00:00")
	insertProperty(t, rw, models.PropertyRecord{
		URL: "u2", Name: "Unpriced",
	}, "2025-06-01 10:00:01")

	tests := []struct {
		name   string
		filter models.PropertyFilter
		want   []string
	}{
		{"min inside range keeps overlap", models.PropertyFilter{PriceMin: 50}, []string{"u1", "u2"}},
		{"min above range excludes", models.PropertyFilter{PriceMin: 70}, []string{"u2"}},
		{"max below range excludes", models.PropertyFilter{PriceMax: 30}, []string{"u2"}},
		{"max inside range keeps overlap", models.PropertyFilter{PriceMax: 45}, []string{"u1", "u2"}},
		{"no bounds keeps everything", models.PropertyFilter{}, []string{"u1", "u2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := d.QueryProperties(tt.filter)
			assert.ElementsMatch(t, tt.want, urls(page))
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}

func TestPropertyHandoverFilter(t *testing.T) {
	d, rw := newTestStore(t)
	insertProperty(t, rw, models.PropertyRecord{
		URL: "ready", Name: "Done", Handover: "Ready to Move",
	}, "2025-06-01 10:00:00")
	insertProperty(t, rw, models.PropertyRecord{
		URL: "dated", Name: "Later", Handover: "Dec 2027", HandoverYear: intPtr(2027),
	}, "2025-06-01 10:00:01")

	page := d.QueryProperties(models.PropertyFilter{HandoverYear: "ready"})
	require.Equal(t, []string{"ready"}, urls(page))

	page = d.QueryProperties(models.PropertyFilter{HandoverYear: "2027"})
	require.Equal(t, []string{"dated"}, urls(page))

	// Case-insensitive sentinel
	page = d.QueryProperties(models.PropertyFilter{HandoverYear: "READY"})
	require.Equal(t, []string{"ready"}, urls(page))

	// Non-numeric garbage adds no predicate
	page = d.QueryProperties(models.PropertyFilter{HandoverYear: "soonish"})
	require.Equal(t, 2, page.Total)
}

func TestPropertyTextFilters(t *testing.T) {
	d, rw := newTestStore(t)
	insertProperty(t, rw, models.PropertyRecord{
		URL: "a", Name: "One", Builder: "Prestige Group", Locality: "Whitefield",
		Status: models.StatusNewLaunch, Source: "99acres",
	}, "2025-06-01 10:00:00")
	insertProperty(t, rw, models.PropertyRecord{
		URL: "b", Name: "Two", Builder: "Sobha", Locality: "Sarjapur Road",
		Status: models.StatusReadyToMove, Source: "nobroker",
	}, "2025-06-01 10:00:01")

	assert.Equal(t, []string{"a"}, urls(d.QueryProperties(models.PropertyFilter{Builder: "prestige"})))
	assert.Equal(t, []string{"b"}, urls(d.QueryProperties(models.PropertyFilter{Locality: " sarjapur "})))
	assert.Equal(t, []string{"b"}, urls(d.QueryProperties(models.PropertyFilter{Status: models.StatusReadyToMove})))
	assert.Equal(t, []string{"a"}, urls(d.QueryProperties(models.PropertyFilter{Source: "99acres"})))
	assert.Equal(t, 2, d.QueryProperties(models.PropertyFilter{Locality: ""}).Total)
}

func TestPropertySortModes(t *testing.T) {
	d, rw := newTestStore(t)
	// Priced rows: one ready, one 2026, one 2029, one with neither.
	insertProperty(t, rw, models.PropertyRecord{
		URL: "ready", Name: "R", Handover: "Ready to Move", PriceMinLakhs: floatPtr(50),
	}, "2025-06-01 10:00:00")
	insertProperty(t, rw, models.PropertyRecord{
		URL: "y2026", Name: "A", Handover: "Jun 2026", HandoverYear: intPtr(2026), PriceMinLakhs: floatPtr(60),
	}, "2025-06-01 10:00:01")
	insertProperty(t, rw, models.PropertyRecord{
		URL: "y2029", Name: "B", Handover: "Jan 2029", HandoverYear: intPtr(2029), PriceMinLakhs: floatPtr(70),
	}, "2025-06-01 10:00:02")
	insertProperty(t, rw, models.PropertyRecord{
		URL: "nodate", Name: "C", PriceMinLakhs: floatPtr(80),
	}, "2025-06-01 10:00:03")
	// Unpriced row, newest update: still sorts after all priced rows.
	insertProperty(t, rw, models.PropertyRecord{
		URL: "unpriced", Name: "D", Handover: "Ready to Move",
	}, "2025-06-01 10:00:04")

	recent := d.QueryProperties(models.PropertyFilter{Sort: models.SortRecent})
	assert.Equal(t, []string{"ready", "y2026", "y2029", "nodate", "unpriced"}, urls(recent))

	late := d.QueryProperties(models.PropertyFilter{Sort: models.SortLate})
	assert.Equal(t, []string{"y2029", "y2026", "ready", "nodate", "unpriced"}, urls(late))

	byUpdate := d.QueryProperties(models.PropertyFilter{})
	assert.Equal(t, []string{"nodate", "y2029", "y2026", "ready", "unpriced"}, urls(byUpdate))
}

func TestPropertyPagination(t *testing.T) {
	d, rw := newTestStore(t)
	for i := 0; i < 7; i++ {
		insertProperty(t, rw, models.PropertyRecord{
			URL: string(rune('a' + i)), Name: "P",
		}, "2025-06-01 10:00:0"+string(rune('0'+i)))
	}

	page := d.QueryProperties(models.PropertyFilter{Page: 2, Limit: 3})
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, []string{"d", "c", "b"}, urls(page))

	// page < 1 clamps to 1, limit > 100 clamps to 100
	page = d.QueryProperties(models.PropertyFilter{Page: -5, Limit: 500})
	assert.Len(t, page.Data, 7)

	// Beyond the data: empty page, same total
	page = d.QueryProperties(models.PropertyFilter{Page: 9, Limit: 3})
	assert.Empty(t, page.Data)
	assert.Equal(t, 7, page.Total)
}
