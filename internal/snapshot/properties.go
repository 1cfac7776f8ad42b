package snapshot

import (
	"sort"
	"strings"

	"banglprop/server/internal/models"
)

// Rank values for rows with neither a ready flag nor a handover year:
// effectively infinite in recent mode, effectively negative-infinite in
// late mode, so they land last either way.
const (
	handoverUnknownRecent = 9999
	handoverUnknownLate   = -1
)

// QueryProperties mirrors database.QueryProperties over the in-memory
// snapshot: identical predicates, identical ordering, identical
// pagination contract.
func (s *Store) QueryProperties(filter models.PropertyFilter) models.PropertyPage {
	f := filter.Normalized()

	matched := make([]models.PropertyRecord, 0, len(s.properties))
	for _, p := range s.properties {
		if propertyMatches(p, f) {
			matched = append(matched, p)
		}
	}
	sortProperties(matched, f.Sort)

	return models.PropertyPage{
		Data:  paginate(matched, f.Page, f.Limit),
		Total: len(matched),
	}
}

func propertyMatches(p models.PropertyRecord, f models.PropertyFilter) bool {
	if f.PriceMin > 0 && p.PriceMaxLakhs != nil && *p.PriceMaxLakhs < f.PriceMin {
		return false
	}
	if f.PriceMax < models.PriceFilterCeiling && p.PriceMinLakhs != nil && *p.PriceMinLakhs > f.PriceMax {
		return false
	}
	if f.WantsReady() && !isReady(p) {
		return false
	}
	if year, ok := f.HandoverYearValue(); ok {
		if p.HandoverYear == nil || *p.HandoverYear != year {
			return false
		}
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Source != "" && p.Source != f.Source {
		return false
	}
	if !substringMatch(p.Locality, f.Locality) {
		return false
	}
	if !substringMatch(p.Builder, f.Builder) {
		return false
	}
	return true
}

func substringMatch(field, wanted string) bool {
	wanted = strings.TrimSpace(wanted)
	if wanted == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(wanted))
}

func isReady(p models.PropertyRecord) bool {
	return strings.Contains(strings.ToLower(p.Handover), "ready")
}

func sortProperties(records []models.PropertyRecord, mode string) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.HasPrice() != b.HasPrice() {
			return a.HasPrice()
		}
		switch mode {
		case models.SortRecent:
			return recentRank(a) < recentRank(b)
		case models.SortLate:
			return lateRank(a) > lateRank(b)
		default:
			return a.UpdatedAt > b.UpdatedAt
		}
	})
}

// recentRank: ready rows above all numeric years, then ascending year.
func recentRank(p models.PropertyRecord) int {
	if isReady(p) {
		return 0
	}
	if p.HandoverYear != nil {
		return *p.HandoverYear
	}
	return handoverUnknownRecent
}

// lateRank: the explicit year wins over the ready text heuristic, ready
// rows rank as year 0 below every real year.
func lateRank(p models.PropertyRecord) int {
	if p.HandoverYear != nil {
		return *p.HandoverYear
	}
	if isReady(p) {
		return 0
	}
	return handoverUnknownLate
}
