package snapshot

import (
	"sort"
	"strings"

	"banglprop/server/internal/models"
)

// QueryAuctions mirrors database.QueryAuctions over the in-memory
// snapshot. A row with no price is excluded once either price bound is
// active, same as the SQL path.
func (s *Store) QueryAuctions(filter models.AuctionFilter) models.AuctionPage {
	f := filter.Normalized()

	matched := make([]models.AuctionRecord, 0, len(s.auctions))
	for _, a := range s.auctions {
		if auctionMatches(a, f) {
			matched = append(matched, a)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedAt > matched[j].UpdatedAt
	})

	return models.AuctionPage{
		Data:  paginate(matched, f.Page, f.Limit),
		Total: len(matched),
	}
}

func auctionMatches(a models.AuctionRecord, f models.AuctionFilter) bool {
	if f.PriceMin > 0 && (a.PriceLakhs == nil || *a.PriceLakhs < f.PriceMin) {
		return false
	}
	if f.PriceMax < models.PriceFilterCeiling && (a.PriceLakhs == nil || *a.PriceLakhs > f.PriceMax) {
		return false
	}
	if !substringMatch(a.BankName, f.Bank) {
		return false
	}
	if f.Category != "" && strings.ToLower(a.Category) != f.Category {
		return false
	}
	if v := strings.TrimSpace(f.Locality); v != "" {
		if !substringMatch(a.Address, v) && !substringMatch(a.Name, v) {
			return false
		}
	}
	return true
}
