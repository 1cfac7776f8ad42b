package models

import (
	"strconv"
	"strings"
)

// Pagination bounds shared by the HTTP layer and the query layers. Both
// clamp independently so the two always agree on offsets.
const (
	DefaultLimit = 24
	MaxLimit     = 100

	// Price filters cover 0..1000 Lakhs in the UI; a max at or beyond
	// PriceFilterCeiling means "no upper bound requested".
	PriceFilterCeiling = 1000
)

// Property sort modes. Anything else falls back to last-updated ordering.
const (
	SortRecent = "recent"
	SortLate   = "late"
)

// HandoverReady is the sentinel accepted in the handoverYear filter for
// "ready to move" listings; it matches the free-text handover field
// rather than the numeric year column.
const HandoverReady = "ready"

// PropertyFilter is the transient filter/sort request for property
// queries, bound straight from the query string.
type PropertyFilter struct {
	Page         int     `form:"page"`
	Limit        int     `form:"limit"`
	PriceMin     float64 `form:"priceMin"`
	PriceMax     float64 `form:"priceMax"`
	HandoverYear string  `form:"handoverYear"`
	Status       string  `form:"status"`
	Locality     string  `form:"locality"`
	Builder      string  `form:"builder"`
	Source       string  `form:"source"`
	Sort         string  `form:"sort"`
}

// Normalized returns a copy with page/limit clamped and an absent price
// ceiling widened to the full range. Malformed values never reject a
// request; they just lose their predicate.
func (f PropertyFilter) Normalized() PropertyFilter {
	f.Page, f.Limit = clampPage(f.Page, f.Limit)
	if f.PriceMax <= 0 {
		f.PriceMax = PriceFilterCeiling
	}
	f.HandoverYear = strings.TrimSpace(strings.ToLower(f.HandoverYear))
	return f
}

// WantsReady reports whether the handoverYear filter is the ready
// sentinel. HandoverYearValue returns the numeric year filter, if any;
// non-numeric values are ignored entirely.
func (f PropertyFilter) WantsReady() bool {
	return f.HandoverYear == HandoverReady
}

func (f PropertyFilter) HandoverYearValue() (int, bool) {
	if f.HandoverYear == "" || f.WantsReady() {
		return 0, false
	}
	year, err := strconv.Atoi(f.HandoverYear)
	if err != nil {
		return 0, false
	}
	return year, true
}

// AuctionFilter is the transient filter request for auction queries.
type AuctionFilter struct {
	Page     int     `form:"page"`
	Limit    int     `form:"limit"`
	PriceMin float64 `form:"priceMin"`
	PriceMax float64 `form:"priceMax"`
	Bank     string  `form:"bank"`
	Category string  `form:"category"`
	Locality string  `form:"locality"`
}

// Normalized mirrors PropertyFilter.Normalized for the auction path.
func (f AuctionFilter) Normalized() AuctionFilter {
	f.Page, f.Limit = clampPage(f.Page, f.Limit)
	if f.PriceMax <= 0 {
		f.PriceMax = PriceFilterCeiling
	}
	f.Category = strings.TrimSpace(strings.ToLower(f.Category))
	return f
}

// Offset is the row offset for the normalized page/limit pair.
func (f PropertyFilter) Offset() int { return (f.Page - 1) * f.Limit }

func (f AuctionFilter) Offset() int { return (f.Page - 1) * f.Limit }

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
