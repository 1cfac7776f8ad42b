// Package normalize isolates the heuristic, data-dependent cleanup rules
// applied to scraped listings: junk-name detection, price and handover
// sanity bounds, boilerplate stripping and display-name derivation. The
// rules evolve with the source sites, so nothing else in the repo should
// hard-code them.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"banglprop/server/internal/models"
)

// Sane bounds for scraped values. Anything outside is treated as a parse
// artifact and discarded.
const (
	PriceMinLakhs   = 0
	PriceMaxLakhs   = 50000
	HandoverYearMin = 2020
	HandoverYearMax = 2040
)

// Page titles and nav links the scraper occasionally captures as project
// names. Compared against the trimmed lower-cased name.
var junkProjectNames = map[string]struct{}{
	"new launch projects in bangalore":                     {},
	"under construction projects in bangalore":             {},
	"ready to move projects in bangalore":                  {},
	"new projects in bangalore":                            {},
	"projects in bangalore":                                {},
	"upcoming projects in bangalore":                       {},
	"new projects by reputed bangalore builders in bangalore": {},
	"ready to move & pre launch":                           {},
	"list":                        {},
	"map":                         {},
	"filter your search":          {},
	"reset":                       {},
	"sort by":                     {},
	"find other projects matching your search nearby": {},
	"quick links": {},
	"bangalore":   {},
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace trims and folds runs of whitespace into one space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// IsJunkProjectName reports whether a scraped name is a page title or nav
// link rather than a real project name.
func IsJunkProjectName(name string) bool {
	if len(name) < 4 {
		return true
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if len(key) > 120 {
		key = key[:120]
	}
	if len(key) < 4 {
		return true
	}
	if _, ok := junkProjectNames[key]; ok {
		return true
	}
	// Section titles like "Upcoming Projects in Bangalore".
	if strings.Contains(key, "projects in ") && strings.Contains(key, "bangalore") {
		for _, prefix := range []string{"new ", "under ", "ready ", "upcoming "} {
			if strings.HasPrefix(key, prefix) {
				return true
			}
		}
	}
	if strings.Contains(key, "by reputed") && strings.Contains(key, "builders") && strings.Contains(key, "bangalore") {
		return true
	}
	return false
}

// FormatPriceDisplay derives the display string from the numeric bounds:
// Lakhs under 100, Crores at or above.
func FormatPriceDisplay(min, max *float64) string {
	if min == nil && max == nil {
		return ""
	}
	lo, hi := min, max
	if lo == nil {
		lo = hi
	}
	if hi == nil {
		hi = lo
	}
	if *hi >= 100 {
		return fmt.Sprintf("₹ %.2f - %.2f Cr", *lo/100, *hi/100)
	}
	return fmt.Sprintf("₹ %.2f - %.2f L", *lo, *hi)
}

// CleanProperty normalizes a scraped property record in place. It returns
// false when the record is junk (no URL, or a name that is really page
// chrome) and should be dropped.
func CleanProperty(p *models.PropertyRecord) bool {
	p.URL = strings.TrimSpace(p.URL)
	if p.URL == "" || !strings.Contains(p.URL, "http") {
		return false
	}
	p.Name = CollapseWhitespace(p.Name)
	if IsJunkProjectName(p.Name) {
		return false
	}
	p.Builder = CollapseWhitespace(p.Builder)
	p.Locality = CollapseWhitespace(p.Locality)
	p.Handover = CollapseWhitespace(p.Handover)
	p.BHK = CollapseWhitespace(p.BHK)
	p.PriceDisplay = CollapseWhitespace(p.PriceDisplay)

	p.PriceMinLakhs = boundedPrice(p.PriceMinLakhs)
	p.PriceMaxLakhs = boundedPrice(p.PriceMaxLakhs)
	if p.PriceMinLakhs != nil && p.PriceMaxLakhs != nil && *p.PriceMinLakhs > *p.PriceMaxLakhs {
		p.PriceMinLakhs, p.PriceMaxLakhs = p.PriceMaxLakhs, p.PriceMinLakhs
	}
	if p.HasPrice() {
		p.PriceDisplay = FormatPriceDisplay(p.PriceMinLakhs, p.PriceMaxLakhs)
	}

	if p.HandoverYear != nil && (*p.HandoverYear < HandoverYearMin || *p.HandoverYear > HandoverYearMax) {
		p.HandoverYear = nil
	}

	switch p.Status {
	case models.StatusNewLaunch, models.StatusUnderConstruction, models.StatusReadyToMove:
	default:
		p.Status = models.StatusNewLaunch
	}
	return true
}

func boundedPrice(v *float64) *float64 {
	if v == nil || *v < PriceMinLakhs || *v > PriceMaxLakhs {
		return nil
	}
	return v
}
