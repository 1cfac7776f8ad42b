package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"banglprop/server/internal/models"
)

// Boilerplate the auction scraper drags in from page chrome: nav menus,
// social-share labels and "Auction ID: #nnnn" blocks.
var auctionBoilerplate = []*regexp.Regexp{
	regexp.MustCompile(`(?i)auction\s*id\s*[:#\s]*\d+`),
	regexp.MustCompile(`(?i)share\s*(?:on|via)?\s*(?:facebook|twitter|whatsapp|linkedin|telegram)`),
	regexp.MustCompile(`(?i)\b(?:facebook|twitter|whatsapp|linkedin)\s+share\b`),
	regexp.MustCompile(`(?i)\blogin\s*[|/]?\s*register\b`),
	regexp.MustCompile(`(?i)\bhome\s+auction\s+properties\b(?:\s+(?:banks|cities|categories|contact\s*us))*`),
	regexp.MustCompile(`(?i)\bquick\s+links\b`),
	regexp.MustCompile(`(?i)\bview\s+all\s+auctions\b`),
}

// Recognized lender names, longest first so e.g. "PNB Housing Finance"
// wins over "Punjab National Bank" abbreviations.
var knownBanks = []string{
	"Ujjivan Small Finance Bank",
	"PNB Housing Finance",
	"Punjab National Bank",
	"Union Bank of India",
	"Central Bank of India",
	"State Bank of India",
	"Indian Overseas Bank",
	"Kotak Mahindra Bank",
	"Bank of Baroda",
	"Bank of India",
	"Canara Bank",
	"Axis Bank",
	"HDFC Bank",
	"ICICI Bank",
	"IDBI Bank",
	"DCB Bank",
}

const maxBankNameLen = 35

var (
	genericAuctionNameRe = regexp.MustCompile(`(?i)^property\s*#?\d+$`)
	auctionLocalityRe    = regexp.MustCompile(`(?i)\bin\s+([A-Za-z][A-Za-z .'-]{2,40}?),?\s+(?:Bengaluru|Bangalore)\b`)
)

// StripBoilerplate removes known scraped page chrome from a text field
// and collapses the remaining whitespace.
func StripBoilerplate(s string) string {
	for _, re := range auctionBoilerplate {
		s = re.ReplaceAllString(s, " ")
	}
	return CollapseWhitespace(s)
}

// CanonicalBankName maps raw scraped bank text onto a recognized lender
// name. Unrecognized text falls back to the part before " Auctions for ",
// then to a hard truncation.
func CanonicalBankName(raw string) string {
	s := CollapseWhitespace(raw)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	for _, bank := range knownBanks {
		if strings.Contains(lower, strings.ToLower(bank)) {
			return bank
		}
	}
	if i := strings.Index(s, " Auctions for "); i > 0 {
		return strings.TrimSpace(s[:i])
	}
	if runes := []rune(s); len(runes) > maxBankNameLen {
		return strings.TrimSpace(string(runes[:maxBankNameLen]))
	}
	return s
}

// AuctionDisplayName returns a human-readable name for an auction card.
// Scraped names like "Property 30552" (or nothing at all) are replaced by
// a synthesized one built from the category and whatever locality can be
// pulled out of the bank or address text.
func AuctionDisplayName(a models.AuctionRecord) string {
	name := CollapseWhitespace(a.Name)
	if name != "" && len(name) >= 8 && !genericAuctionNameRe.MatchString(name) {
		return name
	}

	category := CollapseWhitespace(a.Category)
	if category == "" {
		category = "Property"
	}
	locality := extractLocality(a.BankName)
	if locality == "" {
		locality = extractLocality(a.Address)
	}
	if locality != "" {
		return fmt.Sprintf("%s auction in %s, Bengaluru", category, locality)
	}
	return fmt.Sprintf("%s auction, Bengaluru (#%s)", category, strings.TrimSpace(a.ID))
}

func extractLocality(text string) string {
	m := auctionLocalityRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return CollapseWhitespace(m[1])
}

// CleanAuction normalizes a scraped auction record in place: boilerplate
// stripped from the free-text fields, bank name canonicalized, display
// name synthesized when the scraped one is junk. Returns false when the
// record has no usable URL.
func CleanAuction(a *models.AuctionRecord) bool {
	a.URL = strings.TrimSpace(a.URL)
	if a.URL == "" || !strings.Contains(a.URL, "http") {
		return false
	}
	a.Name = StripBoilerplate(a.Name)
	a.Description = StripBoilerplate(a.Description)
	a.Address = StripBoilerplate(a.Address)
	a.Contact = StripBoilerplate(a.Contact)
	a.BranchName = CollapseWhitespace(a.BranchName)
	a.Category = CollapseWhitespace(a.Category)
	// Display-name synthesis reads the locality out of the raw bank
	// text, so it runs before the bank name is canonicalized.
	a.BankName = StripBoilerplate(a.BankName)
	a.Name = AuctionDisplayName(*a)
	a.BankName = CanonicalBankName(a.BankName)
	return true
}
