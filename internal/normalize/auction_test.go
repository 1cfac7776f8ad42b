package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banglprop/server/internal/models"
)

func TestStripBoilerplate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Auction ID: #30552 2 BHK flat in Anekal", "2 BHK flat in Anekal"},
		{"Nice plot Share on WhatsApp Share on Facebook", "Nice plot"},
		{"Login | Register Flat for auction", "Flat for auction"},
		{"Home Auction Properties Banks Cities Flat details", "Flat details"},
		{"Plain   description  text", "Plain description text"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripBoilerplate(tt.in))
	}
}

func TestCanonicalBankName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Axis Bank Non-Agricultural Land Auction in Anekal", "Axis Bank"},
		{"state bank of india, anekal branch", "State Bank of India"},
		{"PNB Housing Finance Ltd", "PNB Housing Finance"},
		{"Shree Lender Auctions for Bengaluru Properties", "Shree Lender"},
		{"Some Very Long Unrecognized Cooperative Society Of Lenders", "Some Very Long Unrecognized Coopera"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalBankName(tt.in))
	}
}

func TestAuctionDisplayName(t *testing.T) {
	// A real scraped name survives.
	a := models.AuctionRecord{Name: "Axis Bank Flat Auction in Anekal, Bengaluru"}
	assert.Equal(t, "Axis Bank Flat Auction in Anekal, Bengaluru", AuctionDisplayName(a))

	// Generic "Property <n>" names are replaced using the bank text.
	a = models.AuctionRecord{
		Name:     "Property 30552",
		Category: "Residential",
		BankName: "Axis Bank Auction in Whitefield, Bengaluru",
	}
	assert.Equal(t, "Residential auction in Whitefield, Bengaluru", AuctionDisplayName(a))

	// Locality can also come from the address.
	a = models.AuctionRecord{
		Name:     "",
		Category: "Land",
		Address:  "Plot 14, in Anekal, Bengaluru 562106",
	}
	assert.Equal(t, "Land auction in Anekal, Bengaluru", AuctionDisplayName(a))

	// Nothing to extract: fixed fallback.
	a = models.AuctionRecord{Name: "Flat", Category: "Residential", ID: "99"}
	assert.Equal(t, "Residential auction, Bengaluru (#99)", AuctionDisplayName(a))
}

func TestCleanAuction(t *testing.T) {
	a := models.AuctionRecord{
		URL:         "https://x.com/a/1",
		Name:        "Property 1234",
		Description: "Auction ID: #1234  Spacious 2 BHK   flat",
		BankName:    "Axis Bank Auctions in Whitefield, Bengaluru Share on WhatsApp",
		Address:     "Whitefield,   Bengaluru",
		Category:    "Residential",
	}
	require.True(t, CleanAuction(&a))
	assert.Equal(t, "Spacious 2 BHK flat", a.Description)
	assert.Equal(t, "Axis Bank", a.BankName)
	assert.Equal(t, "Whitefield, Bengaluru", a.Address)
	assert.Equal(t, "Residential auction in Whitefield, Bengaluru", a.Name)

	bad := models.AuctionRecord{URL: "   "}
	assert.False(t, CleanAuction(&bad))
}
