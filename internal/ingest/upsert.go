package ingest

import (
	"strings"

	"gorm.io/gorm"

	"banglprop/server/internal/database"
	"banglprop/server/internal/models"
)

// EnsureSchema creates the tables and indexes the scraper would have
// created, so the loader can run against a fresh database file.
func EnsureSchema(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return database.InitSchema(sqlDB)
}

// UpsertProperties writes a batch keyed on url, refreshing updated_at.
// Field lengths are capped the same way the scraper caps them.
func UpsertProperties(tx *gorm.DB, batch []models.PropertyRecord) error {
	for _, p := range batch {
		err := tx.Exec(`
			INSERT OR REPLACE INTO properties (
				url, id, source, status, name, builder, locality,
				price_min_lakhs, price_max_lakhs, price_display,
				handover, handover_year, bhk, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
			strings.TrimSpace(p.URL),
			textCol(p.ID, 60),
			textCol(p.Source, 40),
			textCol(p.Status, 30),
			textCol(p.Name, 200),
			textCol(p.Builder, 100),
			textCol(p.Locality, 150),
			p.PriceMinLakhs,
			p.PriceMaxLakhs,
			textCol(p.PriceDisplay, 80),
			textCol(p.Handover, 50),
			p.HandoverYear,
			textCol(p.BHK, 30),
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// UpsertAuctions is the auction-table counterpart of UpsertProperties.
func UpsertAuctions(tx *gorm.DB, batch []models.AuctionRecord) error {
	for _, a := range batch {
		err := tx.Exec(`
			INSERT OR REPLACE INTO auctions (
				url, id, name, description, price_display, price_lakhs,
				emd_display, emd_lakhs, sq_ft, bank_name, branch_name,
				contact, contact_person, contact_mobile, address,
				auction_start, auction_end, auction_datetime, category,
				source, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
			strings.TrimSpace(a.URL),
			textCol(a.ID, 60),
			textCol(a.Name, 250),
			textCol(a.Description, 3000),
			textCol(a.PriceDisplay, 80),
			a.PriceLakhs,
			textCol(a.EMDDisplay, 80),
			a.EMDLakhs,
			textCol(a.SqFt, 50),
			textCol(a.BankName, 120),
			textCol(a.BranchName, 120),
			textCol(a.Contact, 100),
			textCol(a.ContactPerson, 80),
			textCol(a.ContactMobile, 20),
			textCol(a.Address, 250),
			textCol(a.AuctionStart, 50),
			textCol(a.AuctionEnd, 50),
			textCol(a.AuctionDatetime, 50),
			textCol(a.Category, 50),
			textCol(a.Source, 40),
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// textCol trims and caps a text column, mapping empty to NULL.
func textCol(s string, maxLen int) interface{} {
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > maxLen {
		s = strings.TrimSpace(string(runes[:maxLen]))
	}
	if s == "" {
		return nil
	}
	return s
}
