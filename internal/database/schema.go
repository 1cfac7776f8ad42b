package database

import "database/sql"

// Schema matches what the scraper creates. The serving path never runs
// DDL; this exists for the snapshot loader and for test fixtures.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		url TEXT PRIMARY KEY,
		id TEXT,
		source TEXT,
		status TEXT,
		name TEXT,
		builder TEXT,
		locality TEXT,
		price_min_lakhs REAL,
		price_max_lakhs REAL,
		price_display TEXT,
		handover TEXT,
		handover_year INTEGER,
		bhk TEXT,
		updated_at TEXT DEFAULT (datetime('now'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_source ON properties(source)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_status ON properties(status)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_price ON properties(price_min_lakhs, price_max_lakhs)`,
	`CREATE TABLE IF NOT EXISTS auctions (
		url TEXT PRIMARY KEY,
		id TEXT,
		name TEXT,
		description TEXT,
		price_display TEXT,
		price_lakhs REAL,
		emd_display TEXT,
		emd_lakhs REAL,
		sq_ft TEXT,
		bank_name TEXT,
		branch_name TEXT,
		contact TEXT,
		contact_person TEXT,
		contact_mobile TEXT,
		address TEXT,
		auction_start TEXT,
		auction_end TEXT,
		auction_datetime TEXT,
		category TEXT,
		source TEXT,
		updated_at TEXT DEFAULT (datetime('now'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_auctions_category ON auctions(category)`,
	`CREATE INDEX IF NOT EXISTS idx_auctions_price ON auctions(price_lakhs)`,
	`CREATE INDEX IF NOT EXISTS idx_auctions_bank ON auctions(bank_name)`,
}

// InitSchema creates the properties and auctions tables plus indexes.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
