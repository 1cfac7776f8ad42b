package database

import (
	"strings"

	"banglprop/server/internal/models"
)

// QueryAuctions returns one page of matching auctions plus the total
// match count. Same contract as QueryProperties: parameter binding for
// every value, empty result when the store is unavailable.
func (d *Database) QueryAuctions(filter models.AuctionFilter) models.AuctionPage {
	page := models.AuctionPage{Data: []models.AuctionRecord{}}
	db := d.handle()
	if db == nil {
		return page
	}
	f := filter.Normalized()

	where, args := auctionPredicates(f)
	if err := db.QueryRow("SELECT COUNT(*) FROM auctions"+where, args...).Scan(&page.Total); err != nil {
		d.logger.WithError(err).Error("Failed to count auctions")
		return models.AuctionPage{Data: []models.AuctionRecord{}}
	}

	query := `SELECT url, id, name, description, price_display, price_lakhs,
		emd_display, emd_lakhs, sq_ft, bank_name, branch_name, contact,
		contact_person, contact_mobile, address, auction_start, auction_end,
		auction_datetime, category, source, COALESCE(updated_at, '')
		FROM auctions` + where + " ORDER BY updated_at DESC LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Offset())

	rows, err := db.Query(query, args...)
	if err != nil {
		d.logger.WithError(err).Error("Failed to query auctions")
		return models.AuctionPage{Data: []models.AuctionRecord{}}
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			d.logger.WithError(err).Error("Failed to scan auction row")
			return models.AuctionPage{Data: []models.AuctionRecord{}}
		}
		page.Data = append(page.Data, a)
	}
	if err := rows.Err(); err != nil {
		d.logger.WithError(err).Error("Failed to iterate auction rows")
		return models.AuctionPage{Data: []models.AuctionRecord{}}
	}
	return page
}

func auctionPredicates(f models.AuctionFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	// Unlike properties, a row with no price is excluded once either
	// bound is active.
	if f.PriceMin > 0 {
		clauses = append(clauses, "(price_lakhs IS NOT NULL AND price_lakhs >= ?)")
		args = append(args, f.PriceMin)
	}
	if f.PriceMax < models.PriceFilterCeiling {
		clauses = append(clauses, "(price_lakhs IS NOT NULL AND price_lakhs <= ?)")
		args = append(args, f.PriceMax)
	}

	if v := strings.TrimSpace(f.Bank); v != "" {
		clauses = append(clauses, "LOWER(COALESCE(bank_name, '')) LIKE ?")
		args = append(args, "%"+strings.ToLower(v)+"%")
	}
	if f.Category != "" {
		clauses = append(clauses, "LOWER(COALESCE(category, '')) = ?")
		args = append(args, f.Category)
	}
	if v := strings.TrimSpace(f.Locality); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		clauses = append(clauses, "(LOWER(COALESCE(address, '')) LIKE ? OR LOWER(COALESCE(name, '')) LIKE ?)")
		args = append(args, like, like)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanAuction(row rowScanner) (models.AuctionRecord, error) {
	var a models.AuctionRecord
	var id, name, description, priceDisplay, emdDisplay, sqFt nullString
	var bankName, branchName, contact, contactPerson, contactMobile nullString
	var address, auctionStart, auctionEnd, auctionDatetime, category, source nullString
	var priceLakhs, emdLakhs nullFloat

	err := row.Scan(
		&a.URL, &id, &name, &description, &priceDisplay, &priceLakhs,
		&emdDisplay, &emdLakhs, &sqFt, &bankName, &branchName, &contact,
		&contactPerson, &contactMobile, &address, &auctionStart, &auctionEnd,
		&auctionDatetime, &category, &source, &a.UpdatedAt,
	)
	if err != nil {
		return a, err
	}

	a.ID = id.value()
	a.Name = name.value()
	a.Description = description.value()
	a.PriceDisplay = priceDisplay.value()
	a.PriceLakhs = priceLakhs.ptr()
	a.EMDDisplay = emdDisplay.value()
	a.EMDLakhs = emdLakhs.ptr()
	a.SqFt = sqFt.value()
	a.BankName = bankName.value()
	a.BranchName = branchName.value()
	a.Contact = contact.value()
	a.ContactPerson = contactPerson.value()
	a.ContactMobile = contactMobile.value()
	a.Address = address.value()
	a.AuctionStart = auctionStart.value()
	a.AuctionEnd = auctionEnd.value()
	a.AuctionDatetime = auctionDatetime.value()
	a.Category = category.value()
	a.Source = source.value()
	return a, nil
}
