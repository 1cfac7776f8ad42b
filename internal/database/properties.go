package database

import (
	"strings"

	"banglprop/server/internal/models"
)

// Every property sort mode ranks rows with a known price bound first.
const propertyPricedFirst = `CASE WHEN price_min_lakhs IS NOT NULL OR price_max_lakhs IS NOT NULL THEN 0 ELSE 1 END`

// QueryProperties returns one page of matching properties plus the total
// match count. Every user-supplied value is bound as a parameter. If the
// store is unavailable the result is empty, never an error.
func (d *Database) QueryProperties(filter models.PropertyFilter) models.PropertyPage {
	page := models.PropertyPage{Data: []models.PropertyRecord{}}
	db := d.handle()
	if db == nil {
		return page
	}
	f := filter.Normalized()

	where, args := propertyPredicates(f)
	if err := db.QueryRow("SELECT COUNT(*) FROM properties"+where, args...).Scan(&page.Total); err != nil {
		d.logger.WithError(err).Error("Failed to count properties")
		return models.PropertyPage{Data: []models.PropertyRecord{}}
	}

	query := `SELECT url, id, source, status, name, builder, locality,
		price_min_lakhs, price_max_lakhs, price_display, handover, handover_year, bhk,
		COALESCE(updated_at, '') FROM properties` +
		where + " ORDER BY " + propertyOrder(f.Sort) + " LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Offset())

	rows, err := db.Query(query, args...)
	if err != nil {
		d.logger.WithError(err).Error("Failed to query properties")
		return models.PropertyPage{Data: []models.PropertyRecord{}}
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			d.logger.WithError(err).Error("Failed to scan property row")
			return models.PropertyPage{Data: []models.PropertyRecord{}}
		}
		page.Data = append(page.Data, p)
	}
	if err := rows.Err(); err != nil {
		d.logger.WithError(err).Error("Failed to iterate property rows")
		return models.PropertyPage{Data: []models.PropertyRecord{}}
	}
	return page
}

func propertyPredicates(f models.PropertyFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	// Range overlap: an unknown bound never excludes a row.
	if f.PriceMin > 0 {
		clauses = append(clauses, "(price_max_lakhs IS NULL OR price_max_lakhs >= ?)")
		args = append(args, f.PriceMin)
	}
	if f.PriceMax < models.PriceFilterCeiling {
		clauses = append(clauses, "(price_min_lakhs IS NULL OR price_min_lakhs <= ?)")
		args = append(args, f.PriceMax)
	}

	if f.WantsReady() {
		clauses = append(clauses, "LOWER(COALESCE(handover, '')) LIKE '%ready%'")
	} else if year, ok := f.HandoverYearValue(); ok {
		clauses = append(clauses, "handover_year = ?")
		args = append(args, year)
	}

	if f.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, f.Status)
	}
	if f.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, f.Source)
	}
	if v := strings.TrimSpace(f.Locality); v != "" {
		clauses = append(clauses, "LOWER(COALESCE(locality, '')) LIKE ?")
		args = append(args, "%"+strings.ToLower(v)+"%")
	}
	if v := strings.TrimSpace(f.Builder); v != "" {
		clauses = append(clauses, "LOWER(COALESCE(builder, '')) LIKE ?")
		args = append(args, "%"+strings.ToLower(v)+"%")
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func propertyOrder(sortMode string) string {
	switch sortMode {
	case models.SortRecent:
		// Ready-to-move first, then earlier handover years; rows with
		// neither sort last.
		return propertyPricedFirst + `,
			CASE WHEN LOWER(COALESCE(handover, '')) LIKE '%ready%' THEN 0
			     WHEN handover_year IS NOT NULL THEN handover_year
			     ELSE 9999 END ASC`
	case models.SortLate:
		// Latest handover years first; ready-to-move ranks as year 0,
		// below every real year, and rows with neither still sort last.
		return propertyPricedFirst + `,
			CASE WHEN handover_year IS NOT NULL THEN handover_year
			     WHEN LOWER(COALESCE(handover, '')) LIKE '%ready%' THEN 0
			     ELSE -1 END DESC`
	default:
		return propertyPricedFirst + ", updated_at DESC"
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (models.PropertyRecord, error) {
	var p models.PropertyRecord
	var id, source, status, name, builder, locality, priceDisplay, handover, bhk nullString
	var priceMin, priceMax nullFloat
	var handoverYear nullInt

	err := row.Scan(
		&p.URL, &id, &source, &status, &name, &builder, &locality,
		&priceMin, &priceMax, &priceDisplay, &handover, &handoverYear, &bhk,
		&p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}

	p.ID = id.value()
	p.Source = source.value()
	p.Status = status.value()
	p.Name = name.value()
	p.Builder = builder.value()
	p.Locality = locality.value()
	p.PriceDisplay = priceDisplay.value()
	p.Handover = handover.value()
	p.BHK = bhk.value()
	p.PriceMinLakhs = priceMin.ptr()
	p.PriceMaxLakhs = priceMax.ptr()
	p.HandoverYear = handoverYear.ptr()
	return p, nil
}
