package database

import "database/sql"

// Thin wrappers so row scanning stays readable; most columns in the
// scraper's schema are nullable.

type nullString struct{ sql.NullString }

func (n nullString) value() string {
	if n.Valid {
		return n.String
	}
	return ""
}

type nullFloat struct{ sql.NullFloat64 }

func (n nullFloat) ptr() *float64 {
	if n.Valid {
		v := n.Float64
		return &v
	}
	return nil
}

type nullInt struct{ sql.NullInt64 }

func (n nullInt) ptr() *int {
	if n.Valid {
		v := int(n.Int64)
		return &v
	}
	return nil
}
