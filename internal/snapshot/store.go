// Package snapshot serves the same filter/sort contract as the database
// package, but over the static JSON snapshot files the scraper writes
// next to the database. It exists for instant client-style filtering
// without a round-trip per filter change, and as the serving backend when
// the database file is absent. Its predicates and ordering must stay
// behaviorally identical to the SQL path.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"banglprop/server/internal/models"
	"banglprop/server/internal/normalize"
)

const (
	PropertiesFile = "properties.json"
	AuctionsFile   = "auctions.json"
)

// Store holds the cleaned snapshot records in memory. Records are
// normalized once at load; filtering runs synchronously over the full
// slice on every query.
type Store struct {
	logger     *logrus.Logger
	properties []models.PropertyRecord
	auctions   []models.AuctionRecord
}

// New builds a store from already-loaded records, cleaning them the same
// way Load does.
func New(properties []models.PropertyRecord, auctions []models.AuctionRecord, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	s := &Store{logger: logger}
	for _, p := range properties {
		if normalize.CleanProperty(&p) {
			s.properties = append(s.properties, p)
		}
	}
	for _, a := range auctions {
		if normalize.CleanAuction(&a) {
			s.auctions = append(s.auctions, a)
		}
	}
	return s
}

// Load reads properties.json and auctions.json from dir. A missing or
// unreadable file degrades to an empty slice, mirroring the database
// layer's store-unavailable behavior.
func Load(dir string, logger *logrus.Logger) *Store {
	properties, err := ReadProperties(filepath.Join(dir, PropertiesFile))
	if err != nil {
		if logger != nil {
			logger.WithError(err).Warn("Property snapshot unavailable")
		}
	}
	auctions, err := ReadAuctions(filepath.Join(dir, AuctionsFile))
	if err != nil {
		if logger != nil {
			logger.WithError(err).Warn("Auction snapshot unavailable")
		}
	}
	return New(properties, auctions, logger)
}

// ReadProperties parses a property snapshot file.
func ReadProperties(path string) ([]models.PropertyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []models.PropertyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadAuctions parses an auction snapshot file.
func ReadAuctions(path string) ([]models.AuctionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []models.AuctionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func paginate[T any](matched []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(matched) {
		return []T{}
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end]
}
