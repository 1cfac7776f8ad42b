package snapshot

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banglprop/server/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestLoadMissingFilesDegrades(t *testing.T) {
	s := Load(t.TempDir(), testLogger())

	page := s.QueryProperties(models.PropertyFilter{})
	assert.Equal(t, 0, page.Total)
	assert.NotNil(t, page.Data)

	auctions := s.QueryAuctions(models.AuctionFilter{})
	assert.Equal(t, 0, auctions.Total)
	assert.NotNil(t, auctions.Data)
}

func TestLoadCleansRecords(t *testing.T) {
	dir := t.TempDir()
	properties := []models.PropertyRecord{
		{URL: "https://x.com/1", Name: "Prestige Lakeside Habitat"},
		{URL: "https://x.com/2", Name: "Projects in Bangalore"}, // nav chrome
		{URL: "", Name: "No URL Project"},
	}
	data, err := json.Marshal(properties)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, PropertiesFile), data, 0o644))

	auctions := []models.AuctionRecord{
		{URL: "https://x.com/a/1", Name: "Axis Bank Flat Auction in Anekal, Bengaluru"},
	}
	data, err = json.Marshal(auctions)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, AuctionsFile), data, 0o644))

	s := Load(dir, testLogger())

	page := s.QueryProperties(models.PropertyFilter{})
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Prestige Lakeside Habitat", page.Data[0].Name)

	assert.Equal(t, 1, s.QueryAuctions(models.AuctionFilter{}).Total)
}
