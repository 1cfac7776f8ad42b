// The loader imports the scraper's JSON snapshot files into the SQLite
// database, so the server can be pointed at either persistence form.
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"banglprop/server/config"
	"banglprop/server/internal/ingest"
	"banglprop/server/internal/models"
	"banglprop/server/internal/normalize"
	"banglprop/server/internal/snapshot"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database")
	}
	if err := ingest.EnsureSchema(db); err != nil {
		logger.WithError(err).Fatal("Failed to initialize schema")
	}

	properties, err := snapshot.ReadProperties(filepath.Join(cfg.SnapshotDir, snapshot.PropertiesFile))
	if err != nil {
		logger.WithError(err).Warn("Property snapshot unavailable")
	}
	auctions, err := snapshot.ReadAuctions(filepath.Join(cfg.SnapshotDir, snapshot.AuctionsFile))
	if err != nil {
		logger.WithError(err).Warn("Auction snapshot unavailable")
	}

	cleanProps := make([]models.PropertyRecord, 0, len(properties))
	for _, p := range properties {
		if normalize.CleanProperty(&p) {
			cleanProps = append(cleanProps, p)
		}
	}
	cleanAucs := make([]models.AuctionRecord, 0, len(auctions))
	for _, a := range auctions {
		if normalize.CleanAuction(&a) {
			cleanAucs = append(cleanAucs, a)
		}
	}
	logger.Infof("Loaded %d properties and %d auctions from snapshots (dropped %d junk records)",
		len(cleanProps), len(cleanAucs), len(properties)+len(auctions)-len(cleanProps)-len(cleanAucs))

	queue := ingest.NewRecordQueue(cfg.Ingest.QueueSize, logger)
	ingest.NewBatchWriter(db, queue, cfg, logger)
	queue.Start()

	size := cfg.Ingest.MaxBatchSize
	if size < 1 {
		size = 1
	}
	enqueue := func(batch ingest.Batch) {
		// Single producer against a bounded queue: back off while the
		// writer catches up.
		for {
			err := queue.Push(batch)
			if err == nil {
				return
			}
			if err == ingest.ErrQueueClosed {
				logger.Error("Queue closed before import finished")
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
	for start := 0; start < len(cleanProps); start += size {
		end := start + size
		if end > len(cleanProps) {
			end = len(cleanProps)
		}
		enqueue(ingest.Batch{Properties: cleanProps[start:end]})
	}
	for start := 0; start < len(cleanAucs); start += size {
		end := start + size
		if end > len(cleanAucs) {
			end = len(cleanAucs)
		}
		enqueue(ingest.Batch{Auctions: cleanAucs[start:end]})
	}

	queue.Close()
	queue.Wait()
	logger.Info("Snapshot import complete")
}
