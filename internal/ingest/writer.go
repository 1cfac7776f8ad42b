// Package ingest bridges the scraper's JSON snapshot files into the
// SQLite database: batches of cleaned records flow through a queue into
// a writer that upserts them inside transactions with bounded retry.
package ingest

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"banglprop/server/config"
)

// BatchWriter drains the record queue and upserts each batch into the
// database in a single transaction, retrying failed batches a bounded
// number of times.
type BatchWriter struct {
	db     *gorm.DB
	queue  *RecordQueue
	config *config.Config
	logger *logrus.Logger
}

func NewBatchWriter(db *gorm.DB, queue *RecordQueue, cfg *config.Config, logger *logrus.Logger) *BatchWriter {
	w := &BatchWriter{db: db, queue: queue, config: cfg, logger: logger}
	queue.Subscribe(w.writeBatch)
	return w
}

// writeBatch handles a single batch with transaction and retry logic.
func (w *BatchWriter) writeBatch(batch Batch) error {
	var err error
	for attempt := 0; attempt <= w.config.Ingest.MaxRetries; attempt++ {
		if attempt > 0 {
			w.logger.Infof("Retrying batch write, attempt %d of %d", attempt, w.config.Ingest.MaxRetries)
			time.Sleep(time.Duration(w.config.Ingest.RetryDelay) * time.Second)
		}

		err = w.db.Transaction(func(tx *gorm.DB) error {
			if err := UpsertProperties(tx, batch.Properties); err != nil {
				return fmt.Errorf("failed to upsert properties batch: %w", err)
			}
			if err := UpsertAuctions(tx, batch.Auctions); err != nil {
				return fmt.Errorf("failed to upsert auctions batch: %w", err)
			}
			return nil
		})

		if err == nil {
			w.logger.Infof("Wrote batch of %d records", batch.Len())
			return nil
		}
		w.logger.Errorf("Batch write failed: %v", err)
	}

	return fmt.Errorf("failed to write batch after %d attempts: %w", w.config.Ingest.MaxRetries, err)
}
