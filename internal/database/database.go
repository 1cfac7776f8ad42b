package database

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// Database wraps a read-only SQLite handle over the scraper's database
// file. The handle opens lazily on the first query; sync.Once guards
// against concurrent first requests double-opening it. An open failure is
// remembered for the life of the process and every subsequent query
// degrades to an empty result set instead of returning an error.
type Database struct {
	path   string
	logger *logrus.Logger

	once sync.Once
	db   *sql.DB
	err  error
}

func NewDatabase(path string, logger *logrus.Logger) *Database {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Database{path: path, logger: logger}
}

// handle returns the shared read-only connection, or nil when the store
// is unavailable.
func (d *Database) handle() *sql.DB {
	d.once.Do(func() {
		dsn := fmt.Sprintf("file:%s?mode=ro", d.path)
		db, err := sql.Open("sqlite3", dsn)
		if err == nil {
			err = db.Ping()
		}
		if err != nil {
			d.err = err
			d.logger.WithError(err).WithField("path", d.path).
				Warn("Database unavailable, serving empty results")
			return
		}
		d.db = db
	})
	return d.db
}

// Available reports whether the store opened successfully. Callers that
// only see "no error, zero rows" can use this to tell degraded mode from
// a genuinely empty table.
func (d *Database) Available() bool {
	return d.handle() != nil
}

func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
