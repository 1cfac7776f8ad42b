package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Path to the SQLite file the scraper maintains
	DBPath string `env:"DB_PATH" envDefault:"data/banglprop.db"`

	// Directory holding properties.json / auctions.json snapshots
	SnapshotDir string `env:"SNAPSHOT_DIR" envDefault:"public"`

	// HTTP listen port
	Port string `env:"PORT" envDefault:"5250"`

	// Ingest configuration (snapshot loader)
	Ingest struct {
		// Maximum number of records per write batch
		MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"100"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`

		// Number of batches the queue buffers
		QueueSize int `env:"BATCH_QUEUE_SIZE" envDefault:"64"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
