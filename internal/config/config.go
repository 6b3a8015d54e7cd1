package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Catalog API
	CatalogURL string

	// FRT extraction
	PDFPath   string
	CacheDir  string
	OutputDir string
	// ImagesPath is an optional FRN -> image URL sidecar merged into
	// records before submission.
	ImagesPath string
	MaxPages   int
	ChunkSize  int

	// Gunpost scraper
	GunpostBaseURL        string
	ListenAddr            string
	FullSweepPages        int
	IncrementalSweepPages int
	SweepInterval         time.Duration
	DetailWorkers         int
	RequestTimeout        time.Duration
	FetchRatePerSec       float64
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		CatalogURL: envOr("CATALOG_URL", "http://localhost:3000"),

		PDFPath:    envOr("FRT_PDF_PATH", "frt-0811.pdf"),
		CacheDir:   envOr("FRT_CACHE_DIR", "."),
		OutputDir:  envOr("FRT_OUTPUT_DIR", "."),
		ImagesPath: os.Getenv("FRT_IMAGES_PATH"),
		MaxPages:   envInt("FRT_MAX_PAGES", 107191),
		ChunkSize:  envInt("FRT_CHUNK_SIZE", 10000),

		GunpostBaseURL:        envOr("GUNPOST_BASE_URL", "https://www.gunpost.ca"),
		ListenAddr:            envOr("LISTEN_ADDR", ":8091"),
		FullSweepPages:        envInt("FULL_SWEEP_PAGES", 50),
		IncrementalSweepPages: envInt("INCREMENTAL_SWEEP_PAGES", 5),
		SweepInterval:         envDuration("SWEEP_INTERVAL", time.Minute),
		DetailWorkers:         envInt("DETAIL_WORKERS", 1),
		RequestTimeout:        envDuration("REQUEST_TIMEOUT", 30*time.Second),
		FetchRatePerSec:       envFloat("FETCH_RATE_PER_SEC", 1.0),
	}

	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 107191
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 10000
	}
	if cfg.FullSweepPages <= 0 {
		cfg.FullSweepPages = 50
	}
	if cfg.IncrementalSweepPages <= 0 {
		cfg.IncrementalSweepPages = 5
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.DetailWorkers <= 0 {
		cfg.DetailWorkers = 1
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.FetchRatePerSec <= 0 {
		cfg.FetchRatePerSec = 1.0
	}

	return cfg
}

func (c Config) Validate() error {
	if c.CatalogURL == "" {
		return fmt.Errorf("CATALOG_URL is required")
	}
	if c.GunpostBaseURL == "" {
		return fmt.Errorf("GUNPOST_BASE_URL is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
