package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// DataDir roots all local persistence.
	DataDir string
	// StateFile is the key-value state file inside DataDir.
	StateFile string
	// AuditDir is the git audit-trail repository inside DataDir; empty
	// disables the trail.
	AuditDir string
	// RedisURL switches persistence to Redis when set.
	RedisURL string
	// MaxPhotos bounds each cleaning photo gallery.
	MaxPhotos int
	// CaptureScale is the raster upscale factor for print fidelity.
	CaptureScale float64
	// ViewportWidth is the emulated capture width in CSS pixels.
	ViewportWidth int
	// CaptureTimeout bounds one rasterization attempt.
	CaptureTimeout time.Duration
	// SettleDelay is an extra wait after a document reports ready.
	SettleDelay time.Duration
	// ExportMonth/ExportYear request a one-shot bulk export from the cmd
	// shell; zero means none.
	ExportMonth int
	ExportYear  int
	// ExportDir receives one-shot export output.
	ExportDir string
}

func Load() Config {
	_ = godotenv.Load()

	dataDir := getenv("RESTOPS_DATA_DIR", "./data")
	return Config{
		DataDir:        dataDir,
		StateFile:      getenv("RESTOPS_STATE_FILE", filepath.Join(dataDir, "state.json")),
		AuditDir:       getenv("RESTOPS_AUDIT_DIR", filepath.Join(dataDir, "audit")),
		RedisURL:       getenv("REDIS_URL", ""),
		MaxPhotos:      getenvInt("RESTOPS_MAX_PHOTOS", 10),
		CaptureScale:   float64(getenvInt("RESTOPS_CAPTURE_SCALE", 2)),
		ViewportWidth:  getenvInt("RESTOPS_VIEWPORT_WIDTH", 794),
		CaptureTimeout: time.Duration(getenvInt("RESTOPS_CAPTURE_TIMEOUT_SECONDS", 30)) * time.Second,
		SettleDelay:    time.Duration(getenvInt("RESTOPS_SETTLE_DELAY_MS", 0)) * time.Millisecond,
		ExportMonth:    getenvInt("RESTOPS_EXPORT_MONTH", 0),
		ExportYear:     getenvInt("RESTOPS_EXPORT_YEAR", 0),
		ExportDir:      getenv("RESTOPS_EXPORT_DIR", dataDir),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
