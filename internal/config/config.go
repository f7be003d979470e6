package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/GregMSThompson/dashboard-layout/internal/grid"
)

// Storage backends for the persisted layout state.
const (
	BackendFile      = "file"
	BackendFirestore = "firestore"
	BackendRedis     = "redis"
)

type Config struct {
	Port           string
	LogLevel       string
	LogFile        string
	StorageBackend string
	DataDir        string
	ProjectID      string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	PresetsFile    string
	CellSize       float64
	GridGap        float64
	GridPadding    float64
	DragThreshold  float64
}

// New reads configuration from environment variables, loading a .env file first
// when one is present.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		LogLevel:       os.Getenv("LOGLEVEL"),
		LogFile:        os.Getenv("LOGFILE"),
		StorageBackend: getEnvOrDefault("STORAGEBACKEND", BackendFile),
		DataDir:        getEnvOrDefault("DATADIR", "./data"),
		ProjectID:      os.Getenv("PROJECTID"),
		RedisAddr:      getEnvOrDefault("REDISADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDISPASSWORD"),
		RedisDB:        getEnvIntOrDefault("REDISDB", 0),
		PresetsFile:    os.Getenv("PRESETSFILE"),
		CellSize:       getEnvFloatOrDefault("GRIDCELLSIZE", grid.DefaultCellSize),
		GridGap:        getEnvFloatOrDefault("GRIDGAP", grid.DefaultGap),
		GridPadding:    getEnvFloatOrDefault("GRIDPADDING", grid.DefaultPadding),
		DragThreshold:  getEnvFloatOrDefault("DRAGTHRESHOLD", grid.DefaultDragThreshold),
	}
}

// Metrics returns the configured pixel metrics of the grid.
func (c *Config) Metrics() grid.Metrics {
	return grid.Metrics{CellSize: c.CellSize, Gap: c.GridGap, Padding: c.GridPadding}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloatOrDefault(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
