package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Optimizer defaults
const MIN_LOCATED_PARTICIPANTS = 2
const MIN_SEARCH_RADIUS_METERS = 1000.0
const MAX_SEARCH_RADIUS_METERS = 5000.0
const DEFAULT_ETA_SEARCH_RADIUS_METERS = 3000.0
const TOP_VENUES_LIMIT = 3

// Provider endpoints
const PLACES_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api/place"
const DISTANCE_MATRIX_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api/distancematrix"

// Cache settings
const OPTIMIZATION_RESULT_TTL_MINUTES = 10
const MATRIX_MEMO_TTL_MINUTES = 5
const CACHE_REFRESHER_SCHEDULE_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACES_NEARBY_RESPONSE_RESOURCE = "places_nearby_response.json"
const DISTANCE_MATRIX_RESPONSE_RESOURCE = "distance_matrix_response.json"

// LoadDotEnv loads a local .env file when present. Missing files are fine;
// deployed environments inject real variables.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file loaded:", err)
	}
}

// MapsAPIKey returns the key used for both provider clients.
func MapsAPIKey() string {
	return os.Getenv("MAPS_API_KEY")
}

// RedisAddress prefers the REDIS_ADDR variable over the default.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
