// backend/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// SourcesConfig holds per-source upstream endpoints and credentials.
type SourcesConfig struct {
	PositionURL string
	CatalogURL  string
	NasaAPIKey  string
	LaunchURL   string
	SunspotsURL string
	NewsURL     string
}

// IntervalsConfig defines background fetch intervals in seconds.
type IntervalsConfig struct {
	PositionSeconds int
	CatalogSeconds  int
	ApodSeconds     int
	NeoSeconds      int
	DonkiSeconds    int
	LaunchSeconds   int
	SunspotsSeconds int
	NewsSeconds     int
}

// ExtractionConfig lists the ordered candidate field names the catalog sync
// tries when extracting scalar fields from an upstream item. The lists are
// configuration: extending them must not change the extraction algorithm.
type ExtractionConfig struct {
	KeyFields     []string `yaml:"key_fields"`
	TitleFields   []string `yaml:"title_fields"`
	StatusFields  []string `yaml:"status_fields"`
	UpdatedFields []string `yaml:"updated_fields"`
}

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Sources    SourcesConfig
	Intervals  IntervalsConfig
	ListLimit  int
	Extraction ExtractionConfig
}

// DefaultExtraction returns the built-in candidate lists.
func DefaultExtraction() ExtractionConfig {
	return ExtractionConfig{
		KeyFields:     []string{"dataset_id", "id", "uuid", "studyId", "accession", "osdr_id"},
		TitleFields:   []string{"title", "name", "label"},
		StatusFields:  []string{"status", "state", "lifecycle"},
		UpdatedFields: []string{"updated", "updated_at", "modified", "lastUpdated", "timestamp"},
	}
}

// Load reads configuration from the environment, honoring a local .env file
// if one is present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Config: loaded environment from .env file")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "skywatch"),
			Password: getEnv("DB_PASSWORD", "skywatch"),
			DBName:   getEnv("DB_NAME", "skywatch"),
		},
		Sources: SourcesConfig{
			PositionURL: getEnv("POSITION_URL", "https://api.wheretheiss.at/v1/satellites/25544"),
			CatalogURL:  getEnv("CATALOG_URL", "https://visualization.osdr.nasa.gov/biodata/api/v2/datasets/?format=json"),
			NasaAPIKey:  getEnv("NASA_API_KEY", "DEMO_KEY"),
			LaunchURL:   getEnv("LAUNCH_URL", "https://api.spacexdata.com/v4/launches/next"),
			SunspotsURL: getEnv("SUNSPOTS_CSV_URL", ""),
			NewsURL:     getEnv("NEWS_PAGE_URL", ""),
		},
		Intervals: IntervalsConfig{
			PositionSeconds: getEnvInt("POSITION_EVERY_SECONDS", 120),
			CatalogSeconds:  getEnvInt("CATALOG_EVERY_SECONDS", 600),
			ApodSeconds:     getEnvInt("APOD_EVERY_SECONDS", 43200),
			NeoSeconds:      getEnvInt("NEO_EVERY_SECONDS", 7200),
			DonkiSeconds:    getEnvInt("DONKI_EVERY_SECONDS", 3600),
			LaunchSeconds:   getEnvInt("LAUNCH_EVERY_SECONDS", 3600),
			SunspotsSeconds: getEnvInt("SUNSPOTS_EVERY_SECONDS", 21600),
			NewsSeconds:     getEnvInt("NEWS_EVERY_SECONDS", 3600),
		},
		ListLimit:  getEnvInt("CATALOG_LIST_LIMIT", 20),
		Extraction: DefaultExtraction(),
	}

	if path := os.Getenv("EXTRACTION_CONFIG"); path != "" {
		if err := loadExtractionFile(path, &cfg.Extraction); err != nil {
			log.Printf("WARN Config: could not load extraction config from %s: %v. Using defaults.", path, err)
		} else {
			log.Printf("Config: loaded extraction candidate lists from %s", path)
		}
	}

	return cfg
}

// loadExtractionFile overrides candidate lists from a YAML file. Lists left
// empty in the file keep their defaults.
func loadExtractionFile(path string, out *ExtractionConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read extraction config: %w", err)
	}

	var override ExtractionConfig
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("failed to unmarshal extraction config: %w", err)
	}

	if len(override.KeyFields) > 0 {
		out.KeyFields = override.KeyFields
	}
	if len(override.TitleFields) > 0 {
		out.TitleFields = override.TitleFields
	}
	if len(override.StatusFields) > 0 {
		out.StatusFields = override.StatusFields
	}
	if len(override.UpdatedFields) > 0 {
		out.UpdatedFields = override.UpdatedFields
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
