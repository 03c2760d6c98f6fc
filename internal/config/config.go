package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSqidsAlphabet is the shuffled alphabet shared with the frontend;
// changing it invalidates every opaque id already handed out.
const DefaultSqidsAlphabet = "Kj3eblC5ocwv682gTtdMQIZpWH7hJsLkS0BP4EGruUYyqAOXm9nfxizVaRDFN1"

// DBConfig holds the connection settings for one relational target.
type DBConfig struct {
	Type            string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
}

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string

	// ProviderName is stamped into the pdam column of every synced row.
	ProviderName string

	SqidsAlphabet  string
	SqidsMinLength int

	// Billing is the raw source store (rekair, master_tni, cust).
	Billing DBConfig
	// Coklit is the reconciliation store (rekening_tni, sync_log, satker).
	Coklit DBConfig
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	billing := DBConfig{
		Type:            getenv("DATABASE_TYPE", "mysql"),
		Host:            getenv("DATABASE_HOST", "localhost"),
		Port:            getenv("DATABASE_PORT", "3306"),
		Name:            getenv("DATABASE_NAME", "billing"),
		User:            getenv("DATABASE_USER", "root"),
		Password:        getenv("DATABASE_PASSWORD", ""),
		MaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		MaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		ConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),
	}

	// The coklit store shares the server by default and differs only in
	// database name, matching how the two schemas are deployed.
	coklit := billing
	coklit.Name = getenv("COKLIT_DATABASE_NAME", "coklit")
	coklit.Host = getenv("COKLIT_DATABASE_HOST", billing.Host)
	coklit.Port = getenv("COKLIT_DATABASE_PORT", billing.Port)
	coklit.User = getenv("COKLIT_DATABASE_USER", billing.User)
	coklit.Password = getenv("COKLIT_DATABASE_PASSWORD", billing.Password)

	return Config{
		AppName:        getenv("APP_SERVICE", "tirtabill"),
		AppVersion:     getenv("APP_VERSION", "0.1.0"),
		Environment:    getenv("ENVIRONMENT", "development"),
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		ProviderName:   getenv("PROVIDER_NAME", "PDAM Kabupaten Banyumas"),
		SqidsAlphabet:  getenv("SQIDS_ALPHABET", DefaultSqidsAlphabet),
		SqidsMinLength: getenvInt("SQIDS_MIN_LENGTH", 16),
		Billing:        billing,
		Coklit:         coklit,
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
