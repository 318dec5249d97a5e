package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AllModels is the allow-list value that enables journaling for every registration
const AllModels = "__all__"

// Defaults
const (
	DefaultPersistenceBackend = "db"
	DefaultEntryExpiryDays    = 365
	DefaultLogStream          = "audit"
	DefaultLogLevel           = "INFO"
	DefaultDatabaseDriver     = "sqlite3"
	DefaultDatabaseURL        = "adminjournal.db"
	DefaultKafkaTopic         = "adminjournal"
	DefaultPort               = "8080"
)

// Settings is the process configuration of the journal
type Settings struct {
	PersistenceBackend string
	EntryExpiryDays    int
	ModelAllowList     []string
	PatchAdminSite     bool
	LogStream          string
	LogLevel           string

	DatabaseDriver string
	DatabaseURL    string

	KafkaBrokers []string
	KafkaTopic   string

	OIDCIssuerURL string
	OIDCClientID  string

	Port          string
	AppLogLevel   string
	AppLogDevelop bool
}

// Provider hands out the current settings. Implementations may re-read
// their source on every call.
type Provider interface {
	Settings() Settings
}

// Env reads the settings from the process environment on every call
type Env struct{}

// Settings implements Provider
func (Env) Settings() Settings {
	return Load()
}

// Static always returns the same settings
type Static Settings

// Settings implements Provider
func (s Static) Settings() Settings {
	return Settings(s)
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are given) into the environment. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load builds Settings from the environment, applying defaults
func Load() Settings {
	return Settings{
		PersistenceBackend: getEnv("JOURNAL_PERSISTENCE_BACKEND", DefaultPersistenceBackend),
		EntryExpiryDays:    entryExpiryDaysOrDefault(),
		ModelAllowList:     splitList(os.Getenv("JOURNAL_MODEL_ALLOWLIST")),
		PatchAdminSite:     getEnvBool("JOURNAL_PATCH_ADMINSITE", true),
		LogStream:          getEnv("JOURNAL_BACKEND_LOG_LOGGER", DefaultLogStream),
		LogLevel:           getEnv("JOURNAL_BACKEND_LOG_LEVEL", DefaultLogLevel),

		DatabaseDriver: getEnv("DATABASE_DRIVER", DefaultDatabaseDriver),
		DatabaseURL:    getEnv("DATABASE_URL", DefaultDatabaseURL),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", DefaultKafkaTopic),

		OIDCIssuerURL: os.Getenv("OIDC_ISSUER_URL"),
		OIDCClientID:  os.Getenv("OIDC_CLIENT_ID"),

		Port:          getEnv("PORT", DefaultPort),
		AppLogLevel:   getEnv("LOG_LEVEL", "info"),
		AppLogDevelop: getEnvBool("LOG_DEVELOPMENT", false),
	}
}

// JournalsModel reports whether registrations of the given "domain.kind"
// label should be journaled
func (s Settings) JournalsModel(label string) bool {
	for _, allowed := range s.ModelAllowList {
		if allowed == AllModels || strings.EqualFold(allowed, label) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// EntryExpiryDays parses JOURNAL_ENTRY_EXPIRY_DAYS. Unset means
// DefaultEntryExpiryDays; a value that is not an integer is an error.
func EntryExpiryDays() (int, error) {
	return getEnvInt("JOURNAL_ENTRY_EXPIRY_DAYS", DefaultEntryExpiryDays)
}

// Load never fails; commands that act on the retention window call
// EntryExpiryDays to reject a malformed value.
func entryExpiryDaysOrDefault() int {
	days, err := EntryExpiryDays()
	if err != nil {
		return DefaultEntryExpiryDays
	}
	return days
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
