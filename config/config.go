package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultSymbols is the snapshot universe used when SNAPSHOT_SYMBOLS is not set.
var DefaultSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA", "META", "BRK-B", "JPM", "V",
	"JNJ", "XOM",
}

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system:
// the HTTP server, the upstream market-data provider and the batch snapshot.
//
// Example ENV equivalent:
//
//	SERVER_HOST=0.0.0.0
//	SERVER_PORT=5000
//	PROVIDER_BASE_URL=https://query2.finance.yahoo.com
//	PROVIDER_TIMEOUT=10s
//	SNAPSHOT_SYMBOLS=AAPL,MSFT,GOOGL
//	SNAPSHOT_MONTHS=1
//	HISTORY_RANGE=1mo
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Upstream market-data provider settings
	Snapshot SnapshotConfig // Batch snapshot universe and window
	History  HistoryConfig  // Single-symbol history window
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        // Interface to bind (e.g., "0.0.0.0")
	Port           string        // The TCP port the HTTP server will listen on (e.g., "5000")
	RequestTimeout time.Duration // Deadline applied to every request context
}

// Addr returns the host:port pair passed to http.Server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// ProviderConfig defines how the Yahoo Finance client reaches the upstream.
//
// Fields:
//   - BaseURL: API host serving chart, quoteSummary and getcrumb.
//   - CookieURL: page requested once to obtain the session cookie.
//   - Timeout: per-call HTTP timeout.
//   - UserAgent: sent on every upstream request.
//   - CrumbTTL: how long a session crumb is reused.
type ProviderConfig struct {
	BaseURL   string
	CookieURL string
	Timeout   time.Duration
	UserAgent string
	CrumbTTL  time.Duration
}

// SnapshotConfig describes the batch snapshot served by GET /stock/.
type SnapshotConfig struct {
	Symbols     []string // Ordered ticker universe
	Months      int      // Window length, counted back from today
	Parallelism int      // Max concurrent upstream calls
}

// HistoryConfig describes the window served by GET /stock/history/:symbol.
type HistoryConfig struct {
	Range string // Provider range token, e.g. "1mo"
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", 30*time.Second)
	viper.SetDefault("PROVIDER_BASE_URL", "https://query2.finance.yahoo.com")
	viper.SetDefault("PROVIDER_COOKIE_URL", "https://fc.yahoo.com")
	viper.SetDefault("PROVIDER_TIMEOUT", 10*time.Second)
	viper.SetDefault("PROVIDER_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	viper.SetDefault("PROVIDER_CRUMB_TTL", time.Hour)
	viper.SetDefault("SNAPSHOT_SYMBOLS", strings.Join(DefaultSymbols, ","))
	viper.SetDefault("SNAPSHOT_MONTHS", 1)
	viper.SetDefault("SNAPSHOT_PARALLELISM", 4)
	viper.SetDefault("HISTORY_RANGE", "1mo")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Host:           viper.GetString("SERVER_HOST"),
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
		},
		Provider: ProviderConfig{
			BaseURL:   strings.TrimRight(viper.GetString("PROVIDER_BASE_URL"), "/"),
			CookieURL: viper.GetString("PROVIDER_COOKIE_URL"),
			Timeout:   viper.GetDuration("PROVIDER_TIMEOUT"),
			UserAgent: viper.GetString("PROVIDER_USER_AGENT"),
			CrumbTTL:  viper.GetDuration("PROVIDER_CRUMB_TTL"),
		},
		Snapshot: SnapshotConfig{
			Symbols:     ParseSymbols(viper.GetString("SNAPSHOT_SYMBOLS")),
			Months:      viper.GetInt("SNAPSHOT_MONTHS"),
			Parallelism: viper.GetInt("SNAPSHOT_PARALLELISM"),
		},
		History: HistoryConfig{
			Range: viper.GetString("HISTORY_RANGE"),
		},
	}

	validateConfig()
}

// ParseSymbols splits a comma-separated symbol list, dropping blanks.
// Symbols are otherwise kept verbatim; the provider decides what is valid.
func ParseSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Provider.BaseURL == "" {
		missing = append(missing, "PROVIDER_BASE_URL")
	}
	if AppConfig.Provider.CookieURL == "" {
		missing = append(missing, "PROVIDER_COOKIE_URL")
	}
	if AppConfig.Provider.Timeout <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT")
	}
	if AppConfig.Snapshot.Months < 1 {
		missing = append(missing, "SNAPSHOT_MONTHS")
	}
	if AppConfig.History.Range == "" {
		missing = append(missing, "HISTORY_RANGE")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}
