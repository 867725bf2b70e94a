package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"billkit/internal/billing"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Log       LogConfig
	CORS      CORSConfig
	Billing   BillingConfig
	Scheduler SchedulerConfig
}

// BillingConfig holds organisation-level settings for invoice computation.
type BillingConfig struct {
	SellerState          string                     `mapstructure:"seller_state"`
	JurisdictionPolicy   billing.JurisdictionPolicy `mapstructure:"jurisdiction_policy"`
	UncheckedTransitions bool                       `mapstructure:"unchecked_transitions"`
}

// SchedulerConfig holds recurring invoice worker settings.
type SchedulerConfig struct {
	Enabled          bool `mapstructure:"enabled"`
	PollIntervalSecs int  `mapstructure:"poll_interval_secs"`
	BatchSize        int  `mapstructure:"batch_size"`
	MaxCatchUp       int  `mapstructure:"max_catch_up"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the BILLKIT_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BILLKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "billkit")
	v.SetDefault("db.password", "billkit_secret")
	v.SetDefault("db.name", "billkit_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Billing defaults
	v.SetDefault("billing.seller_state", billing.LegacySellerState)
	v.SetDefault("billing.jurisdiction_policy", string(billing.JurisdictionPolicyDefault))
	v.SetDefault("billing.unchecked_transitions", false)

	// Scheduler defaults
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.poll_interval_secs", 60)
	v.SetDefault("scheduler.batch_size", 50)
	v.SetDefault("scheduler.max_catch_up", 12)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                   "BILLKIT_SERVER_PORT",
		"server.read_timeout":           "BILLKIT_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "BILLKIT_SERVER_WRITE_TIMEOUT",
		"server.environment":            "BILLKIT_SERVER_ENVIRONMENT",
		"db.host":                       "BILLKIT_DB_HOST",
		"db.port":                       "BILLKIT_DB_PORT",
		"db.user":                       "BILLKIT_DB_USER",
		"db.password":                   "BILLKIT_DB_PASSWORD",
		"db.name":                       "BILLKIT_DB_NAME",
		"db.sslmode":                    "BILLKIT_DB_SSLMODE",
		"db.max_open":                   "BILLKIT_DB_MAX_OPEN",
		"db.max_idle":                   "BILLKIT_DB_MAX_IDLE",
		"log.level":                     "BILLKIT_LOG_LEVEL",
		"log.format":                    "BILLKIT_LOG_FORMAT",
		"cors.allowed_origins":          "BILLKIT_CORS_ALLOWED_ORIGINS",
		"billing.seller_state":          "BILLKIT_BILLING_SELLER_STATE",
		"billing.jurisdiction_policy":   "BILLKIT_BILLING_JURISDICTION_POLICY",
		"billing.unchecked_transitions": "BILLKIT_BILLING_UNCHECKED_TRANSITIONS",
		"scheduler.enabled":             "BILLKIT_SCHEDULER_ENABLED",
		"scheduler.poll_interval_secs":  "BILLKIT_SCHEDULER_POLL_INTERVAL_SECS",
		"scheduler.batch_size":          "BILLKIT_SCHEDULER_BATCH_SIZE",
		"scheduler.max_catch_up":        "BILLKIT_SCHEDULER_MAX_CATCH_UP",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLKIT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLKIT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Billing = BillingConfig{
		SellerState:          strings.TrimSpace(v.GetString("billing.seller_state")),
		JurisdictionPolicy:   billing.JurisdictionPolicy(strings.ToLower(v.GetString("billing.jurisdiction_policy"))),
		UncheckedTransitions: v.GetBool("billing.unchecked_transitions"),
	}
	if !billing.ValidStateCode(cfg.Billing.SellerState) {
		return nil, fmt.Errorf("billing.seller_state %q: must be a two-digit state code", cfg.Billing.SellerState)
	}
	switch cfg.Billing.JurisdictionPolicy {
	case billing.JurisdictionPolicyDefault, billing.JurisdictionPolicyReject:
	default:
		return nil, fmt.Errorf("billing.jurisdiction_policy %q: must be %q or %q",
			cfg.Billing.JurisdictionPolicy, billing.JurisdictionPolicyDefault, billing.JurisdictionPolicyReject)
	}

	cfg.Scheduler = SchedulerConfig{
		Enabled:          v.GetBool("scheduler.enabled"),
		PollIntervalSecs: v.GetInt("scheduler.poll_interval_secs"),
		BatchSize:        v.GetInt("scheduler.batch_size"),
		MaxCatchUp:       v.GetInt("scheduler.max_catch_up"),
	}
	if cfg.Scheduler.PollIntervalSecs <= 0 {
		cfg.Scheduler.PollIntervalSecs = 60
	}
	if cfg.Scheduler.BatchSize <= 0 {
		cfg.Scheduler.BatchSize = 50
	}
	if cfg.Scheduler.MaxCatchUp <= 0 {
		cfg.Scheduler.MaxCatchUp = 1
	}

	return cfg, nil
}
