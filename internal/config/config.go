package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Contact validation rules.
const (
	ContactRuleStrict  = "strict"
	ContactRuleLenient = "lenient"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	LogLevel            slog.Level
	ContactRule         string
	AdminKey            string
	FulfillmentEnabled  bool
	FulfillmentInterval time.Duration
	WorkerPoolSize      int
	FulfillmentBatch    int
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultLogLevel            = "info"
	defaultContactRule         = ContactRuleStrict
	defaultFulfillmentInterval = 5 * time.Second
	defaultWorkerPoolSize      = 4
	defaultFulfillmentBatch    = 32
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		ContactRule:         getString(lookup, "CONTACT_RULE", defaultContactRule),
		AdminKey:            getString(lookup, "ADMIN_KEY", ""),
		FulfillmentEnabled:  getBool(lookup, "FULFILLMENT_ENABLED", false),
		FulfillmentInterval: getDuration(lookup, "FULFILLMENT_INTERVAL", defaultFulfillmentInterval),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		FulfillmentBatch:    getInt(lookup, "FULFILLMENT_BATCH", defaultFulfillmentBatch),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orderdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
		intervalStr        = cfg.FulfillmentInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.ContactRule, "contact-rule", cfg.ContactRule, "Contact validation rule (strict or lenient)")
	fs.BoolVar(&cfg.FulfillmentEnabled, "fulfillment", cfg.FulfillmentEnabled, "Advance orders through fulfillment in background")
	fs.StringVar(&intervalStr, "fulfillment-interval", intervalStr, "Interval between fulfillment passes")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent fulfillment workers")
	fs.IntVar(&cfg.FulfillmentBatch, "fulfillment-batch", cfg.FulfillmentBatch, "Maximum orders per fulfillment pass")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var err error

	if cfg.FulfillmentInterval, err = time.ParseDuration(intervalStr); err != nil {
		return nil, fmt.Errorf("invalid fulfillment interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if keyFile, ok := lookup("ADMIN_KEY_FILE"); ok && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read admin key file: %w", err)
		}
		cfg.AdminKey = strings.TrimSpace(string(content))
	}

	cfg.ContactRule = strings.ToLower(strings.TrimSpace(cfg.ContactRule))
	if cfg.ContactRule != ContactRuleStrict && cfg.ContactRule != ContactRuleLenient {
		return nil, fmt.Errorf("unknown contact rule %q", cfg.ContactRule)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.FulfillmentBatch <= 0 {
		cfg.FulfillmentBatch = defaultFulfillmentBatch
	}

	if cfg.FulfillmentInterval <= 0 {
		cfg.FulfillmentInterval = defaultFulfillmentInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
