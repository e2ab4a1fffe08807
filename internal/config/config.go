package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Config holds all resolver settings, populated from environment variables.
type Config struct {
	InputPath      string
	ReferencePath  string
	OutputPath     string
	UnresolvedPath string

	InputDelimiter rune
	InputEncoding  string

	LogLevel  string
	LogFormat string

	// Optional integrations.
	MetricsAddr    string   // "" disables the metrics endpoint
	KafkaBrokers   []string // empty disables the Kafka sink
	KafkaSinkTopic string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	delim, err := parseDelimiter(envOrDefault("INPUT_DELIMITER", ","))
	if err != nil {
		return nil, err
	}

	encoding := strings.ToLower(envOrDefault("INPUT_ENCODING", "utf-8"))
	switch encoding {
	case "utf-8", "latin1", "iso-8859-1":
	default:
		return nil, fmt.Errorf("unsupported INPUT_ENCODING %q", encoding)
	}

	cfg := &Config{
		InputPath:      os.Getenv("INPUT_PATH"),
		ReferencePath:  os.Getenv("REFERENCE_PATH"),
		OutputPath:     envOrDefault("OUTPUT_PATH", "resolved_counties.csv"),
		UnresolvedPath: envOrDefault("UNRESOLVED_PATH", "unresolved_counties.csv"),
		InputDelimiter: delim,
		InputEncoding:  encoding,
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "json"),
		MetricsAddr:    os.Getenv("METRICS_ADDR"),
		KafkaBrokers:   parseBrokers(os.Getenv("KAFKA_BROKERS")),
		KafkaSinkTopic: envOrDefault("KAFKA_SINK_TOPIC", "resolved-county-orders"),
	}

	if cfg.InputPath == "" {
		return nil, errors.New("INPUT_PATH is required")
	}
	if cfg.ReferencePath == "" {
		return nil, errors.New("REFERENCE_PATH is required")
	}

	return cfg, nil
}

// parseDelimiter accepts a single-rune delimiter, with "tab" and "\t"
// shorthands for tab-separated input.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", "\\t":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("INPUT_DELIMITER must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func parseBrokers(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
