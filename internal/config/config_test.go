package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("INPUT_PATH", "alerts.csv")
	t.Setenv("REFERENCE_PATH", "reference.csv")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "alerts.csv", cfg.InputPath)
	assert.Equal(t, "reference.csv", cfg.ReferencePath)
	assert.Equal(t, "resolved_counties.csv", cfg.OutputPath)
	assert.Equal(t, "unresolved_counties.csv", cfg.UnresolvedPath)
	assert.Equal(t, ',', cfg.InputDelimiter)
	assert.Equal(t, "utf-8", cfg.InputEncoding)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "resolved-county-orders", cfg.KafkaSinkTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("OUTPUT_PATH", "clean.csv")
	t.Setenv("UNRESOLVED_PATH", "audit.csv")
	t.Setenv("INPUT_DELIMITER", ";")
	t.Setenv("INPUT_ENCODING", "latin1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("METRICS_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "clean.csv", cfg.OutputPath)
	assert.Equal(t, "audit.csv", cfg.UnresolvedPath)
	assert.Equal(t, ';', cfg.InputDelimiter)
	assert.Equal(t, "latin1", cfg.InputEncoding)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
}

func TestLoad_TabDelimiter(t *testing.T) {
	setRequired(t)

	for _, v := range []string{"tab", `\t`} {
		t.Setenv("INPUT_DELIMITER", v)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, '\t', cfg.InputDelimiter)
	}
}

func TestLoad_MissingInputPath(t *testing.T) {
	t.Setenv("REFERENCE_PATH", "reference.csv")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_PATH")
}

func TestLoad_MissingReferencePath(t *testing.T) {
	t.Setenv("INPUT_PATH", "alerts.csv")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REFERENCE_PATH")
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	setRequired(t)
	t.Setenv("INPUT_DELIMITER", "||")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_DELIMITER")
}

func TestLoad_InvalidEncoding(t *testing.T) {
	setRequired(t)
	t.Setenv("INPUT_ENCODING", "utf-16")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_ENCODING")
}

func TestLoad_KafkaTopicRequiredWithBrokers(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "broker1:9092")
	t.Setenv("KAFKA_SINK_TOPIC", "")

	cfg, err := Load()
	// The default topic applies when the variable is unset; an explicitly
	// empty value still falls back to the default.
	require.NoError(t, err)
	assert.Equal(t, "resolved-county-orders", cfg.KafkaSinkTopic)
}
