package logs_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"galapagos/internal/pkg/logs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logs.NewWithWriter(&buf, logs.Options{Level: "warn"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("counter drift", "portId", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "counter drift", record["msg"])
	assert.InDelta(t, 3, record["portId"], 0)
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logs.NewWithWriter(&buf, logs.Options{Level: "DEBUG", Pretty: true})
	require.NoError(t, err)

	logger.Debug("hello", "component", "test")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "component=test")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := logs.New(logs.Options{Level: "verbose"})
	require.EqualError(t, err, "unknown log level: verbose")
}
