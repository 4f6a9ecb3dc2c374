package helpers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "todo-api", "production")

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "todo-api", line["app"])
	assert.Equal(t, "logger initialized", line["msg"])
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, logrus.DebugLevel, newLogger(&buf, "a", "development").GetLevel())
	assert.Equal(t, logrus.WarnLevel, newLogger(&buf, "a", "development", "warn").GetLevel())
	assert.Equal(t, logrus.InfoLevel, newLogger(&buf, "a", "staging", "loud").GetLevel())
}
