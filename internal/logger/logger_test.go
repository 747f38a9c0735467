package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, level string) (*bytes.Buffer, func()) {
	t.Helper()
	var buf bytes.Buffer
	prevOut := logrus.StandardLogger().Out
	prevLevel := logrus.GetLevel()
	prevFormatter := logrus.StandardLogger().Formatter
	Setup(level, &buf)
	return &buf, func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
		logrus.SetFormatter(prevFormatter)
	}
}

func TestWithContextAddsRequestIDAndUser(t *testing.T) {
	buf, restore := captureJSON(t, "info")
	defer restore()

	ctx := ContextWithRequestID(context.Background(), "req-123")
	ctx = ContextWithUser(ctx, "5f0c1b1e-0000-4000-8000-000000000001")

	WithContext(ctx).WithField("org_id", "abc").Info("organisation created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "5f0c1b1e-0000-4000-8000-000000000001", entry["user"])
	assert.Equal(t, "abc", entry["org_id"])
	assert.Equal(t, "organisation created", entry["msg"])
}

func TestWithContextAnonymous(t *testing.T) {
	buf, restore := captureJSON(t, "info")
	defer restore()

	WithContext(context.Background()).Warn("no subject")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "anonymous", entry["user"])
	assert.NotContains(t, entry, "request_id")
}

func TestSetupLevel(t *testing.T) {
	_, restore := captureJSON(t, "debug")
	defer restore()
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("not-a-level", nil)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
