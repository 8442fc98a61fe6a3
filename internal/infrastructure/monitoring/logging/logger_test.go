package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerDefaults(t *testing.T) {
	l, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Info("hello")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestFieldsReachZap(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core)

	l.Info("submission scored",
		String("submission_id", "abc"),
		Int("ligands", 3),
		Float64("threshold", 0.5),
		Bool("mock", true),
	)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "submission scored", entries[0].Message)
	assert.Len(t, entries[0].Context, 4)
}

func TestWithAttachesFields(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).With(String("component", "normalizer"))

	l.Warn("empty line dropped")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "normalizer", entries[0].ContextMap()["component"])
}

func TestErrField(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debug("ignored")
	l.Info("ignored")
	assert.Equal(t, l, l.With(String("k", "v")))
	assert.Equal(t, l, l.Named("sub"))
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	l := NewNopLogger()
	SetDefault(l)
	assert.Equal(t, l, Default())

	// nil is ignored
	SetDefault(nil)
	assert.Equal(t, l, Default())
}
