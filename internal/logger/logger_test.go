package logger_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lecturedeck/internal/logger"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	log.Info("hidden")
	log.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown 1")
}

func TestFieldsAreSortedAndPrefixed(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false)).
		WithPrefix("generation").
		WithFields(map[string]any{"zeta": 1, "alpha": "a"})

	log.Info("done")

	line := buf.String()
	assert.Contains(t, line, "[generation]")
	assert.Less(t, strings.Index(line, "alpha=a"), strings.Index(line, "zeta=1"))
}

func TestDerivedLoggerDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.WithOutput(&buf), logger.WithColors(false))
	_ = parent.WithField("student_id", 7)

	parent.Info("plain")
	assert.NotContains(t, buf.String(), "student_id")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	assert.Equal(t, logger.WARN, logger.ParseLevel("warning"))
	assert.Equal(t, logger.ERROR, logger.ParseLevel(" ERROR "))
	assert.Equal(t, logger.INFO, logger.ParseLevel("nonsense"))
}

func TestContextRoundTrip(t *testing.T) {
	log := logger.New(logger.WithPrefix("req"))
	ctx := logger.NewContext(context.Background(), log)

	assert.Same(t, log, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}

func TestWithRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	log := logger.New(logger.WithColors(false), logger.WithRotatingFile(logger.FileOptions{
		Path:      path,
		MaxSizeMB: 1,
	}))

	log.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
