package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	return entries
}

func sqlAndRows(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		elapsed     time.Duration
		err         error
		expectedMsg string
	}{
		{name: "query logged in debug mode", debug: true, expectedMsg: "GORM query"},
		{name: "query hidden outside debug mode", debug: false, expectedMsg: ""},
		{name: "slow query", debug: false, elapsed: time.Second, expectedMsg: "GORM slow query"},
		{name: "failed query", debug: false, err: errors.New("relation does not exist"), expectedMsg: "GORM query failed"},
		{name: "record not found ignored", debug: false, err: gorm.ErrRecordNotFound, expectedMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := newBufferedLogger()
			gormLogger := newGormSlogLogger(base, tt.debug)

			gormLogger.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlAndRows("SELECT 1", 1), tt.err)

			entries := decodeEntries(t, buf)
			if tt.expectedMsg == "" {
				assert.Empty(t, entries)

				return
			}
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedMsg, entries[0]["msg"])
			assert.Equal(t, "gorm", entries[0]["component"])
			assert.Equal(t, "SELECT 1", entries[0]["sql"])
		})
	}
}

func TestGormSlogLogger_UnknownRowCountOmitted(t *testing.T) {
	base, buf := newBufferedLogger()
	gormLogger := newGormSlogLogger(base, true)

	gormLogger.Trace(context.Background(), time.Now(), sqlAndRows("BEGIN", -1), nil)

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "rows")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	base, buf := newBufferedLogger()
	gormLogger := newGormSlogLogger(base, true).LogMode(logger.Silent)

	gormLogger.Trace(context.Background(), time.Now(), sqlAndRows("SELECT 1", 1), errors.New("boom"))
	gormLogger.Info(context.Background(), "hello %s", "world")

	assert.Empty(t, buf.String())
}
