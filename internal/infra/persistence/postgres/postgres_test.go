package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	base := sql.DBStats{WaitCount: 4, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, attrs, waited := poolWaitReport(base, base)
		assert.False(t, waited)
		assert.Nil(t, attrs)
	})

	t.Run("short waits stay at debug", func(t *testing.T) {
		cur := base
		cur.WaitCount += 2
		cur.WaitDuration += 10 * time.Millisecond

		level, attrs, waited := poolWaitReport(base, cur)
		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Equal(t, "avg_wait", attrs[2].Key)
		assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())
	})

	t.Run("long waits escalate to warn", func(t *testing.T) {
		cur := base
		cur.WaitCount++
		cur.WaitDuration += dbPoolWarnDurationThreshold

		level, _, waited := poolWaitReport(base, cur)
		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
	})
}
