package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetrov/my-blog-be/internal/util"
)

type stubBackup struct {
	calls int
}

func (s *stubBackup) CreateSnapshot() (string, error) {
	s.calls++
	return "/tmp/backup.zip", nil
}

func TestNewBackupScheduler_ParsesCron(t *testing.T) {
	clock := util.NewStubClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	_, err := NewBackupScheduler(&stubBackup{}, "0 3 * * *", clock)
	require.NoError(t, err)

	_, err = NewBackupScheduler(&stubBackup{}, "not a cron", clock)
	assert.Error(t, err)
}
