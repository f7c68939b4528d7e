package services

import (
	"testing"
	"time"

	"github.com/apetrov/my-blog-be/internal/models"
	"github.com/apetrov/my-blog-be/internal/storage"
	"github.com/apetrov/my-blog-be/internal/storage/jsonfile"
	"github.com/apetrov/my-blog-be/internal/util"
	"github.com/stretchr/testify/require"
)

// stubEvents satisfies EventServiceProvider without touching storage.
type stubEvents struct {
	recorded []string
}

func (s *stubEvents) Record(eventType, level, message string, userID int) {
	s.recorded = append(s.recorded, eventType)
}

func (s *stubEvents) Recent(limit int) ([]models.Event, error) {
	return nil, nil
}

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)
	return store
}

func testClock() *util.StubClock {
	return util.NewStubClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
}
