package monitoring

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/apetrov/my-blog-be/internal/services"
	"github.com/apetrov/my-blog-be/internal/util"
)

// BackupScheduler snapshots the data directory on a cron schedule.
type BackupScheduler struct {
	backupSvc services.BackupServiceProvider
	schedule  cron.Schedule
	clock     util.Clock
	ticker    *time.Ticker
	done      chan bool
}

// NewBackupScheduler parses the cron expression (standard 5-field format)
// and returns a scheduler driving the backup service.
func NewBackupScheduler(backupSvc services.BackupServiceProvider, cronExpr string, clock util.Clock) (*BackupScheduler, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &BackupScheduler{
		backupSvc: backupSvc,
		schedule:  schedule,
		clock:     clock,
		done:      make(chan bool),
	}, nil
}

// Run starts the scheduler's ticking loop. It checks once a minute whether
// the next scheduled run is due.
func (s *BackupScheduler) Run() {
	log.Info().Msg("Starting backup scheduler")
	s.ticker = time.NewTicker(1 * time.Minute)
	defer s.ticker.Stop()

	next := s.schedule.Next(s.clock.Now())

	for {
		select {
		case <-s.done:
			log.Info().Msg("Stopping backup scheduler")
			return
		case <-s.ticker.C:
			now := s.clock.Now()
			if now.Before(next) {
				continue
			}
			path, err := s.backupSvc.CreateSnapshot()
			if err != nil {
				log.Error().Err(err).Msg("Scheduled backup failed")
			} else {
				log.Info().Str("path", path).Msg("Scheduled backup created")
			}
			next = s.schedule.Next(now)
		}
	}
}

// Stop halts the scheduler.
func (s *BackupScheduler) Stop() {
	s.done <- true
}
