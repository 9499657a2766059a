package services

import (
	"context"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"time"
)

const (
	applicationsCleanupSchedule = "30 3 * * *"
	applicationsCleanupTimeout  = time.Minute
)

type applicationsRemover interface {
	RemoveOldApplications(ctx context.Context, olderThan time.Time) (int64, error)
}

// ApplicationsCleaner trims the durable apply log to the retention window.
// In-memory session trackers are not touched.
type ApplicationsCleaner struct {
	applications applicationsRemover
	retention    time.Duration
	cron         *cron.Cron
	now          func() time.Time
}

func NewApplicationsCleaner(applications applicationsRemover, retentionDays int) (*ApplicationsCleaner, error) {
	if retentionDays <= 0 {
		return nil, errors.Errorf("retention must be at least one day, got %d", retentionDays)
	}

	cleaner := &ApplicationsCleaner{
		applications: applications,
		retention:    time.Duration(retentionDays) * 24 * time.Hour,
		cron:         cron.New(),
		now:          time.Now,
	}

	if _, err := cleaner.cron.AddFunc(applicationsCleanupSchedule, cleaner.run); err != nil {
		return nil, errors.Wrap(err, "schedule applications cleanup")
	}
	return cleaner, nil
}

func (c *ApplicationsCleaner) Start() {
	c.cron.Start()
	log.Infof("applications cleaner started, retention %s", c.retention)
}

func (c *ApplicationsCleaner) Stop() {
	<-c.cron.Stop().Done()
}

// Clean removes applications recorded before the retention window and returns how many went.
func (c *ApplicationsCleaner) Clean(ctx context.Context) (int64, error) {
	cutoff := c.now().Add(-c.retention)

	removed, err := c.applications.RemoveOldApplications(ctx, cutoff)
	if err != nil {
		metrics.CleanupRuns.WithLabelValues("failed").Inc()
		return 0, errors.Wrapf(err, "remove applications before %s", cutoff.Format(time.DateOnly))
	}

	metrics.CleanupRuns.WithLabelValues("ok").Inc()
	metrics.ApplicationsRemoved.Add(float64(removed))
	return removed, nil
}

func (c *ApplicationsCleaner) run() {
	ctx, cancel := context.WithTimeout(context.Background(), applicationsCleanupTimeout)
	defer cancel()

	removed, err := c.Clean(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Error(err)
		return
	}
	if removed > 0 {
		log.Infof("removed %d expired applications", removed)
	}
}
