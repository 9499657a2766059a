package services

import (
	"github.com/maxaizer/jobboard/internal/catalog"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type snapshotSource interface {
	All() []models.JobPosting
}

// FacetStats periodically publishes per-category posting counts as a gauge.
type FacetStats struct {
	store      snapshotSource
	categories *catalog.Catalog
	cron       *cron.Cron
}

func NewFacetStats(store snapshotSource, categories *catalog.Catalog, schedule string) (*FacetStats, error) {

	fs := &FacetStats{
		store:      store,
		categories: categories,
		cron:       cron.New(),
	}

	_, err := fs.cron.AddFunc(schedule, func() { fs.Refresh() })
	if err != nil {
		return nil, err
	}

	return fs, nil
}

func (fs *FacetStats) Start() {
	fs.Refresh()
	fs.cron.Start()
	log.Info("facet stats started")
}

func (fs *FacetStats) Stop() {
	<-fs.cron.Stop().Done()
}

func (fs *FacetStats) Refresh() []catalog.Count {
	counts := fs.categories.Counts(fs.store.All())
	total := 0
	for _, c := range counts {
		metrics.PostingsByCategory.WithLabelValues(c.Category.ID).Set(float64(c.Count))
		total += c.Count
	}
	log.Debugf("facet stats refreshed, %d postings in %d categories", total, len(counts))
	return counts
}
