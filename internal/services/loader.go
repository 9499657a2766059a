package services

import (
	"context"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
)

// PostingSource is anything that can provide the initial set of postings, in feed order.
type PostingSource interface {
	Load(ctx context.Context) ([]models.JobPosting, error)
}

type storeLoader interface {
	Load(postings []models.JobPosting) error
}

// LoadStore fills store from source.
func LoadStore(ctx context.Context, source PostingSource, store storeLoader) error {
	start := time.Now()

	postings, err := source.Load(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSource).Errorf("failed to load postings: %v", err)
		return errors.Wrap(err, "load postings")
	}

	if err = store.Load(postings); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).Errorf("failed to fill store: %v", err)
		return errors.Wrap(err, "fill store")
	}

	log.Infof("loaded %d postings in %v", len(postings), time.Since(start))
	return nil
}
