package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/domain/events"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/logger"
	log "github.com/sirupsen/logrus"
	"time"
)

type postingSaver interface {
	Save(ctx context.Context, posting models.JobPosting) error
}

type applicationRecorder interface {
	Record(ctx context.Context, sessionID string, jobID string) error
}

// WriteThrough copies created postings and applications into the database when the board runs on sqlite.
type WriteThrough struct {
	postings     postingSaver
	applications applicationRecorder
	timeout      time.Duration
}

func NewWriteThrough(bus EventBus.Bus, postings postingSaver, applications applicationRecorder) (*WriteThrough, error) {
	w := &WriteThrough{postings: postings, applications: applications, timeout: 5 * time.Second}

	if err := bus.Subscribe(events.PostingCreatedTopic, w.onPostingCreated); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.JobAppliedTopic, w.onJobApplied); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *WriteThrough) onPostingCreated(event events.PostingCreated) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.postings.Save(ctx, event.Posting); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to save posting %s: %v", event.Posting.ID, err)
	}
}

func (w *WriteThrough) onJobApplied(event events.JobApplied) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.applications.Record(ctx, event.SessionID, event.JobID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to record application of %s to %s: %v", event.SessionID, event.JobID, err)
	}
}
