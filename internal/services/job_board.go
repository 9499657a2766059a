package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/catalog"
	"github.com/maxaizer/jobboard/internal/domain/events"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/maxaizer/jobboard/internal/query"
	"github.com/maxaizer/jobboard/internal/tracking"
	"github.com/maxaizer/jobboard/internal/validation"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strconv"
	"time"
)

type postingStore interface {
	All() []models.JobPosting
	Insert(posting models.JobPosting) (string, error)
	ByID(id string) (models.JobPosting, error)
}

type PageSizes struct {
	Feed   int
	Search int
}

// JobBoard is the entry point the UI layer calls: queries, posting, and per-session saved/applied state.
type JobBoard struct {
	bus        EventBus.Bus
	store      postingStore
	engine     *query.Engine
	categories *catalog.Catalog
	sessions   *tracking.Sessions
	pageSizes  PageSizes
	now        func() time.Time
}

func NewJobBoard(bus EventBus.Bus, store postingStore, categories *catalog.Catalog,
	sessions *tracking.Sessions, pageSizes PageSizes) *JobBoard {

	return &JobBoard{
		bus:        bus,
		store:      store,
		engine:     query.NewEngine(categories),
		categories: categories,
		sessions:   sessions,
		pageSizes:  pageSizes,
		now:        time.Now,
	}
}

// FeedQuery is the first page of the home feed.
func (b *JobBoard) FeedQuery() models.QuerySpec {
	return models.NewQuerySpec(b.pageSizes.Feed)
}

// SearchQuery is the first page of the search screen.
func (b *JobBoard) SearchQuery() models.QuerySpec {
	return models.NewQuerySpec(b.pageSizes.Search)
}

func (b *JobBoard) Query(spec models.QuerySpec) (models.ResultPage, error) {
	start := time.Now()
	page, err := b.engine.Query(b.store, spec)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeValidation).Warnf("rejected query: %v", err)
		return models.ResultPage{}, err
	}

	metrics.QueryDuration.Observe(time.Since(start).Seconds())
	metrics.QueriesCounter.WithLabelValues(string(spec.Sort)).Inc()
	metrics.MatchedResults.Observe(float64(page.TotalMatched))
	log.Debugf("query %+v matched %d postings", spec, page.TotalMatched)
	return page, nil
}

// PostJob validates the form and stores the posting. An invalid form is reported through
// the FormResult with an empty id and no error.
func (b *JobBoard) PostJob(ctx context.Context, input models.JobPostingInput) (string, validation.FormResult, error) {
	if err := ctx.Err(); err != nil {
		return "", validation.FormResult{}, err
	}

	result := validation.ValidateJobPostingForm(input, b.categories)
	if !result.IsValid {
		metrics.FormValidationFailures.WithLabelValues("job_posting").Inc()
		return "", result, nil
	}

	category, _ := b.categories.Resolve(input.Category)
	posting := input.ToPosting(category.DisplayName, b.now())

	id, err := b.store.Insert(posting)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).Errorf("failed to insert posting: %v", err)
		return "", result, errors.Wrap(err, "insert posting")
	}
	posting.ID = id

	metrics.PostingsCreatedCounter.Inc()
	b.bus.Publish(events.PostingCreatedTopic, events.PostingCreated{Posting: posting})
	log.Infof("posting %s created in %s", id, category.DisplayName)
	return id, result, nil
}

func (b *JobBoard) Job(id string) (models.JobPosting, error) {
	return b.store.ByID(id)
}

func (b *JobBoard) ToggleSaved(sessionID, jobID string) bool {
	saved := b.tracker(sessionID).ToggleSaved(jobID)
	metrics.TogglesCounter.WithLabelValues("saved", strconv.FormatBool(saved)).Inc()
	return saved
}

// ToggleApplied flips the applied state. Becoming applied publishes JobApplied.
func (b *JobBoard) ToggleApplied(sessionID, jobID string) bool {
	applied := b.tracker(sessionID).ToggleApplied(jobID)
	metrics.TogglesCounter.WithLabelValues("applied", strconv.FormatBool(applied)).Inc()
	if applied {
		b.bus.Publish(events.JobAppliedTopic, events.JobApplied{SessionID: sessionID, JobID: jobID})
	}
	return applied
}

// Apply marks the job applied without ever un-applying it.
func (b *JobBoard) Apply(sessionID, jobID string) bool {
	added := b.tracker(sessionID).MarkApplied(jobID)
	if added {
		metrics.TogglesCounter.WithLabelValues("applied", "true").Inc()
		b.bus.Publish(events.JobAppliedTopic, events.JobApplied{SessionID: sessionID, JobID: jobID})
	}
	return added
}

func (b *JobBoard) IsSaved(sessionID, jobID string) bool {
	tracker, ok := b.sessions.Lookup(sessionID)
	return ok && tracker.IsSaved(jobID)
}

func (b *JobBoard) IsApplied(sessionID, jobID string) bool {
	tracker, ok := b.sessions.Lookup(sessionID)
	return ok && tracker.IsApplied(jobID)
}

// SavedJobs resolves the session's saved ids, skipping postings that no longer exist.
func (b *JobBoard) SavedJobs(sessionID string) []models.JobPosting {
	tracker, ok := b.sessions.Lookup(sessionID)
	if !ok {
		return nil
	}
	return b.resolve(tracker.Saved())
}

func (b *JobBoard) AppliedJobs(sessionID string) []models.JobPosting {
	tracker, ok := b.sessions.Lookup(sessionID)
	if !ok {
		return nil
	}
	return b.resolve(tracker.Applied())
}

func (b *JobBoard) EndSession(sessionID string) {
	b.sessions.Drop(sessionID)
	metrics.ActiveSessions.Set(float64(b.sessions.Len()))
}

func (b *JobBoard) CategoryCounts() []catalog.Count {
	return b.categories.Counts(b.store.All())
}

func (b *JobBoard) tracker(sessionID string) *tracking.Tracker {
	tracker := b.sessions.ForSession(sessionID)
	metrics.ActiveSessions.Set(float64(b.sessions.Len()))
	return tracker
}

func (b *JobBoard) resolve(ids []string) []models.JobPosting {
	postings := make([]models.JobPosting, 0, len(ids))
	for _, id := range ids {
		posting, err := b.store.ByID(id)
		if err != nil {
			log.Debugf("skipping job %s: %v", id, err)
			continue
		}
		postings = append(postings, posting)
	}
	return postings
}
