package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/catalog"
	"github.com/maxaizer/jobboard/internal/domain/events"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/seed"
	"github.com/maxaizer/jobboard/internal/store"
	"github.com/maxaizer/jobboard/internal/tracking"
	"github.com/maxaizer/jobboard/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestBoard(t *testing.T) (*JobBoard, EventBus.Bus) {
	postings, err := seed.Postings(now)
	require.NoError(t, err)
	s := store.New(store.SequentialIDs)
	require.NoError(t, s.Load(postings))

	bus := EventBus.New()
	board := NewJobBoard(bus, s, catalog.Default(), tracking.NewSessions(time.Hour, 0), PageSizes{Feed: 5, Search: 15})
	board.now = func() time.Time { return now }
	return board, bus
}

func jobIDs(postings []models.JobPosting) []string {
	ids := make([]string, 0, len(postings))
	for _, p := range postings {
		ids = append(ids, p.ID)
	}
	return ids
}

func roofer() models.JobPostingInput {
	return models.JobPostingInput{
		Title:        "Roofer",
		Company:      "TopCover",
		Location:     "Austin",
		PayText:      "$25/hr",
		DurationText: "Full-time",
		Category:     "construction",
		Description:  "Install and repair residential roofs with our crew.",
		Skills:       []string{"Roofing"},
		Urgent:       true,
	}
}

func Test_JobBoard_Query_WhenConstruction_ShouldReturnSeededPostings(t *testing.T) {
	assert := assert.New(t)
	board, _ := newTestBoard(t)
	spec := board.FeedQuery()
	spec.Category = "Construction"

	page, err := board.Query(spec)

	assert.NoError(err)
	assert.Equal([]string{"1", "2", "3"}, jobIDs(page.Items))
	assert.Equal(3, page.TotalMatched)
	assert.False(page.HasMore)
	assert.Equal(5, page.PageSize)
}

func Test_JobBoard_Query_WhenInvalidSpec_ShouldReturnValidationError(t *testing.T) {
	board, _ := newTestBoard(t)
	spec := board.SearchQuery()
	spec.Salary = models.SalaryRange{Min: 10, Max: 5}

	_, err := board.Query(spec)

	assert.True(t, models.IsValidationError(err))
}

func Test_JobBoard_PostJob_ShouldInsertNewestFirstAndPublish(t *testing.T) {
	assert := assert.New(t)
	board, bus := newTestBoard(t)

	var published []events.PostingCreated
	require.NoError(t, bus.Subscribe(events.PostingCreatedTopic, func(e events.PostingCreated) {
		published = append(published, e)
	}))

	id, result, err := board.PostJob(context.Background(), roofer())

	assert.NoError(err)
	assert.True(result.IsValid)
	assert.Equal("49", id)
	if assert.Len(published, 1) {
		assert.Equal("49", published[0].Posting.ID)
		assert.Equal("Construction", published[0].Posting.Category)
		assert.Equal(models.Urgent, published[0].Posting.Urgency)
		assert.Equal(now, published[0].Posting.PostedAt)
	}

	spec := board.FeedQuery()
	spec.Category = "Construction"
	page, err := board.Query(spec)
	assert.NoError(err)
	assert.Equal([]string{"49", "1", "2", "3"}, jobIDs(page.Items))
	assert.Equal(4, page.TotalMatched)
}

func Test_JobBoard_PostJob_WhenFormInvalid_ShouldNotInsert(t *testing.T) {
	assert := assert.New(t)
	board, bus := newTestBoard(t)
	published := 0
	require.NoError(t, bus.Subscribe(events.PostingCreatedTopic, func(events.PostingCreated) { published++ }))

	input := roofer()
	input.Category = "Astronautics"
	id, result, err := board.PostJob(context.Background(), input)

	assert.NoError(err)
	assert.Empty(id)
	assert.False(result.IsValid)
	assert.Contains(result.Errors, validation.FieldCategory)
	assert.Zero(published)
	assert.Len(board.store.All(), 48)
}

func Test_JobBoard_PostJob_WhenContextCanceled_ShouldFail(t *testing.T) {
	board, _ := newTestBoard(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := board.PostJob(ctx, roofer())

	assert.ErrorIs(t, err, context.Canceled)
}

func Test_JobBoard_ToggleSaved_ShouldBePerSession(t *testing.T) {
	assert := assert.New(t)
	board, _ := newTestBoard(t)

	assert.False(board.IsSaved("alice", "1"))
	assert.True(board.ToggleSaved("alice", "1"))
	assert.True(board.IsSaved("alice", "1"))
	assert.False(board.IsSaved("bob", "1"))
	assert.False(board.ToggleSaved("alice", "1"))
	assert.False(board.IsSaved("alice", "1"))
}

func Test_JobBoard_ToggleApplied_ShouldPublishOnlyWhenApplying(t *testing.T) {
	assert := assert.New(t)
	board, bus := newTestBoard(t)
	var applied []events.JobApplied
	require.NoError(t, bus.Subscribe(events.JobAppliedTopic, func(e events.JobApplied) {
		applied = append(applied, e)
	}))

	assert.True(board.ToggleApplied("alice", "4"))
	assert.False(board.ToggleApplied("alice", "4"))
	assert.True(board.Apply("alice", "5"))
	assert.False(board.Apply("alice", "5"))

	assert.Equal([]events.JobApplied{{SessionID: "alice", JobID: "4"}, {SessionID: "alice", JobID: "5"}}, applied)
	assert.True(board.IsApplied("alice", "5"))
	assert.False(board.IsApplied("alice", "4"))
}

func Test_JobBoard_SavedJobs_ShouldKeepOrderAndSkipMissing(t *testing.T) {
	board, _ := newTestBoard(t)
	board.ToggleSaved("alice", "10")
	board.ToggleSaved("alice", "missing")
	board.ToggleSaved("alice", "2")

	assert.Equal(t, []string{"10", "2"}, jobIDs(board.SavedJobs("alice")))
	assert.Empty(t, board.SavedJobs("nobody"))
	assert.Empty(t, board.AppliedJobs("alice"))
}

func Test_JobBoard_EndSession_ShouldForgetState(t *testing.T) {
	board, _ := newTestBoard(t)
	board.ToggleSaved("alice", "1")

	board.EndSession("alice")

	assert.False(t, board.IsSaved("alice", "1"))
}

func Test_JobBoard_Job(t *testing.T) {
	board, _ := newTestBoard(t)

	job, err := board.Job("26")
	assert.NoError(t, err)
	assert.Equal(t, "Frontend Developer", job.Title)

	_, err = board.Job("999")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func Test_JobBoard_CategoryCounts(t *testing.T) {
	board, _ := newTestBoard(t)

	counts := board.CategoryCounts()

	assert.Len(t, counts, 12)
	assert.Equal(t, "Construction", counts[0].Category.DisplayName)
	assert.Equal(t, 3, counts[0].Count)
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	assert.Equal(t, 48, total)
}
