package repositories

import (
	"context"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
	"time"
)

func newTestDb(t *testing.T) *DbContext {
	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())
	t.Cleanup(func() { _ = dbCtx.Close() })
	return dbCtx
}

func Test_DbContext_Migrate_ShouldSeedPostingsOnce(t *testing.T) {
	dbCtx := newTestDb(t)
	postings := NewPostingsRepository(dbCtx.DB)

	require.NoError(t, dbCtx.Migrate())

	count, err := postings.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(48), count)
}

func Test_Postings_Load_ShouldKeepFeedOrder(t *testing.T) {
	assert := assert.New(t)
	dbCtx := newTestDb(t)
	postings := NewPostingsRepository(dbCtx.DB)

	loaded, err := postings.Load(context.Background())
	require.NoError(t, err)

	assert.Len(loaded, 48)
	assert.Equal("1", loaded[0].ID)
	assert.Equal("48", loaded[47].ID)
	assert.Equal([]string{"Lifting", "Power Tools", "Site Safety"}, loaded[0].Skills)
	assert.Equal(models.Urgent, loaded[0].Urgency)
}

func Test_Postings_Save_ShouldPutPostingFirst(t *testing.T) {
	assert := assert.New(t)
	dbCtx := newTestDb(t)
	postings := NewPostingsRepository(dbCtx.DB)
	postedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	err := postings.Save(context.Background(), models.JobPosting{
		ID:       "49",
		Title:    "Roofer",
		Category: "Construction",
		Urgency:  models.Normal,
		PostedAt: postedAt,
		Benefits: []string{"Weekly pay"},
	})
	require.NoError(t, err)

	loaded, err := postings.Load(context.Background())
	require.NoError(t, err)
	assert.Len(loaded, 49)
	assert.Equal("49", loaded[0].ID)
	assert.Equal("1", loaded[1].ID)

	stored, err := postings.GetByID(context.Background(), "49")
	assert.NoError(err)
	assert.Equal("Roofer", stored.Title)
	assert.True(postedAt.Equal(stored.PostedAt))
	assert.Equal([]string{"Weekly pay"}, stored.Benefits)
}

func Test_Postings_Save_WhenDuplicateID_ShouldFail(t *testing.T) {
	dbCtx := newTestDb(t)
	postings := NewPostingsRepository(dbCtx.DB)

	err := postings.Save(context.Background(), models.JobPosting{ID: "1", Urgency: models.Normal})

	assert.Error(t, err)
}

func Test_Postings_GetByID_WhenMissing_ShouldReturnErrNotFound(t *testing.T) {
	dbCtx := newTestDb(t)
	postings := NewPostingsRepository(dbCtx.DB)

	_, err := postings.GetByID(context.Background(), "404")

	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func Test_Applications_Record_ShouldBeIdempotent(t *testing.T) {
	assert := assert.New(t)
	dbCtx := newTestDb(t)
	applications := NewApplicationsRepository(dbCtx.DB)
	ctx := context.Background()

	assert.NoError(applications.Record(ctx, "alice", "1"))
	assert.NoError(applications.Record(ctx, "alice", "1"))
	assert.NoError(applications.Record(ctx, "alice", "2"))

	recorded, err := applications.IsRecorded(ctx, "alice", "1")
	assert.NoError(err)
	assert.True(recorded)

	recorded, err = applications.IsRecorded(ctx, "bob", "1")
	assert.NoError(err)
	assert.False(recorded)

	list, err := applications.GetBySession(ctx, "alice")
	assert.NoError(err)
	assert.Len(list, 2)
}

func Test_Applications_RemoveOldApplications(t *testing.T) {
	dbCtx := newTestDb(t)
	applications := NewApplicationsRepository(dbCtx.DB)
	ctx := context.Background()

	old := entities.Application{SessionID: "alice", JobID: "1", CreatedAt: time.Now().Add(-48 * time.Hour)}
	require.NoError(t, dbCtx.DB.Create(&old).Error)
	require.NoError(t, applications.Record(ctx, "alice", "2"))

	removed, err := applications.RemoveOldApplications(ctx, time.Now().Add(-24*time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	list, _ := applications.GetBySession(ctx, "alice")
	assert.Len(t, list, 1)
	assert.Equal(t, "2", list[0].JobID)
}
