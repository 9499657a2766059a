package store

import (
	"github.com/google/uuid"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"strconv"
	"sync"
	"testing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func posting(id, title string) models.JobPosting {
	return models.JobPosting{ID: id, Title: title, Urgency: models.Normal, Skills: []string{"Lifting"}}
}

func Test_Store_Insert_ShouldPrependAndAssignSequentialID(t *testing.T) {
	assert := assert.New(t)
	s := New(SequentialIDs)
	assert.NoError(s.Load([]models.JobPosting{posting("1", "first"), posting("2", "second")}))

	id, err := s.Insert(posting("", "new"))
	assert.NoError(err)
	assert.Equal("3", id)

	all := s.All()
	assert.Len(all, 3)
	assert.Equal([]string{"3", "1", "2"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func Test_Store_Insert_WhenUUIDStrategy_ShouldGenerateUUID(t *testing.T) {
	s := New(UUIDs)

	id, err := s.Insert(posting("", "new"))
	assert.NoError(t, err)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)
}

func Test_Store_Insert_WhenCallerSuppliesID_ShouldKeepItAndAdvanceSequence(t *testing.T) {
	s := New(SequentialIDs)

	id, err := s.Insert(posting("10", "supplied"))
	assert.NoError(t, err)
	assert.Equal(t, "10", id)

	id, err = s.Insert(posting("", "generated"))
	assert.NoError(t, err)
	assert.Equal(t, "11", id)
}

func Test_Store_Insert_WhenDuplicateID_ShouldFail(t *testing.T) {
	s := New(SequentialIDs)
	assert.NoError(t, s.Load([]models.JobPosting{posting("1", "first")}))

	_, err := s.Insert(posting("1", "again"))
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Equal(t, 1, s.Len())
}

func Test_Store_Insert_WhenDuplicateRejected_ShouldKeepSequence(t *testing.T) {
	s := New(SequentialIDs)
	assert.NoError(t, s.Load([]models.JobPosting{posting("1", "first"), posting("5", "fifth")}))

	_, err := s.Insert(posting("5", "again"))
	assert.True(t, errors.Is(err, ErrDuplicateID))

	id, err := s.Insert(posting("", "next"))
	assert.NoError(t, err)
	assert.Equal(t, "6", id)
	assert.Equal(t, 3, s.Len())
}

func Test_Store_Insert_WhenInvalidPosting_ShouldFail(t *testing.T) {
	s := New(SequentialIDs)
	invalid := posting("", "bad")
	invalid.Rating = 7

	_, err := s.Insert(invalid)
	assert.True(t, models.IsValidationError(err))
	assert.Equal(t, 0, s.Len())
}

func Test_Store_Load_WhenDuplicateIDs_ShouldFail(t *testing.T) {
	s := New(SequentialIDs)
	err := s.Load([]models.JobPosting{posting("1", "a"), posting("1", "b")})
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func Test_Store_ByID(t *testing.T) {
	s := New(SequentialIDs)
	assert.NoError(t, s.Load([]models.JobPosting{posting("1", "first")}))

	found, err := s.ByID("1")
	assert.NoError(t, err)
	assert.Equal(t, "first", found.Title)

	_, err = s.ByID("404")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func Test_Store_All_ShouldReturnDefensiveCopy(t *testing.T) {
	s := New(SequentialIDs)
	assert.NoError(t, s.Load([]models.JobPosting{posting("1", "first")}))

	snapshot := s.All()
	snapshot[0].Title = "mutated"
	snapshot[0].Skills[0] = "mutated"

	fresh := s.All()
	assert.Equal(t, "first", fresh[0].Title)
	assert.Equal(t, "Lifting", fresh[0].Skills[0])
}

func Test_Store_Insert_ShouldNotAliasCallerSlices(t *testing.T) {
	s := New(SequentialIDs)
	p := posting("", "new")
	id, err := s.Insert(p)
	assert.NoError(t, err)

	p.Skills[0] = "mutated"
	stored, _ := s.ByID(id)
	assert.Equal(t, "Lifting", stored.Skills[0])
}

func Test_Store_ConcurrentInserts_ShouldAssignUniqueIDs(t *testing.T) {
	s := New(SequentialIDs)
	const writers, perWriter = 8, 25

	var wg sync.WaitGroup
	ids := make(chan string, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				id, err := s.Insert(posting("", "concurrent"))
				assert.NoError(t, err)
				ids <- id
				_ = s.All()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id "+id)
		seen[id] = true
	}
	assert.Len(t, seen, writers*perWriter)
	assert.True(t, seen[strconv.Itoa(writers*perWriter)])
}
