package models

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
	"time"
)

func Test_ParsePay_ShouldTakeLeadingRunOfDigits(t *testing.T) {
	cases := []struct {
		text  string
		value int
		ok    bool
	}{
		{"$22/hr", 22, true},
		{"$17/hr + tips", 17, true},
		{"Negotiable", 0, false},
		{"", 0, false},
		{"$22.50/hr", 22, true},
		{"$15-20/hr", 15, true},
		{"$1,200/week", 1200, true},
		{"Up to $30, plus tips", 30, true},
		{"$0/hr", 0, true},
		{"$9999999999999999999/yr", math.MaxInt, true},
		{"$9,223,372,036,854,775,807", math.MaxInt, true},
	}

	for _, c := range cases {
		value, ok := ParsePay(c.text)
		assert.Equal(t, c.value, value, c.text)
		assert.Equal(t, c.ok, ok, c.text)
	}
}

func Test_JobPosting_PayValue_ShouldDistinguishZeroFromUnparseable(t *testing.T) {
	free := JobPosting{PayText: "$0 (volunteer)"}
	unknown := JobPosting{PayText: "DOE"}

	value, ok := free.PayValue()
	assert.Equal(t, 0, value)
	assert.True(t, ok)

	value, ok = unknown.PayValue()
	assert.Equal(t, 0, value)
	assert.False(t, ok)
}

func Test_JobPosting_IsRemote(t *testing.T) {
	assert.True(t, JobPosting{Location: "Remote"}.IsRemote())
	assert.True(t, JobPosting{Location: "Work from ANYWHERE"}.IsRemote())
	assert.False(t, JobPosting{Location: "Downtown"}.IsRemote())
}

func Test_JobPosting_Validate(t *testing.T) {
	valid := JobPosting{Urgency: Normal, Rating: 4.5, ApplicantCount: 3}
	assert.NoError(t, valid.Validate())

	badRating := valid
	badRating.Rating = 5.1
	assert.True(t, IsValidationError(badRating.Validate()))

	badApplicants := valid
	badApplicants.ApplicantCount = -1
	err := badApplicants.Validate()
	assert.ErrorContains(t, err, "applicantCount")
}

func Test_JobPosting_Clone_ShouldNotShareSlices(t *testing.T) {
	original := JobPosting{Skills: []string{"Go"}, Requirements: []string{"18+"}, Benefits: []string{"Tips"}}
	clone := original.Clone()
	clone.Skills[0] = "Rust"
	clone.Requirements[0] = "21+"
	clone.Benefits[0] = "None"

	assert.Equal(t, "Go", original.Skills[0])
	assert.Equal(t, "18+", original.Requirements[0])
	assert.Equal(t, "Tips", original.Benefits[0])
}

func Test_JobPosting_PostedAgo(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	posted := func(ago time.Duration) JobPosting { return JobPosting{PostedAt: now.Add(-ago)} }

	assert.Equal(t, "just now", posted(10*time.Second).PostedAgo(now))
	assert.Equal(t, "10 min ago", posted(10*time.Minute).PostedAgo(now))
	assert.Equal(t, "1 hour ago", posted(time.Hour).PostedAgo(now))
	assert.Equal(t, "3 hours ago", posted(3*time.Hour+5*time.Minute).PostedAgo(now))
	assert.Equal(t, "2 days ago", posted(49*time.Hour).PostedAgo(now))
	assert.Equal(t, "1 week ago", posted(8*24*time.Hour).PostedAgo(now))
}

func Test_QuerySpec_Validate_ShouldNameOffendingField(t *testing.T) {
	spec := NewQuerySpec(5)
	assert.NoError(t, spec.Validate())

	cases := map[string]func(q *QuerySpec){
		"pageSize":        func(q *QuerySpec) { q.PageSize = 0 },
		"page":            func(q *QuerySpec) { q.Page = 0 },
		"salaryRange":     func(q *QuerySpec) { q.Salary = SalaryRange{Min: 30, Max: 20} },
		"salaryRange.min": func(q *QuerySpec) { q.Salary.Min = -1 },
		"sortKey":         func(q *QuerySpec) { q.Sort = "popularity" },
	}

	for field, mutate := range cases {
		invalid := NewQuerySpec(5)
		mutate(&invalid)

		err := invalid.Validate()
		var validationErr *ValidationError
		if assert.ErrorAs(t, err, &validationErr, field) {
			assert.Equal(t, field, validationErr.Field)
		}
	}
}

func Test_QuerySpec_Next(t *testing.T) {
	spec := NewQuerySpec(15)
	next := spec.Next()
	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 2, next.Page)
	assert.Equal(t, spec.PageSize, next.PageSize)
}

func Test_ToSortKey(t *testing.T) {
	key, err := ToSortKey("Salary")
	assert.NoError(t, err)
	assert.Equal(t, SortSalary, key)

	key, err = ToSortKey("")
	assert.NoError(t, err)
	assert.Equal(t, SortRelevance, key)

	_, err = ToSortKey("rating")
	assert.Error(t, err)
}
