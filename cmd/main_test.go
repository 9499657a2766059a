package main

import (
	"bytes"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func Test_ParseFlags_ShouldBuildQuerySpec(t *testing.T) {
	assert := assert.New(t)

	opts := parseFlags([]string{"-t", "driver", "--category", "Delivery", "--sort", "salary",
		"--urgent", "--job-type", "full-time,part-time", "--min-pay", "15", "-p", "2"})
	spec, err := opts.querySpec(15)

	require.NoError(t, err)
	assert.Equal("driver", spec.Text)
	assert.Equal("Delivery", spec.Category)
	assert.Equal(models.SortSalary, spec.Sort)
	assert.True(spec.UrgentOnly)
	assert.Equal([]string{"full-time", "part-time"}, spec.JobTypes)
	assert.Equal(models.SalaryRange{Min: 15, Max: models.MaxSalary}, spec.Salary)
	assert.Equal(2, spec.Page)
	assert.Equal(15, spec.PageSize)
}

func Test_QuerySpec_WhenUnknownSort_ShouldFail(t *testing.T) {
	opts := parseFlags([]string{"--sort", "popularity"})

	_, err := opts.querySpec(5)

	assert.Error(t, err)
}

func Test_PrintPage(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var out bytes.Buffer

	printPage(&out, models.ResultPage{
		Items: []models.JobPosting{{
			ID: "1", Title: "Construction Helper", Company: "BuildRight Co.", PayText: "$22/hr",
			Urgency: models.Urgent, PostedAt: now.Add(-10 * time.Minute),
		}},
		TotalMatched: 3,
		HasMore:      true,
		Page:         1,
		PageSize:     1,
	}, now)

	assert.Contains(t, out.String(), "Construction Helper (urgent)")
	assert.Contains(t, out.String(), "10 min ago")
	assert.Contains(t, out.String(), "page 1: 1 of 3 matched, more available")
}
