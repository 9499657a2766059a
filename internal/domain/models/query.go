package models

import (
	"fmt"
	"math"
	"strings"
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortSalary    SortKey = "salary"
	SortDate      SortKey = "date"
)

func ToSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(s)) {
	case SortRelevance, "":
		return SortRelevance, nil
	case SortSalary:
		return SortSalary, nil
	case SortDate:
		return SortDate, nil
	default:
		return "", fmt.Errorf("invalid sort key: %v", s)
	}
}

const AllCategories = "all"

const MaxSalary = math.MaxInt

type SalaryRange struct {
	Min int
	Max int
}

func (r SalaryRange) Contains(value int) bool {
	return value >= r.Min && value <= r.Max
}

type QuerySpec struct {
	Text             string
	Category         string
	Salary           SalaryRange
	UrgentOnly       bool
	VerifiedOnly     bool
	RemoteOnly       bool
	JobTypes         []string
	ExperienceLevels []string
	Sort             SortKey
	Page             int
	PageSize         int
}

func NewQuerySpec(pageSize int) QuerySpec {
	return QuerySpec{
		Category: AllCategories,
		Salary:   SalaryRange{Min: 0, Max: MaxSalary},
		Sort:     SortRelevance,
		Page:     1,
		PageSize: pageSize,
	}
}

func (q QuerySpec) AllCategories() bool {
	return q.Category == "" || strings.EqualFold(q.Category, AllCategories)
}

// Next is the spec of the page after q, used by "load more".
func (q QuerySpec) Next() QuerySpec {
	next := q
	next.Page++
	return next
}

func (q QuerySpec) Validate() error {
	if q.PageSize < 1 {
		return &ValidationError{Field: "pageSize", Reason: fmt.Sprintf("must be at least 1, got %d", q.PageSize)}
	}
	if q.Page < 1 {
		return &ValidationError{Field: "page", Reason: fmt.Sprintf("must be at least 1, got %d", q.Page)}
	}
	if q.Salary.Min < 0 {
		return &ValidationError{Field: "salaryRange.min", Reason: "must be non-negative"}
	}
	if q.Salary.Min > q.Salary.Max {
		return &ValidationError{Field: "salaryRange",
			Reason: fmt.Sprintf("min %d is greater than max %d", q.Salary.Min, q.Salary.Max)}
	}
	switch q.Sort {
	case SortRelevance, SortSalary, SortDate:
	default:
		return &ValidationError{Field: "sortKey", Reason: fmt.Sprintf("unknown value %q", q.Sort)}
	}
	return nil
}

type ResultPage struct {
	Items        []JobPosting
	TotalMatched int
	HasMore      bool
	Page         int
	PageSize     int
}
