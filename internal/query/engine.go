// Package query turns a QuerySpec into a page of job postings.
//
// Every call is self-contained: the engine filters, sorts and paginates a snapshot
// in a fixed stage order and keeps nothing between calls, so it is safe to share.
package query

import (
	"github.com/maxaizer/jobboard/internal/domain/models"
	"slices"
)

type snapshotter interface {
	All() []models.JobPosting
}

type categoryResolver interface {
	Resolve(name string) (models.FacetCategory, bool)
}

type Engine struct {
	categories categoryResolver
	stages     []stage
}

func NewEngine(categories categoryResolver) *Engine {
	e := &Engine{categories: categories}
	e.stages = []stage{
		e.byCategory,
		byText,
		byFlags,
		bySalary,
		byJobTypeAndExperience,
		sortPostings,
	}
	return e
}

// Query runs spec against a fresh snapshot of source.
func (e *Engine) Query(source snapshotter, spec models.QuerySpec) (models.ResultPage, error) {
	return e.Run(source.All(), spec)
}

// Run filters, sorts and paginates postings. The input slice is not modified.
func (e *Engine) Run(postings []models.JobPosting, spec models.QuerySpec) (models.ResultPage, error) {
	if err := spec.Validate(); err != nil {
		return models.ResultPage{}, err
	}

	matched := e.match(postings, spec)
	return paginate(matched, spec), nil
}

// Pages returns every page from spec.Page onwards, all computed over one snapshot.
func (e *Engine) Pages(source snapshotter, spec models.QuerySpec) ([]models.ResultPage, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	matched := e.match(source.All(), spec)

	var pages []models.ResultPage
	for {
		page := paginate(matched, spec)
		pages = append(pages, page)
		if !page.HasMore {
			return pages, nil
		}
		spec = spec.Next()
	}
}

func (e *Engine) match(postings []models.JobPosting, spec models.QuerySpec) []models.JobPosting {
	candidates := slices.Clone(postings)
	for _, apply := range e.stages {
		candidates = apply(candidates, spec)
	}
	return candidates
}

func paginate(matched []models.JobPosting, spec models.QuerySpec) models.ResultPage {
	total := len(matched)
	// Compared by division so huge page numbers cannot overflow.
	start := total
	if spec.Page-1 <= total/spec.PageSize {
		start = (spec.Page - 1) * spec.PageSize
	}
	end := start + min(spec.PageSize, total-start)

	items := make([]models.JobPosting, 0, end-start)
	for _, posting := range matched[start:end] {
		items = append(items, posting.Clone())
	}

	return models.ResultPage{
		Items:        items,
		TotalMatched: total,
		HasMore:      spec.Page <= (total-1)/spec.PageSize,
		Page:         spec.Page,
		PageSize:     spec.PageSize,
	}
}
