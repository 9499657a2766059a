package query

import (
	"cmp"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/samber/lo"
	"slices"
	"strings"
)

type stage func(postings []models.JobPosting, spec models.QuerySpec) []models.JobPosting

func (e *Engine) byCategory(postings []models.JobPosting, spec models.QuerySpec) []models.JobPosting {
	if spec.AllCategories() {
		return postings
	}

	category, ok := e.categories.Resolve(spec.Category)
	if !ok {
		return nil
	}
	return lo.Filter(postings, func(p models.JobPosting, _ int) bool {
		return strings.EqualFold(p.Category, category.DisplayName)
	})
}

func byText(postings []models.JobPosting, spec models.QuerySpec) []models.JobPosting {
	text := strings.ToLower(strings.TrimSpace(spec.Text))
	if text == "" {
		return postings
	}

	return lo.Filter(postings, func(p models.JobPosting, _ int) bool {
		return strings.Contains(strings.ToLower(p.Title), text) ||
			strings.Contains(strings.ToLower(p.Company), text) ||
			lo.SomeBy(p.Skills, func(skill string) bool {
				return strings.Contains(strings.ToLower(skill), text)
			})
	})
}

func byFlags(postings []models.JobPosting, spec models.QuerySpec) []models.JobPosting {
	return lo.Filter(postings, func(p models.JobPosting, _ int) bool {
		if spec.VerifiedOnly && !p.Verified {
			return false
		}
		if spec.UrgentOnly && !p.IsUrgent() {
			return false
		}
		if spec.RemoteOnly && !p.IsRemote() {
			return false
		}
		return true
	})
}

func bySalary(postings []models.JobPosting, spec models.QuerySpec) []models.JobPosting {
	return lo.Filter(postings, func(p models.JobPosting, _ int) bool {
		pay, _ := p.PayValue()
		return spec.Salary.Contains(pay)
	})
}

func byJobTypeAndExperience(postings []models.JobPosting, spec models.QuerySpec) []models.JobPosting {
	jobTypes := lowerNonEmpty(spec.JobTypes)
	levels := lowerNonEmpty(spec.ExperienceLevels)

	return lo.Filter(postings, func(p models.JobPosting, _ int) bool {
		return containsAny(p.DurationText, jobTypes) && containsAny(p.Experience, levels)
	})
}

func sortPostings(postings []models.JobPosting, spec models.QuerySpec) []models.JobPosting {
	switch spec.Sort {
	case models.SortSalary:
		slices.SortStableFunc(postings, func(a, b models.JobPosting) int {
			payA, _ := a.PayValue()
			payB, _ := b.PayValue()
			return cmp.Compare(payB, payA)
		})
	case models.SortDate:
		slices.SortStableFunc(postings, func(a, b models.JobPosting) int {
			return b.PostedAt.Compare(a.PostedAt)
		})
	}
	return postings
}

// containsAny reports whether value contains one of needles. An empty needle set matches everything.
func containsAny(value string, needles []string) bool {
	if len(needles) == 0 {
		return true
	}
	value = strings.ToLower(value)
	return lo.SomeBy(needles, func(needle string) bool {
		return strings.Contains(value, needle)
	})
}

func lowerNonEmpty(values []string) []string {
	return lo.FilterMap(values, func(v string, _ int) (string, bool) {
		v = strings.ToLower(strings.TrimSpace(v))
		return v, v != ""
	})
}
