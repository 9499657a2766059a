// Package catalog holds the static category taxonomy used to resolve category filters
// and to count postings per category for UI badges.
package catalog

import (
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/samber/lo"
	"regexp"
	"slices"
	"strings"
)

var defaultCategories = []models.FacetCategory{
	{ID: "construction", DisplayName: "Construction", IconRef: "hammer"},
	{ID: "delivery", DisplayName: "Delivery", IconRef: "truck"},
	{ID: "cleaning", DisplayName: "Cleaning", IconRef: "sparkles"},
	{ID: "hospitality", DisplayName: "Hospitality", IconRef: "coffee"},
	{ID: "retail", DisplayName: "Retail", IconRef: "shopping-bag"},
	{ID: "healthcare", DisplayName: "Healthcare", IconRef: "heart-pulse"},
	{ID: "tech", DisplayName: "Tech", IconRef: "laptop"},
	{ID: "education", DisplayName: "Education", IconRef: "book-open"},
	{ID: "events", DisplayName: "Events", IconRef: "party-popper"},
	{ID: "moving", DisplayName: "Moving", IconRef: "package"},
	{ID: "landscaping", DisplayName: "Landscaping", IconRef: "leaf"},
	{ID: "pet-care", DisplayName: "Pet Care", IconRef: "paw-print"},
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

type Count struct {
	Category models.FacetCategory
	Count    int
}

type Catalog struct {
	categories []models.FacetCategory
	byName     map[string]models.FacetCategory
}

func New(categories []models.FacetCategory) *Catalog {
	c := &Catalog{
		categories: slices.Clone(categories),
		byName:     make(map[string]models.FacetCategory, len(categories)*2),
	}
	for _, category := range c.categories {
		c.byName[NormalizeName(category.ID)] = category
		c.byName[NormalizeName(category.DisplayName)] = category
	}
	return c
}

func Default() *Catalog {
	return New(defaultCategories)
}

// NormalizeName folds case and drops separators so "Pet Care", "pet-care" and "PET_CARE" match.
func NormalizeName(name string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "")
}

// Resolve finds a category by id or display name.
func (c *Catalog) Resolve(name string) (models.FacetCategory, bool) {
	category, ok := c.byName[NormalizeName(name)]
	return category, ok
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.Resolve(name)
	return ok
}

func (c *Catalog) All() []models.FacetCategory {
	return slices.Clone(c.categories)
}

// Counts returns the number of postings per category in catalog order, zero counts included.
// A posting counts towards a category when its category equals the display name ignoring case.
func (c *Catalog) Counts(postings []models.JobPosting) []Count {
	byName := lo.CountValuesBy(postings, func(p models.JobPosting) string {
		return strings.ToLower(p.Category)
	})

	return lo.Map(c.categories, func(category models.FacetCategory, _ int) Count {
		return Count{Category: category, Count: byName[strings.ToLower(category.DisplayName)]}
	})
}
