// Package seed provides the demo postings bundled with the board.
package seed

import (
	"context"
	_ "embed"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"time"
)

//go:embed postings.yaml
var bundled []byte

type record struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Location     string   `yaml:"location"`
	Pay          string   `yaml:"pay"`
	Duration     string   `yaml:"duration"`
	Skills       []string `yaml:"skills"`
	PostedAgo    string   `yaml:"posted_ago"`
	Urgency      string   `yaml:"urgency"`
	Rating       float64  `yaml:"rating"`
	Applicants   int      `yaml:"applicants"`
	Verified     bool     `yaml:"verified"`
	Category     string   `yaml:"category"`
	Description  string   `yaml:"description"`
	Requirements []string `yaml:"requirements"`
	Benefits     []string `yaml:"benefits"`
	Experience   string   `yaml:"experience"`
}

func (r record) toPosting(now time.Time) (models.JobPosting, error) {
	age, err := time.ParseDuration(r.PostedAgo)
	if err != nil {
		return models.JobPosting{}, errors.Wrapf(err, "posting %s: posted_ago", r.ID)
	}
	urgency, err := models.ToUrgency(r.Urgency)
	if err != nil {
		return models.JobPosting{}, errors.Wrapf(err, "posting %s", r.ID)
	}

	return models.JobPosting{
		ID:             r.ID,
		Title:          r.Title,
		Company:        r.Company,
		Location:       r.Location,
		PayText:        r.Pay,
		DurationText:   r.Duration,
		Skills:         r.Skills,
		PostedAt:       now.Add(-age),
		Urgency:        urgency,
		Rating:         r.Rating,
		ApplicantCount: r.Applicants,
		Verified:       r.Verified,
		Category:       r.Category,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Benefits:       r.Benefits,
		Experience:     r.Experience,
	}, nil
}

// Parse decodes a YAML list of postings, placing each posted_ago relative to now.
func Parse(data []byte, now time.Time) ([]models.JobPosting, error) {
	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "decode postings")
	}

	postings := make([]models.JobPosting, 0, len(records))
	for _, r := range records {
		posting, err := r.toPosting(now)
		if err != nil {
			return nil, err
		}
		postings = append(postings, posting)
	}
	return postings, nil
}

// Postings returns the bundled demo postings in feed order.
func Postings(now time.Time) ([]models.JobPosting, error) {
	return Parse(bundled, now)
}

// Source serves the bundled postings. Now defaults to time.Now.
type Source struct {
	Now func() time.Time
}

func (s Source) Load(_ context.Context) ([]models.JobPosting, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Postings(now())
}
