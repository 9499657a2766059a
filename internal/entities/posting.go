package entities

import (
	"github.com/maxaizer/jobboard/internal/domain/models"
	"time"
)

// Posting is the stored form of a job posting. Feed order is Position descending.
type Posting struct {
	ID             string `gorm:"primaryKey"`
	Position       int64  `gorm:"index"`
	Title          string
	Company        string
	Location       string
	PayText        string
	DurationText   string
	Skills         []string `gorm:"serializer:json"`
	PostedAt       time.Time
	Urgency        string
	Rating         float64
	ApplicantCount int
	Verified       bool
	Category       string `gorm:"index"`
	Description    string
	Requirements   []string `gorm:"serializer:json"`
	Benefits       []string `gorm:"serializer:json"`
	Experience     string
}

func NewPosting(posting models.JobPosting, position int64) Posting {
	return Posting{
		ID:             posting.ID,
		Position:       position,
		Title:          posting.Title,
		Company:        posting.Company,
		Location:       posting.Location,
		PayText:        posting.PayText,
		DurationText:   posting.DurationText,
		Skills:         posting.Skills,
		PostedAt:       posting.PostedAt.UTC(),
		Urgency:        string(posting.Urgency),
		Rating:         posting.Rating,
		ApplicantCount: posting.ApplicantCount,
		Verified:       posting.Verified,
		Category:       posting.Category,
		Description:    posting.Description,
		Requirements:   posting.Requirements,
		Benefits:       posting.Benefits,
		Experience:     posting.Experience,
	}
}

func (p Posting) ToModel() (models.JobPosting, error) {
	urgency, err := models.ToUrgency(p.Urgency)
	if err != nil {
		return models.JobPosting{}, err
	}

	return models.JobPosting{
		ID:             p.ID,
		Title:          p.Title,
		Company:        p.Company,
		Location:       p.Location,
		PayText:        p.PayText,
		DurationText:   p.DurationText,
		Skills:         p.Skills,
		PostedAt:       p.PostedAt,
		Urgency:        urgency,
		Rating:         p.Rating,
		ApplicantCount: p.ApplicantCount,
		Verified:       p.Verified,
		Category:       p.Category,
		Description:    p.Description,
		Requirements:   p.Requirements,
		Benefits:       p.Benefits,
		Experience:     p.Experience,
	}, nil
}
