package remote

import (
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"time"
)

type postingsResponse struct {
	Items   []posting `json:"items"`
	HasMore bool      `json:"has_more"`
}

type posting struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Pay            string    `json:"pay"`
	Duration       string    `json:"duration"`
	Skills         []string  `json:"skills"`
	PostedAt       time.Time `json:"posted_at"`
	Urgency        string    `json:"urgency"`
	Rating         float64   `json:"rating"`
	ApplicantCount int       `json:"applicant_count"`
	Verified       bool      `json:"verified"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements"`
	Benefits       []string  `json:"benefits"`
	Experience     string    `json:"experience"`
}

func (p posting) toModel() (models.JobPosting, error) {
	urgency, err := models.ToUrgency(p.Urgency)
	if err != nil {
		return models.JobPosting{}, errors.Wrapf(err, "posting %s", p.ID)
	}

	return models.JobPosting{
		ID:             p.ID,
		Title:          p.Title,
		Company:        p.Company,
		Location:       p.Location,
		PayText:        p.Pay,
		DurationText:   p.Duration,
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
