package models

import (
	"strings"
	"time"
)

// JobPostingInput is what the job-posting form submits.
type JobPostingInput struct {
	Title        string   `validate:"required,max=100"`
	Company      string   `validate:"required,max=100"`
	Location     string   `validate:"required,max=100"`
	PayText      string   `validate:"required,max=50"`
	DurationText string   `validate:"required,max=50"`
	Category     string   `validate:"required"`
	Description  string   `validate:"required,min=20,max=2000"`
	Skills       []string `validate:"max=10,dive,required"`
	Requirements []string `validate:"max=20,dive,required"`
	Benefits     []string `validate:"max=20,dive,required"`
	Experience   string   `validate:"max=50"`
	Urgent       bool
}

// Normalized trims every text field and drops blank list entries.
func (in JobPostingInput) Normalized() JobPostingInput {
	out := in
	out.Title = strings.TrimSpace(in.Title)
	out.Company = strings.TrimSpace(in.Company)
	out.Location = strings.TrimSpace(in.Location)
	out.PayText = strings.TrimSpace(in.PayText)
	out.DurationText = strings.TrimSpace(in.DurationText)
	out.Category = strings.TrimSpace(in.Category)
	out.Description = strings.TrimSpace(in.Description)
	out.Experience = strings.TrimSpace(in.Experience)
	out.Skills = trimAll(in.Skills)
	out.Requirements = trimAll(in.Requirements)
	out.Benefits = trimAll(in.Benefits)
	return out
}

// ToPosting builds a new, unrated posting without an id, posted at now.
func (in JobPostingInput) ToPosting(category string, now time.Time) JobPosting {
	in = in.Normalized()
	urgency := Normal
	if in.Urgent {
		urgency = Urgent
	}

	return JobPosting{
		Title:        in.Title,
		Company:      in.Company,
		Location:     in.Location,
		PayText:      in.PayText,
		DurationText: in.DurationText,
		Skills:       in.Skills,
		PostedAt:     now,
		Urgency:      urgency,
		Category:     category,
		Description:  in.Description,
		Requirements: in.Requirements,
		Benefits:     in.Benefits,
		Experience:   in.Experience,
	}
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
