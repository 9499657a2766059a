package models

import (
	"fmt"
	"github.com/pkg/errors"
	"slices"
	"strings"
	"time"
)

type Urgency string

const (
	Urgent Urgency = "urgent"
	Normal Urgency = "normal"
)

func ToUrgency(s string) (Urgency, error) {
	switch Urgency(strings.ToLower(s)) {
	case Urgent:
		return Urgent, nil
	case Normal, "":
		return Normal, nil
	default:
		return "", errors.New("invalid urgency")
	}
}

const MaxRating = 5.0

type JobPosting struct {
	ID             string
	Title          string
	Company        string
	Location       string
	PayText        string
	DurationText   string
	Skills         []string
	PostedAt       time.Time
	Urgency        Urgency
	Rating         float64
	ApplicantCount int
	Verified       bool
	Category       string
	Description    string
	Requirements   []string
	Benefits       []string
	Experience     string
}

func (p JobPosting) Validate() error {
	if p.Rating < 0 || p.Rating > MaxRating {
		return &ValidationError{Field: "rating", Reason: fmt.Sprintf("must be between 0 and %v, got %v", MaxRating, p.Rating)}
	}
	if p.ApplicantCount < 0 {
		return &ValidationError{Field: "applicantCount", Reason: "must be non-negative"}
	}
	if p.Urgency != Urgent && p.Urgency != Normal {
		return &ValidationError{Field: "urgency", Reason: fmt.Sprintf("unknown value %q", p.Urgency)}
	}
	return nil
}

func (p JobPosting) Clone() JobPosting {
	c := p
	c.Skills = slices.Clone(p.Skills)
	c.Requirements = slices.Clone(p.Requirements)
	c.Benefits = slices.Clone(p.Benefits)
	return c
}

func (p JobPosting) IsUrgent() bool {
	return p.Urgency == Urgent
}

func (p JobPosting) IsRemote() bool {
	location := strings.ToLower(p.Location)
	return strings.Contains(location, "remote") || strings.Contains(location, "anywhere")
}

// PayValue is the numeric pay shown next to PayText. ok is false when PayText had no digits.
func (p JobPosting) PayValue() (value int, ok bool) {
	return ParsePay(p.PayText)
}

// PostedAgo renders PostedAt the way the feed displays it, e.g. "10 min ago".
func (p JobPosting) PostedAgo(now time.Time) string {
	age := now.Sub(p.PostedAt)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%d min ago", int(age/time.Minute))
	case age < 24*time.Hour:
		return plural(int(age/time.Hour), "hour") + " ago"
	case age < 7*24*time.Hour:
		return plural(int(age/(24*time.Hour)), "day") + " ago"
	default:
		return plural(int(age/(7*24*time.Hour)), "week") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
