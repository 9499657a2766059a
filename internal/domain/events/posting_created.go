package events

import (
	"github.com/maxaizer/jobboard/internal/domain/models"
)

var PostingCreatedTopic = "PostingCreatedEvent"

type PostingCreated struct {
	Posting models.JobPosting
}
