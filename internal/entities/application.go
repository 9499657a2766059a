package entities

import "time"

// Application records that a session applied to a job.
type Application struct {
	ID        int
	SessionID string
	JobID     string
	CreatedAt time.Time
}
