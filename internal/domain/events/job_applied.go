package events

var JobAppliedTopic = "JobAppliedEvent"

type JobApplied struct {
	SessionID string
	JobID     string
}
