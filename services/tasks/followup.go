package tasks

import (
	"encoding/json"
	"time"

	"roomi/models"

	"github.com/hibiken/asynq"
)

const TypeBookingFollowUp = "booking:followup"

// NewFollowUpTask builds the queued task that triggers a post-booking
// follow-up notification at fireAt.
func NewFollowUpTask(payload models.FollowUpPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingFollowUp, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
