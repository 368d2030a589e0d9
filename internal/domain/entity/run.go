package entity

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunStatusPending    RunStatus = "PENDING"
	RunStatusProcessing RunStatus = "PROCESSING"
	RunStatusCompleted  RunStatus = "COMPLETED"
	RunStatusFailed     RunStatus = "FAILED"
)

// Run records one preprocessing pass over a dataset split. It is
// informational only: cache validity is decided by the existence of the
// processed directories, never by the run record.
type Run struct {
	ID           uuid.UUID  `json:"id"`
	Split        string     `json:"split"`
	Status       RunStatus  `json:"status"`
	ADImages     int        `json:"ad_images"`
	NCImages     int        `json:"nc_images"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

func NewRun(split string) *Run {
	now := time.Now().UTC()
	return &Run{
		ID:        uuid.New(),
		Split:     split,
		Status:    RunStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *Run) MarkProcessing() {
	r.Status = RunStatusProcessing
	r.UpdatedAt = time.Now().UTC()
}

func (r *Run) MarkCompleted(adImages, ncImages int) {
	now := time.Now().UTC()
	r.Status = RunStatusCompleted
	r.ADImages = adImages
	r.NCImages = ncImages
	r.UpdatedAt = now
	r.CompletedAt = &now
}

func (r *Run) MarkFailed(errMsg string) {
	r.Status = RunStatusFailed
	r.ErrorMessage = errMsg
	r.UpdatedAt = time.Now().UTC()
}

func (r *Run) TotalImages() int {
	return r.ADImages + r.NCImages
}
