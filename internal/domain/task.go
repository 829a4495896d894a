package domain

import (
	"fmt"
	"time"
)

// Status is the closed set of task states.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusBlocked    Status = "Blocked"
)

// ParseStatus validates a raw status string. An empty string falls back to
// the To Do default.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return StatusToDo, nil
	}
	switch st := Status(s); st {
	case StatusToDo, StatusInProgress, StatusCompleted, StatusBlocked:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

// Task as stored: relations are kept as ids.
type Task struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	ProjectID      int64     `db:"project_id" json:"project"`
	TeamID         int64     `db:"team_id" json:"team"`
	OwnerIDs       []int64   `db:"owners" json:"owners"`
	Tags           []string  `db:"tags" json:"tags"`
	TimeToComplete float64   `db:"time_to_complete" json:"timeToComplete"`
	Status         Status    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// PopulatedTask is a Task with its references expanded one level deep.
type PopulatedTask struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Project        Project   `json:"project"`
	Team           Team      `json:"team"`
	Owners         []Owner   `json:"owners"`
	Tags           []string  `json:"tags"`
	TimeToComplete float64   `json:"timeToComplete"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
