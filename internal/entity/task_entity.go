package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task priority values
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
	TaskPriorityUrgent = "urgent"
)

// Task status values
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
	TaskStatusCancelled  = "cancelled"
)

type Task struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	Priority    string
	Status      string

	DueDate      *time.Time
	ReminderDate *time.Time
	CompletedAt  *time.Time

	LinkedEmailId *uuid.UUID

	AiSuggested  bool
	AiConfidence int

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p string) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// IsOverdue reports whether the task is past due and not done.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.Status != TaskStatusDone && now.After(*t.DueDate)
}
