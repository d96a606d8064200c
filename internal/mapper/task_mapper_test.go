package mapper

import (
	"testing"
	"time"

	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestTaskMapperSoftDeleteFlags(t *testing.T) {
	m := NewTaskMapper()
	deletedTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		deletedAt     gorm.DeletedAt
		wantIsDeleted bool
	}{
		{name: "live row", deletedAt: gorm.DeletedAt{}, wantIsDeleted: false},
		{name: "soft-deleted row", deletedAt: gorm.DeletedAt{Time: deletedTime, Valid: true}, wantIsDeleted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := m.ToEntity(&model.Task{Id: uuid.New(), Title: "t", DeletedAt: tt.deletedAt})
			if e.IsDeleted != tt.wantIsDeleted {
				t.Errorf("IsDeleted = %v, want %v", e.IsDeleted, tt.wantIsDeleted)
			}
			if tt.wantIsDeleted && (e.DeletedAt == nil || !e.DeletedAt.Equal(deletedTime)) {
				t.Errorf("DeletedAt = %v, want %v", e.DeletedAt, deletedTime)
			}
			if !tt.wantIsDeleted && e.DeletedAt != nil {
				t.Errorf("DeletedAt = %v, want nil", e.DeletedAt)
			}
		})
	}
}

func TestTaskMapperUpdatedAtZeroBecomesNil(t *testing.T) {
	m := NewTaskMapper()

	e := m.ToEntity(&model.Task{Id: uuid.New(), Title: "t"})
	if e.UpdatedAt != nil {
		t.Errorf("UpdatedAt = %v, want nil for zero model time", e.UpdatedAt)
	}

	ts := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	e = m.ToEntity(&model.Task{Id: uuid.New(), Title: "t", UpdatedAt: ts})
	if e.UpdatedAt == nil || !e.UpdatedAt.Equal(ts) {
		t.Errorf("UpdatedAt = %v, want %v", e.UpdatedAt, ts)
	}
}

func TestTaskMapperModelRoundTripKeepsAiFields(t *testing.T) {
	m := NewTaskMapper()
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	in := &entity.Task{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		Title:        "call mom",
		Priority:     entity.TaskPriorityHigh,
		Status:       entity.TaskStatusTodo,
		DueDate:      &due,
		AiSuggested:  true,
		AiConfidence: 80,
		CreatedAt:    time.Now(),
	}

	out := m.ToEntity(m.ToModel(in))
	if !out.AiSuggested || out.AiConfidence != 80 {
		t.Errorf("ai fields = (%v, %d), want (true, 80)", out.AiSuggested, out.AiConfidence)
	}
	if out.DueDate == nil || !out.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", out.DueDate, due)
	}
}
