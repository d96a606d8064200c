package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByStatus filters tasks by status value
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// DueBefore filters tasks due before a cutoff
type DueBefore struct {
	Cutoff time.Time
}

func (s DueBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("due_date IS NOT NULL AND due_date < ?", s.Cutoff)
}

// AiSuggestedOnly keeps only tasks the model proposed
type AiSuggestedOnly struct{}

func (s AiSuggestedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ai_suggested = ?", true)
}
