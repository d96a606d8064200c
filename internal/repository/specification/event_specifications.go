package specification

import (
	"time"

	"gorm.io/gorm"
)

// StartingAfter keeps events that begin at or after a point in time
type StartingAfter struct {
	At time.Time
}

func (s StartingAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time >= ?", s.At)
}
