package specification

import "gorm.io/gorm"

// UnreadOnly keeps suggestions the user has not read yet
type UnreadOnly struct{}

func (s UnreadOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}

// ByMessage filters suggestions with an exact message match. Combined
// with ByUserID and UnreadOnly it implements the dedupe key.
type ByMessage struct {
	Message string
}

func (s ByMessage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("message = ?", s.Message)
}
