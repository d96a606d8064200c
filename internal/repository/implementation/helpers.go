package implementation

import (
	"ai-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}
