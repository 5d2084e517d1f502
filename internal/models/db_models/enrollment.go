package db_models

import (
	"github.com/google/uuid"
)

// Enrollment is a durable grant of access to one course. The composite unique
// index makes duplicate enroll attempts idempotent no-ops.
type Enrollment struct {
	BaseModel
	UserID   uuid.UUID `gorm:"index;uniqueIndex:idx_enrollments_user_course"`
	CourseID uuid.UUID `gorm:"index;uniqueIndex:idx_enrollments_user_course"`

	Account Account `gorm:"foreignKey:UserID"`
	Course  Course  `gorm:"foreignKey:CourseID"`
}
