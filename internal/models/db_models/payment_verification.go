package db_models

import (
	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type PaymentMethod string

const (
	MethodJazzCash  PaymentMethod = "jazzcash"
	MethodEasypaisa PaymentMethod = "easypaisa"
	MethodNayaPay   PaymentMethod = "nayapay"
	MethodSadaPay   PaymentMethod = "sadapay"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodJazzCash, MethodEasypaisa, MethodNayaPay, MethodSadaPay:
		return true
	}
	return false
}

// PaymentVerification is a user-submitted claim of an external payment,
// pending human review. Exactly one of CourseID/PlanType is set: a course
// purchase or a subscription purchase. Once approved or rejected the row is
// terminal.
type PaymentVerification struct {
	BaseModel
	UserID   uuid.UUID  `gorm:"index"`
	CourseID *uuid.UUID `gorm:"index"` // nil for subscription purchases
	PlanType *PlanType  // nil for course purchases

	Method        PaymentMethod
	AmountUSD     int64  // as declared by the submitter; checked at review time
	ScreenshotRef string // opaque blob-store reference

	Status     VerificationStatus `gorm:"type:varchar(16);index;default:'pending'"`
	ResolvedAt *int64             // unix seconds, set on approval/rejection
	ReviewerID *uuid.UUID

	Account Account `gorm:"foreignKey:UserID"`
	Course  *Course `gorm:"foreignKey:CourseID"`
}

// IsSubscription reports whether the verification targets a subscription tier
// rather than a single course.
func (v *PaymentVerification) IsSubscription() bool {
	return v.PlanType != nil
}
