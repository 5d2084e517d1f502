package utils

import "errors"

var (
	// Validation failures: surfaced to the caller, never retried.
	ErrScreenshotRequired   = errors.New("payment screenshot is required")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrUnknownPlanType      = errors.New("unknown subscription plan")
	ErrInvalidTarget        = errors.New("exactly one of course or plan must be set")
	ErrInvalidPage          = errors.New("invalid page parameter")

	// Caller must authenticate before the operation is meaningful.
	ErrAuthRequired = errors.New("authentication required")

	// State-machine violations: surfaced and logged, not retried.
	ErrAlreadyResolved = errors.New("verification already resolved")

	// Not-found conditions.
	ErrCourseNotFound       = errors.New("course not found")
	ErrVerificationNotFound = errors.New("verification not found")
	ErrAccountNotFound      = errors.New("account not found")

	// Account/auth.
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Transient store failure: safe to retry idempotent operations only.
	ErrDatabaseError = errors.New("database error")

	// Catalog reads degrade to an empty result plus this warning so browsing
	// stays up while the store is unreachable.
	ErrCatalogUnavailable = errors.New("course catalog temporarily unavailable")
)

// IsValidation reports whether err belongs to the validation family, which
// maps to a 400 and must not be retried.
func IsValidation(err error) bool {
	return errors.Is(err, ErrScreenshotRequired) ||
		errors.Is(err, ErrUnknownPaymentMethod) ||
		errors.Is(err, ErrUnknownPlanType) ||
		errors.Is(err, ErrInvalidTarget) ||
		errors.Is(err, ErrInvalidPage)
}
