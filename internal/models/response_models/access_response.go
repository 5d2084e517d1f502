package response_models

// AccessState labels why (or whether) the caller may open a course.
type AccessState string

const (
	AccessFree       AccessState = "free"
	AccessEnrolled   AccessState = "enrolled"
	AccessSubscribed AccessState = "subscribed"
	AccessLocked     AccessState = "locked"
)

type CourseAccess struct {
	CourseID  string      `json:"course_id"`
	State     AccessState `json:"state"`
	CanAccess bool        `json:"can_access"`
}

// CheckoutSummary surfaces the authoritative target and price before the user
// submits a payment proof.
type CheckoutSummary struct {
	TargetKind  string `json:"target_kind"` // "course" | "subscription"
	TargetID    string `json:"target_id"`
	Description string `json:"description"`
	PriceUSD    int64  `json:"price_usd"`
}
