package response_models

type Verification struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	CourseID      *string `json:"course_id,omitempty"`
	Plan          *string `json:"plan,omitempty"`
	Method        string  `json:"method"`
	AmountUSD     int64   `json:"amount_usd"`
	ScreenshotRef string  `json:"screenshot_ref"`
	Status        string  `json:"status"`
	SubmittedAt   int64   `json:"submitted_at"`
	ResolvedAt    *int64  `json:"resolved_at,omitempty"`
}
