package request_models

// SubmitPaymentRequest carries a user-submitted payment proof. Exactly one of
// CourseID/Plan must be set; the screenshot reference comes from the blob
// store after an out-of-band upload.
type SubmitPaymentRequest struct {
	CourseID      string `json:"course_id"`
	Plan          string `json:"plan"` // monthly | quarterly | biannual
	Method        string `json:"method" binding:"required"`
	AmountUSD     int64  `json:"amount_usd"`
	ScreenshotRef string `json:"screenshot_ref"`
}

type ResolveVerificationRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
}
