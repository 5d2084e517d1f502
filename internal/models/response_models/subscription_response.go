package response_models

type ActiveSubscription struct {
	ID       string `json:"id"`
	PlanType string `json:"plan_type"`
	StartsAt int64  `json:"starts_at"`
	EndsAt   int64  `json:"ends_at"`
}
