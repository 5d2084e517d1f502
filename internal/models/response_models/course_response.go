package response_models

type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	PriceUSD    int64    `json:"price_usd"`
	IsPremium   bool     `json:"is_premium"`
	Instructor  string   `json:"instructor"`
	Enrolled    int64    `json:"enrolled"`
	Rating      float64  `json:"rating"`
	Duration    string   `json:"duration"`
	Modules     []string `json:"modules"`
	Featured    bool     `json:"featured"`
}

// CoursePage is one page of catalog results plus the filter metadata the
// caller needs to render pagination and the category chips.
type CoursePage struct {
	Courses    []Course `json:"courses"`
	TotalCount int      `json:"total_count"`
	TotalPages int      `json:"total_pages"`
	Page       int      `json:"page"`
	Categories []string `json:"categories"`
}
