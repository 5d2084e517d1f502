package db_models

import (
	"github.com/lib/pq"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Course is owned by the content-management path; the engine only reads it,
// except for the enrolled counter bumped on successful enrollment.
type Course struct {
	BaseModel
	Title       string     `gorm:"not null"`
	Description string
	Category    string     `gorm:"index"`
	Difficulty  Difficulty `gorm:"index"`
	PriceUSD    int64      // 0 for free courses
	IsPremium   bool       `gorm:"index"`
	Instructor  string
	Enrolled    int64
	Rating      float64
	Duration    string         // display label, e.g. "6 weeks"
	Modules     pq.StringArray `gorm:"type:text[]"` // ordered module titles
	Featured    bool
}

func (c *Course) IsFree() bool {
	return !c.IsPremium
}
