package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:'user'"` // "user" | "admin"

	Enrollments   []Enrollment       `gorm:"foreignKey:UserID"`
	Subscriptions []SubscriptionPlan `gorm:"foreignKey:UserID"`
}
