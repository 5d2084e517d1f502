package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/internal/models/db_models"
)

type SubscriptionRepository interface {
	// GetActive returns the user's active, unexpired plan, or nil when the
	// user has none. "No rows" is not an error.
	GetActive(ctx context.Context, userID uuid.UUID, now time.Time) (*db_models.SubscriptionPlan, error)
	// Activate deactivates any prior active plan and creates the new one in a
	// single transaction, so readers never observe zero or two active plans.
	Activate(ctx context.Context, plan *db_models.SubscriptionPlan) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetActive(ctx context.Context, userID uuid.UUID, now time.Time) (*db_models.SubscriptionPlan, error) {
	var plan db_models.SubscriptionPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = TRUE AND ends_at >= ?", userID, now.Unix()).
		Order("created_at DESC").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *subscriptionRepository) Activate(ctx context.Context, plan *db_models.SubscriptionPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.SubscriptionPlan{}).
			Where("user_id = ? AND is_active = TRUE", plan.UserID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(plan).Error
	})
}
