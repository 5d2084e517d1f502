package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/internal/models/db_models"
)

type VerificationRepository interface {
	Create(ctx context.Context, verification *db_models.PaymentVerification) error
	GetByID(ctx context.Context, id string) (*db_models.PaymentVerification, error)
	// MarkResolved flips the status with a compare-and-set guarded by
	// status = 'pending'. Returns false when the row was already resolved
	// (or does not exist), so concurrent resolutions cannot both succeed.
	MarkResolved(ctx context.Context, id uuid.UUID, status db_models.VerificationStatus, reviewerID uuid.UUID, resolvedAt int64) (bool, error)
	ListPending(ctx context.Context) ([]db_models.PaymentVerification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.PaymentVerification, error)
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(ctx context.Context, verification *db_models.PaymentVerification) error {
	return r.db.WithContext(ctx).Create(verification).Error
}

func (r *verificationRepository) GetByID(ctx context.Context, id string) (*db_models.PaymentVerification, error) {
	var verification db_models.PaymentVerification
	err := r.db.WithContext(ctx).First(&verification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &verification, nil
}

func (r *verificationRepository) MarkResolved(ctx context.Context, id uuid.UUID, status db_models.VerificationStatus, reviewerID uuid.UUID, resolvedAt int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.PaymentVerification{}).
		Where("id = ? AND status = ?", id, db_models.VerificationPending).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewer_id": reviewerID,
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *verificationRepository) ListPending(ctx context.Context) ([]db_models.PaymentVerification, error) {
	var verifications []db_models.PaymentVerification
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.VerificationPending).
		Order("created_at ASC").
		Find(&verifications).Error
	if err != nil {
		return nil, err
	}
	return verifications, nil
}

func (r *verificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.PaymentVerification, error) {
	var verifications []db_models.PaymentVerification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&verifications).Error
	if err != nil {
		return nil, err
	}
	return verifications, nil
}
