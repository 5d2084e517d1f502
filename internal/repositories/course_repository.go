package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/internal/models/db_models"
)

type CourseRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.Course, error)
	ListAll(ctx context.Context) ([]db_models.Course, error)
	ListFeatured(ctx context.Context, limit int) ([]db_models.Course, error)
	IncrementEnrolled(ctx context.Context, id uuid.UUID) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) ListAll(ctx context.Context) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) ListFeatured(ctx context.Context, limit int) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := r.db.WithContext(ctx).
		Where("featured = TRUE").
		Order("created_at DESC").
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) IncrementEnrolled(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Course{}).
		Where("id = ?", id).
		UpdateColumn("enrolled", gorm.Expr("enrolled + 1")).Error
}
