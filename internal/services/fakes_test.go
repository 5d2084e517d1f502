package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"learnhub/internal/models/db_models"
)

// In-memory repository fakes. Each carries an err field to force the
// store-unavailable path.

type fakeCourseRepo struct {
	courses []db_models.Course
	err     error
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id string) (*db_models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.courses {
		if f.courses[i].ID.String() == id {
			return &f.courses[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCourseRepo) ListAll(ctx context.Context) ([]db_models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]db_models.Course, len(f.courses))
	copy(out, f.courses)
	return out, nil
}

func (f *fakeCourseRepo) ListFeatured(ctx context.Context, limit int) ([]db_models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Course
	for _, c := range f.courses {
		if c.Featured && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) IncrementEnrolled(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.courses {
		if f.courses[i].ID == id {
			f.courses[i].Enrolled++
		}
	}
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments []db_models.Enrollment
	err         error
}

func (f *fakeEnrollmentRepo) CreateIfAbsent(ctx context.Context, enrollment *db_models.Enrollment) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, e := range f.enrollments {
		if e.UserID == enrollment.UserID && e.CourseID == enrollment.CourseID {
			return false, nil
		}
	}
	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	f.enrollments = append(f.enrollments, *enrollment)
	return true, nil
}

func (f *fakeEnrollmentRepo) Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, e := range f.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Enrollment
	for _, e := range f.enrollments {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeSubscriptionRepo struct {
	plans []*db_models.SubscriptionPlan
	err   error
}

func (f *fakeSubscriptionRepo) GetActive(ctx context.Context, userID uuid.UUID, now time.Time) (*db_models.SubscriptionPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	// Newest first, limit 1.
	for i := len(f.plans) - 1; i >= 0; i-- {
		p := f.plans[i]
		if p.UserID == userID && p.IsActive && p.EndsAt >= now.Unix() {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) Activate(ctx context.Context, plan *db_models.SubscriptionPlan) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.plans {
		if p.UserID == plan.UserID && p.IsActive {
			p.IsActive = false
		}
	}
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakeSubscriptionRepo) activeCount(userID uuid.UUID, now time.Time) int {
	count := 0
	for _, p := range f.plans {
		if p.UserID == userID && p.IsActive && p.EndsAt >= now.Unix() {
			count++
		}
	}
	return count
}

type fakeVerificationRepo struct {
	verifications []*db_models.PaymentVerification
	err           error
}

func (f *fakeVerificationRepo) Create(ctx context.Context, verification *db_models.PaymentVerification) error {
	if f.err != nil {
		return f.err
	}
	if verification.ID == uuid.Nil {
		verification.ID = uuid.New()
	}
	verification.CreatedAt = time.Now().Unix()
	f.verifications = append(f.verifications, verification)
	return nil
}

func (f *fakeVerificationRepo) GetByID(ctx context.Context, id string) (*db_models.PaymentVerification, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.verifications {
		if v.ID.String() == id {
			clone := *v
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeVerificationRepo) MarkResolved(ctx context.Context, id uuid.UUID, status db_models.VerificationStatus, reviewerID uuid.UUID, resolvedAt int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, v := range f.verifications {
		if v.ID == id && v.Status == db_models.VerificationPending {
			v.Status = status
			v.ReviewerID = &reviewerID
			v.ResolvedAt = &resolvedAt
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVerificationRepo) ListPending(ctx context.Context) ([]db_models.PaymentVerification, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.PaymentVerification
	for _, v := range f.verifications {
		if v.Status == db_models.VerificationPending {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVerificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.PaymentVerification, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.PaymentVerification
	for _, v := range f.verifications {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out, nil
}
