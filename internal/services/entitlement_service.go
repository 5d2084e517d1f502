package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"learnhub/internal/models/response_models"
	"learnhub/internal/repositories"
	"learnhub/pkg/utils"
)

// EntitlementServiceInterface decides whether a user may access a course at a
// point in time. It never mutates state; results change only through the
// verification workflow or the passage of time past a subscription window.
type EntitlementServiceInterface interface {
	CanAccess(ctx context.Context, userID uuid.UUID, courseID string) (bool, error)
	GetAccessState(ctx context.Context, userID uuid.UUID, courseID string) (response_models.CourseAccess, error)
	ListEnrolledCourses(ctx context.Context, userID uuid.UUID) ([]response_models.Course, error)
	GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*response_models.ActiveSubscription, error)
}

type EntitlementService struct {
	courseRepo       repositories.CourseRepository
	enrollmentRepo   repositories.EnrollmentRepository
	subscriptionRepo repositories.SubscriptionRepository

	now func() time.Time
}

func NewEntitlementService(
	courseRepo repositories.CourseRepository,
	enrollmentRepo repositories.EnrollmentRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) EntitlementServiceInterface {
	return &EntitlementService{
		courseRepo:       courseRepo,
		enrollmentRepo:   enrollmentRepo,
		subscriptionRepo: subscriptionRepo,
		now:              time.Now,
	}
}

func (s *EntitlementService) CanAccess(ctx context.Context, userID uuid.UUID, courseID string) (bool, error) {
	state, err := s.GetAccessState(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	return state.CanAccess, nil
}

func (s *EntitlementService) GetAccessState(ctx context.Context, userID uuid.UUID, courseID string) (response_models.CourseAccess, error) {
	if userID == uuid.Nil {
		return response_models.CourseAccess{}, utils.ErrAuthRequired
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		log.Printf("Error fetching course %s: %v", courseID, err)
		return response_models.CourseAccess{}, utils.ErrDatabaseError
	}
	if course == nil {
		return response_models.CourseAccess{}, utils.ErrCourseNotFound
	}

	access := response_models.CourseAccess{CourseID: course.ID.String()}

	if course.IsFree() {
		access.State = response_models.AccessFree
		access.CanAccess = true
		return access, nil
	}

	// An enrollment grants access regardless of current pricing, so it is
	// checked before the subscription window.
	enrolled, err := s.enrollmentRepo.Exists(ctx, userID, course.ID)
	if err != nil {
		log.Printf("Error checking enrollment for user %s: %v", userID, err)
		return response_models.CourseAccess{}, utils.ErrDatabaseError
	}
	if enrolled {
		access.State = response_models.AccessEnrolled
		access.CanAccess = true
		return access, nil
	}

	now := s.now()
	plan, err := s.subscriptionRepo.GetActive(ctx, userID, now)
	if err != nil {
		log.Printf("Error checking subscription for user %s: %v", userID, err)
		return response_models.CourseAccess{}, utils.ErrDatabaseError
	}
	if plan != nil && plan.Covers(now) {
		access.State = response_models.AccessSubscribed
		access.CanAccess = true
		return access, nil
	}

	access.State = response_models.AccessLocked
	return access, nil
}

func (s *EntitlementService) ListEnrolledCourses(ctx context.Context, userID uuid.UUID) ([]response_models.Course, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrAuthRequired
	}

	enrollments, err := s.enrollmentRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing enrollments for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	courses := make([]response_models.Course, 0, len(enrollments))
	for i := range enrollments {
		courses = append(courses, toCourseResponse(&enrollments[i].Course))
	}
	return courses, nil
}

func (s *EntitlementService) GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*response_models.ActiveSubscription, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrAuthRequired
	}

	plan, err := s.subscriptionRepo.GetActive(ctx, userID, s.now())
	if err != nil {
		log.Printf("Error fetching subscription for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, nil
	}
	return &response_models.ActiveSubscription{
		ID:       plan.ID.String(),
		PlanType: string(plan.PlanType),
		StartsAt: plan.StartsAt,
		EndsAt:   plan.EndsAt,
	}, nil
}
