package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"learnhub/internal/models/db_models"
	"learnhub/internal/models/request_models"
	"learnhub/internal/models/response_models"
	"learnhub/internal/repositories"
	"learnhub/pkg/utils"
)

// VerificationServiceInterface governs the payment-proof lifecycle:
// pending -> approved | rejected, both terminal. Approval is the only path
// that grants entitlements, and it grants them synchronously.
type VerificationServiceInterface interface {
	StartCheckout(ctx context.Context, userID uuid.UUID, courseID, plan string) (response_models.CheckoutSummary, error)
	SubmitPayment(ctx context.Context, userID uuid.UUID, request request_models.SubmitPaymentRequest) (response_models.Verification, error)
	Resolve(ctx context.Context, verificationID string, decision db_models.VerificationStatus, reviewerID uuid.UUID) error
	ListPending(ctx context.Context) ([]response_models.Verification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]response_models.Verification, error)
}

type VerificationService struct {
	verificationRepo repositories.VerificationRepository
	courseRepo       repositories.CourseRepository
	enrollmentRepo   repositories.EnrollmentRepository
	subscriptionRepo repositories.SubscriptionRepository

	now func() time.Time
}

func NewVerificationService(
	verificationRepo repositories.VerificationRepository,
	courseRepo repositories.CourseRepository,
	enrollmentRepo repositories.EnrollmentRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) VerificationServiceInterface {
	return &VerificationService{
		verificationRepo: verificationRepo,
		courseRepo:       courseRepo,
		enrollmentRepo:   enrollmentRepo,
		subscriptionRepo: subscriptionRepo,
		now:              time.Now,
	}
}

func (s *VerificationService) StartCheckout(ctx context.Context, userID uuid.UUID, courseID, plan string) (response_models.CheckoutSummary, error) {
	if userID == uuid.Nil {
		return response_models.CheckoutSummary{}, utils.ErrAuthRequired
	}
	if (courseID == "") == (plan == "") {
		return response_models.CheckoutSummary{}, utils.ErrInvalidTarget
	}

	if plan != "" {
		planType := db_models.PlanType(strings.ToLower(plan))
		if !planType.Valid() {
			return response_models.CheckoutSummary{}, utils.ErrUnknownPlanType
		}
		return response_models.CheckoutSummary{
			TargetKind:  "subscription",
			TargetID:    string(planType),
			Description: "Unlimited access to all premium courses",
			PriceUSD:    planType.PriceUSD(),
		}, nil
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		log.Printf("Error fetching course %s: %v", courseID, err)
		return response_models.CheckoutSummary{}, utils.ErrDatabaseError
	}
	if course == nil {
		return response_models.CheckoutSummary{}, utils.ErrCourseNotFound
	}
	return response_models.CheckoutSummary{
		TargetKind:  "course",
		TargetID:    course.ID.String(),
		Description: course.Title,
		PriceUSD:    course.PriceUSD,
	}, nil
}

func (s *VerificationService) SubmitPayment(ctx context.Context, userID uuid.UUID, request request_models.SubmitPaymentRequest) (response_models.Verification, error) {
	if userID == uuid.Nil {
		return response_models.Verification{}, utils.ErrAuthRequired
	}
	if request.ScreenshotRef == "" {
		return response_models.Verification{}, utils.ErrScreenshotRequired
	}

	method := db_models.PaymentMethod(strings.ToLower(request.Method))
	if !method.Valid() {
		return response_models.Verification{}, utils.ErrUnknownPaymentMethod
	}
	if (request.CourseID == "") == (request.Plan == "") {
		return response_models.Verification{}, utils.ErrInvalidTarget
	}

	verification := &db_models.PaymentVerification{
		UserID: userID,
		Method: method,
		// The declared amount is recorded as submitted; checking it against
		// the authoritative price is the reviewer's responsibility.
		AmountUSD:     request.AmountUSD,
		ScreenshotRef: request.ScreenshotRef,
		Status:        db_models.VerificationPending,
	}

	if request.Plan != "" {
		planType := db_models.PlanType(strings.ToLower(request.Plan))
		if !planType.Valid() {
			return response_models.Verification{}, utils.ErrUnknownPlanType
		}
		verification.PlanType = &planType
	} else {
		courseID, err := uuid.Parse(request.CourseID)
		if err != nil {
			return response_models.Verification{}, utils.ErrInvalidTarget
		}
		course, err := s.courseRepo.GetByID(ctx, request.CourseID)
		if err != nil {
			log.Printf("Error fetching course %s: %v", request.CourseID, err)
			return response_models.Verification{}, utils.ErrDatabaseError
		}
		if course == nil {
			return response_models.Verification{}, utils.ErrCourseNotFound
		}
		verification.CourseID = &courseID
	}

	if err := s.verificationRepo.Create(ctx, verification); err != nil {
		log.Printf("Error creating payment verification: %v", err)
		return response_models.Verification{}, utils.ErrDatabaseError
	}
	return toVerificationResponse(verification), nil
}

// Resolve applies a reviewer decision exactly once. The status flip is a
// compare-and-set on pending, so a concurrent duplicate resolution loses the
// race and surfaces ErrAlreadyResolved with no side effects.
func (s *VerificationService) Resolve(ctx context.Context, verificationID string, decision db_models.VerificationStatus, reviewerID uuid.UUID) error {
	if decision != db_models.VerificationApproved && decision != db_models.VerificationRejected {
		return utils.ErrInvalidTarget
	}

	verification, err := s.verificationRepo.GetByID(ctx, verificationID)
	if err != nil {
		log.Printf("Error fetching verification %s: %v", verificationID, err)
		return utils.ErrDatabaseError
	}
	if verification == nil {
		return utils.ErrVerificationNotFound
	}
	if verification.Status != db_models.VerificationPending {
		return utils.ErrAlreadyResolved
	}

	now := s.now()
	resolved, err := s.verificationRepo.MarkResolved(ctx, verification.ID, decision, reviewerID, now.Unix())
	if err != nil {
		log.Printf("Error resolving verification %s: %v", verificationID, err)
		return utils.ErrDatabaseError
	}
	if !resolved {
		return utils.ErrAlreadyResolved
	}

	if decision == db_models.VerificationRejected {
		return nil
	}

	if verification.IsSubscription() {
		return s.activateSubscription(ctx, verification, now)
	}
	return s.grantEnrollment(ctx, verification)
}

// grantEnrollment is idempotent under retries: the insert-if-absent tolerates
// a crash between write and acknowledgment, and the enrolled counter moves
// only when a row was actually created.
func (s *VerificationService) grantEnrollment(ctx context.Context, verification *db_models.PaymentVerification) error {
	enrollment := &db_models.Enrollment{
		UserID:   verification.UserID,
		CourseID: *verification.CourseID,
	}
	created, err := s.enrollmentRepo.CreateIfAbsent(ctx, enrollment)
	if err != nil {
		log.Printf("Error creating enrollment for user %s: %v", verification.UserID, err)
		return utils.ErrDatabaseError
	}
	if !created {
		return nil
	}
	if err := s.courseRepo.IncrementEnrolled(ctx, *verification.CourseID); err != nil {
		log.Printf("Error incrementing enrolled counter for course %s: %v", verification.CourseID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *VerificationService) activateSubscription(ctx context.Context, verification *db_models.PaymentVerification, now time.Time) error {
	planType := *verification.PlanType
	plan := &db_models.SubscriptionPlan{
		UserID:   verification.UserID,
		PlanType: planType,
		StartsAt: now.Unix(),
		EndsAt:   now.Add(planType.Duration()).Unix(),
		IsActive: true,
	}
	if err := s.subscriptionRepo.Activate(ctx, plan); err != nil {
		log.Printf("Error activating %s subscription for user %s: %v", planType, verification.UserID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *VerificationService) ListPending(ctx context.Context) ([]response_models.Verification, error) {
	verifications, err := s.verificationRepo.ListPending(ctx)
	if err != nil {
		log.Printf("Error listing pending verifications: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toVerificationResponses(verifications), nil
}

func (s *VerificationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]response_models.Verification, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrAuthRequired
	}
	verifications, err := s.verificationRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing verifications for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	return toVerificationResponses(verifications), nil
}

func toVerificationResponse(v *db_models.PaymentVerification) response_models.Verification {
	resp := response_models.Verification{
		ID:            v.ID.String(),
		UserID:        v.UserID.String(),
		Method:        string(v.Method),
		AmountUSD:     v.AmountUSD,
		ScreenshotRef: v.ScreenshotRef,
		Status:        string(v.Status),
		SubmittedAt:   v.CreatedAt,
		ResolvedAt:    v.ResolvedAt,
	}
	if v.CourseID != nil {
		courseID := v.CourseID.String()
		resp.CourseID = &courseID
	}
	if v.PlanType != nil {
		plan := string(*v.PlanType)
		resp.Plan = &plan
	}
	return resp
}

func toVerificationResponses(verifications []db_models.PaymentVerification) []response_models.Verification {
	result := make([]response_models.Verification, 0, len(verifications))
	for i := range verifications {
		result = append(result, toVerificationResponse(&verifications[i]))
	}
	return result
}
