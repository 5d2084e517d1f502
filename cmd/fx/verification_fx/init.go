package verification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"learnhub/internal/api/controllers"
	"learnhub/internal/repositories"
	"learnhub/internal/services"
)

var Module = fx.Provide(
	provideVerificationRepo, provideVerificationService, providePaymentController)

func provideVerificationRepo(db *gorm.DB) repositories.VerificationRepository {
	return repositories.NewVerificationRepository(db)
}

func provideVerificationService(
	verificationRepo repositories.VerificationRepository,
	courseRepo repositories.CourseRepository,
	enrollmentRepo repositories.EnrollmentRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) services.VerificationServiceInterface {
	return services.NewVerificationService(verificationRepo, courseRepo, enrollmentRepo, subscriptionRepo)
}

func providePaymentController(verificationService services.VerificationServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(verificationService)
}
