package entitlement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"learnhub/internal/api/controllers"
	"learnhub/internal/repositories"
	"learnhub/internal/services"
)

var Module = fx.Provide(
	provideEnrollmentRepo, provideSubscriptionRepo,
	provideEntitlementService, provideLibraryController)

func provideEnrollmentRepo(db *gorm.DB) repositories.EnrollmentRepository {
	return repositories.NewEnrollmentRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideEntitlementService(
	courseRepo repositories.CourseRepository,
	enrollmentRepo repositories.EnrollmentRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) services.EntitlementServiceInterface {
	return services.NewEntitlementService(courseRepo, enrollmentRepo, subscriptionRepo)
}

func provideLibraryController(entitlementService services.EntitlementServiceInterface) *controllers.LibraryController {
	return controllers.NewLibraryController(entitlementService)
}
