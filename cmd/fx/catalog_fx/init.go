package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"learnhub/internal/api/controllers"
	"learnhub/internal/repositories"
	"learnhub/internal/services"
)

var Module = fx.Provide(
	provideCourseRepo, provideCatalogService, provideCatalogController)

func provideCourseRepo(db *gorm.DB) repositories.CourseRepository {
	return repositories.NewCourseRepository(db)
}

func provideCatalogService(courseRepo repositories.CourseRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(courseRepo)
}

func provideCatalogController(
	catalogService services.CatalogServiceInterface,
	entitlementService services.EntitlementServiceInterface,
) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService, entitlementService)
}
