package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"learnhub/internal/services"
	"learnhub/pkg/utils"
)

type CatalogController struct {
	catalogService     services.CatalogServiceInterface
	entitlementService services.EntitlementServiceInterface
}

func NewCatalogController(
	catalogService services.CatalogServiceInterface,
	entitlementService services.EntitlementServiceInterface,
) *CatalogController {
	return &CatalogController{
		catalogService:     catalogService,
		entitlementService: entitlementService,
	}
}

// ListCourses godoc
// @Summary List courses with search, category, and difficulty filters
// @Tags Catalog
// @Produce json
// @Param search query string false "Substring match on title, description, or instructor"
// @Param category query string false "Exact category, All disables"
// @Param difficulty query string false "Beginner|Intermediate|Advanced, All disables"
// @Param page query int false "1-indexed page, 12 courses per page"
// @Success 200 {object} utils.APIResponse
// @Router /courses [get]
func (ctrl *CatalogController) ListCourses(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	query := services.CatalogQuery{
		Search:     c.Query("search"),
		Category:   c.DefaultQuery("category", services.FilterAll),
		Difficulty: c.DefaultQuery("difficulty", services.FilterAll),
	}

	result, err := ctrl.catalogService.ListCourses(c.Request.Context(), query, page)
	if err != nil {
		if errors.Is(err, utils.ErrCatalogUnavailable) {
			// Browsing stays up: empty page plus a warning.
			utils.RespondSuccess(c, result, err.Error())
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Courses fetched successfully")
}

func (ctrl *CatalogController) GetCourseByID(c *gin.Context) {
	courseID := c.Param("id")
	if courseID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Course ID is required")
		return
	}

	course, err := ctrl.catalogService.GetCourseByID(c.Request.Context(), courseID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, course, "Course fetched successfully")
}

func (ctrl *CatalogController) ListFeatured(c *gin.Context) {
	courses, err := ctrl.catalogService.ListFeatured(c.Request.Context())
	if err != nil {
		if errors.Is(err, utils.ErrCatalogUnavailable) {
			utils.RespondSuccess(c, courses, err.Error())
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, courses, "Featured courses fetched successfully")
}

// GetCourseAccess reports why (or whether) the authenticated user may open
// the course: free, enrolled, subscribed, or locked.
func (ctrl *CatalogController) GetCourseAccess(c *gin.Context) {
	courseID := c.Param("id")
	if courseID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Course ID is required")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	access, err := ctrl.entitlementService.GetAccessState(c.Request.Context(), userID, courseID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, access, "Access state computed")
}
