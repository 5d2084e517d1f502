package controllers

import (
	"github.com/gin-gonic/gin"

	"learnhub/internal/services"
	"learnhub/pkg/utils"
)

// LibraryController serves the authenticated user's own entitlements: the
// courses they are enrolled in and their active subscription, if any.
type LibraryController struct {
	entitlementService services.EntitlementServiceInterface
}

func NewLibraryController(entitlementService services.EntitlementServiceInterface) *LibraryController {
	return &LibraryController{
		entitlementService: entitlementService,
	}
}

func (ctrl *LibraryController) ListMyCourses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	courses, err := ctrl.entitlementService.ListEnrolledCourses(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, courses, "Enrolled courses fetched")
}

func (ctrl *LibraryController) GetMySubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	subscription, err := ctrl.entitlementService.GetActiveSubscription(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if subscription == nil {
		utils.RespondSuccess(c, nil, "No active subscription")
		return
	}
	utils.RespondSuccess(c, subscription, "Active subscription fetched")
}
