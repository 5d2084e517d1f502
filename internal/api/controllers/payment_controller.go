package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"learnhub/internal/models/db_models"
	"learnhub/internal/models/request_models"
	"learnhub/internal/services"
	"learnhub/pkg/utils"
)

type PaymentController struct {
	verificationService services.VerificationServiceInterface
}

func NewPaymentController(verificationService services.VerificationServiceInterface) *PaymentController {
	return &PaymentController{
		verificationService: verificationService,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return uuid.Nil, false
	}
	return userID, true
}

// StartCheckout surfaces the authoritative price and description for the
// target before the user submits a payment proof.
func (ctrl *PaymentController) StartCheckout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := ctrl.verificationService.StartCheckout(
		c.Request.Context(), userID, c.Query("course_id"), c.Query("plan"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Checkout summary")
}

// SubmitPayment godoc
// @Summary Submit a payment proof for a course or subscription purchase
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.SubmitPaymentRequest true "Payment proof"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments [post]
func (ctrl *PaymentController) SubmitPayment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request request_models.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	verification, err := ctrl.verificationService.SubmitPayment(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, verification,
		"Payment submitted. You will get access within 15 minutes after verification.")
}

func (ctrl *PaymentController) ListMyPayments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	verifications, err := ctrl.verificationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, verifications, "Payment history fetched")
}

// ListPending is the reviewer queue, oldest submissions first.
func (ctrl *PaymentController) ListPending(c *gin.Context) {
	verifications, err := ctrl.verificationService.ListPending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, verifications, "Pending verifications fetched")
}

// ResolveVerification applies a reviewer decision. Resolution is exactly
// once: a second call on the same verification yields a conflict.
func (ctrl *PaymentController) ResolveVerification(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}

	verificationID := c.Param("id")
	if verificationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Verification ID is required")
		return
	}

	var request request_models.ResolveVerificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := ctrl.verificationService.Resolve(
		c.Request.Context(), verificationID,
		db_models.VerificationStatus(request.Decision), reviewerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Verification resolved")
}
