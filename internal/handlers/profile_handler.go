package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"psychportal_backend/internal/middleware"
	"psychportal_backend/internal/services"
	"psychportal_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes registers the profile endpoints. Edits are two-step:
// request a change, then confirm with the emailed code.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", h.Get)
		profile.POST("/change", h.RequestChange)
		profile.POST("/change/confirm", h.ConfirmChange)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) RequestChange(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ProfileChangeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.profileService.RequestChange(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if result.OTPRequired {
		c.JSON(http.StatusOK, gin.H{
			"otp_required": true,
			"message":      "Verification code sent to your email",
		})
		return
	}
	c.JSON(http.StatusOK, result.User)
}

func (h *ProfileHandler) ConfirmChange(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ProfileChangeConfirm
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.ConfirmChange(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
