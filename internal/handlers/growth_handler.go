package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"psychportal_backend/internal/middleware"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/services"
	"psychportal_backend/internal/services/dto"
)

type GrowthHandler struct {
	*BaseHandler
	growthService services.GrowthService
}

func NewGrowthHandler(base *BaseHandler, growthService services.GrowthService) *GrowthHandler {
	return &GrowthHandler{
		BaseHandler:   base,
		growthService: growthService,
	}
}

// RegisterRoutes registers the Growth Hub endpoints
func (h *GrowthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	hub := rg.Group("/growth")
	hub.Use(middleware.AuthMiddleware())
	hub.Use(middleware.RoleMiddleware(models.UserRoleStudent))
	{
		hub.GET("/activities", h.Activities)
		hub.GET("/activities/random", h.RandomActivity)
		hub.POST("/responses", h.SubmitResponse)
		hub.GET("/self-assessment", h.SelfAssessment)
		hub.POST("/self-assessment", h.SubmitSelfAssessment)
	}

	teacher := rg.Group("/teacher/growth")
	teacher.Use(middleware.AuthMiddleware())
	teacher.Use(middleware.RoleMiddleware(models.UserRoleTeacher))
	{
		teacher.GET("/responses", h.ListResponses)
		teacher.DELETE("/responses/:id", h.DeleteResponse)
		teacher.GET("/self-assessments", h.ListSelfAssessments)
		teacher.DELETE("/self-assessments/:id", h.DeleteSelfAssessment)
	}
}

func (h *GrowthHandler) RandomActivity(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	activity, err := h.growthService.RandomActivity(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *GrowthHandler) Activities(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	activities, err := h.growthService.Activities(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

func (h *GrowthHandler) SubmitResponse(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GrowthResponseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.growthService.SubmitResponse(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reflection saved"})
}

func (h *GrowthHandler) SelfAssessment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	sa, err := h.growthService.SelfAssessment(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if sa == nil {
		c.JSON(http.StatusOK, gin.H{"self_assessment": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"self_assessment": sa})
}

func (h *GrowthHandler) SubmitSelfAssessment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SelfAssessmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.growthService.SubmitSelfAssessment(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Self assessment saved"})
}

func (h *GrowthHandler) ListResponses(c *gin.Context) {
	responses, err := h.growthService.ListResponses()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"responses": responses})
}

func (h *GrowthHandler) DeleteResponse(c *gin.Context) {
	if err := h.growthService.DeleteResponse(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reflection deleted"})
}

func (h *GrowthHandler) ListSelfAssessments(c *gin.Context) {
	assessments, err := h.growthService.ListSelfAssessments()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"self_assessments": assessments})
}

func (h *GrowthHandler) DeleteSelfAssessment(c *gin.Context) {
	if err := h.growthService.DeleteSelfAssessment(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Self assessment deleted"})
}
