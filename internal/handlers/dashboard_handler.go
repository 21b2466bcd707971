package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"psychportal_backend/internal/middleware"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/services"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers the dashboard endpoints for both roles
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.AuthMiddleware())
	teacher.Use(middleware.RoleMiddleware(models.UserRoleTeacher))
	{
		teacher.GET("/dashboard", h.Overview)
		teacher.GET("/students", h.RegisteredStudents)
	}

	student := rg.Group("/student")
	student.Use(middleware.AuthMiddleware())
	student.Use(middleware.RoleMiddleware(models.UserRoleStudent))
	{
		student.GET("/dashboard", h.StudentOverview)
	}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboardService.TeacherOverview()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) StudentOverview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	overview, err := h.dashboardService.StudentOverview(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) RegisteredStudents(c *gin.Context) {
	students, err := h.dashboardService.RegisteredStudents(c.Query("name"), c.Query("sort"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}
