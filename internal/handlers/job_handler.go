package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"psychportal_backend/internal/middleware"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/services"
	"psychportal_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes registers public job listings and the teacher-only
// management endpoints
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListOpen)
		jobs.GET("/:id", h.GetByID)
	}

	teacher := rg.Group("/teacher/jobs")
	teacher.Use(middleware.AuthMiddleware())
	teacher.Use(middleware.RoleMiddleware(models.UserRoleTeacher))
	{
		teacher.GET("", h.ListAll)
		teacher.POST("", h.Create)
		teacher.PUT("/:id", h.Update)
		teacher.POST("/:id/close", h.Close)
		teacher.DELETE("/:id", h.Delete)
	}
}

func (h *JobHandler) ListOpen(c *gin.Context) {
	jobs, err := h.jobService.ListOpen()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Close(c *gin.Context) {
	if err := h.jobService.Close(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job closed"})
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
