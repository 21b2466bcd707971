package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/middleware"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/services"
	"psychportal_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	appService    services.ApplicationService
	exportService services.ExportService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService, exportService services.ExportService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:   base,
		appService:    appService,
		exportService: exportService,
	}
}

// RegisterRoutes registers student application endpoints and the teacher
// review endpoints
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	apps.Use(middleware.RoleMiddleware(models.UserRoleStudent))
	{
		apps.POST("", h.Apply)
		apps.GET("/mine", h.MyApplications)
		apps.POST("/:id/documents", h.UploadDocuments)
	}

	teacher := rg.Group("/teacher/applications")
	teacher.Use(middleware.AuthMiddleware())
	teacher.Use(middleware.RoleMiddleware(models.UserRoleTeacher))
	{
		teacher.GET("", h.ListForTeacher)
		teacher.POST("/:id/assess", h.Assess)
		teacher.POST("/clear", h.BulkClear)
		teacher.GET("/export", h.Export)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.appService.Apply(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.appService.MyApplications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// UploadDocuments accepts a multipart form with "resume" and "photo"
// file fields
func (h *ApplicationHandler) UploadDocuments(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resumeHeader, err := c.FormFile("resume")
	if err != nil {
		h.HandleServiceError(c, appErrors.ErrMissingUploadFiles)
		return
	}
	photoHeader, err := c.FormFile("photo")
	if err != nil {
		h.HandleServiceError(c, appErrors.ErrMissingUploadFiles)
		return
	}

	resumeFile, err := resumeHeader.Open()
	if err != nil {
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}
	defer resumeFile.Close()

	photoFile, err := photoHeader.Open()
	if err != nil {
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}
	defer photoFile.Close()

	app, err := h.appService.UploadDocuments(c.Request.Context(), userID, c.Param("id"),
		services.UploadInput{Filename: resumeHeader.Filename, Size: resumeHeader.Size, Content: resumeFile},
		services.UploadInput{Filename: photoHeader.Filename, Size: photoHeader.Size, Content: photoFile},
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) ListForTeacher(c *gin.Context) {
	filter := dto.ApplicationListFilter{
		Status:      c.Query("status"),
		StudentName: c.Query("student"),
	}
	switch c.Query("resume") {
	case "uploaded":
		yes := true
		filter.HasResume = &yes
	case "missing":
		no := false
		filter.HasResume = &no
	}

	apps, err := h.appService.ListForTeacher(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) Assess(c *gin.Context) {
	var req dto.AssessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.appService.Assess(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assessment recorded"})
}

func (h *ApplicationHandler) BulkClear(c *gin.Context) {
	var req dto.BulkClearRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.appService.BulkClear(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ApplicationHandler) Export(c *gin.Context) {
	file, err := h.exportService.AssessedStudents()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
