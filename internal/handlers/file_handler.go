package handlers

import (
	"io"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/middleware"
	"psychportal_backend/internal/storage"
)

type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

// RegisterRoutes registers authenticated file serving. Kind is either
// "resumes" or "photos"; ?download=1 forces an attachment disposition.
func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	files := rg.Group("/files")
	files.Use(middleware.AuthMiddleware())
	{
		files.GET("/:kind/:name", h.Serve)
	}
}

func (h *FileHandler) Serve(c *gin.Context) {
	kind := c.Param("kind")
	if kind != "resumes" && kind != "photos" {
		h.HandleServiceError(c, appErrors.NewBadRequestError("Unknown file kind"))
		return
	}

	// path.Base strips any traversal the URL router let through
	name := path.Base(c.Param("name"))
	storedPath := path.Join(kind, name)

	exists, err := h.store.Exists(c.Request.Context(), storedPath)
	if err != nil {
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}
	if !exists {
		h.HandleServiceError(c, appErrors.ErrNotFound(nil, "file", "File not found"))
		return
	}

	reader, err := h.store.Get(c.Request.Context(), storedPath)
	if err != nil {
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}
	defer reader.Close()

	if c.Query("download") == "1" {
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	} else {
		c.Header("Content-Disposition", `inline; filename="`+name+`"`)
	}
	c.Header("Content-Type", "application/octet-stream")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Response already started, nothing sane to send back.
		return
	}
}
