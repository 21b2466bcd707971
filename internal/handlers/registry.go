package handlers

import "github.com/gin-gonic/gin"

// AppHandlers bundles every HTTP handler of the portal.
type AppHandlers struct {
	Auth        *AuthHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Growth      *GrowthHandler
	Profile     *ProfileHandler
	File        *FileHandler
	Dashboard   *DashboardHandler
}

// RegisterAll mounts every handler on the API group.
func (h *AppHandlers) RegisterAll(rg *gin.RouterGroup) {
	h.Auth.RegisterRoutes(rg)
	h.Job.RegisterRoutes(rg)
	h.Application.RegisterRoutes(rg)
	h.Growth.RegisterRoutes(rg)
	h.Profile.RegisterRoutes(rg)
	h.File.RegisterRoutes(rg)
	h.Dashboard.RegisterRoutes(rg)
}
