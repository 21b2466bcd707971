package services

import (
	"psychportal_backend/internal/email"
	"psychportal_backend/internal/storage"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	GrowthService      GrowthService
	ProfileService     ProfileService
	ExportService      ExportService
	DashboardService   DashboardService
	EmailService       email.Provider
	Storage            storage.Storage
}
