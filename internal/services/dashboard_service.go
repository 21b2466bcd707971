package services

import (
	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/growth"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/repositories"
	"psychportal_backend/internal/services/dto"
)

// TeacherDashboard aggregates the counters shown on the teacher landing
// page.
type TeacherDashboard struct {
	Students     int64            `json:"students"`
	OpenJobs     int              `json:"open_jobs"`
	TotalJobs    int              `json:"total_jobs"`
	ByStatus     map[string]int64 `json:"applications_by_status"`
	Applications int64            `json:"applications_total"`

	// Newest submissions still waiting for a decision
	AwaitingReview []dto.ApplicationDetailDTO `json:"awaiting_review"`
}

// StudentDashboard is everything a student's landing page needs in one
// response.
type StudentDashboard struct {
	Applications  []dto.ApplicationDTO `json:"applications"`
	OpenJobs      []dto.JobDTO         `json:"open_jobs"`
	AppliedJobIDs []string             `json:"applied_job_ids"`
	HasActive     bool                 `json:"has_active_application"`
}

// StudentSummary is one row of the registered-students listing, with the
// Growth Hub completion attached.
type StudentSummary struct {
	dto.UserDTO
	GrowthAnswered int64 `json:"growth_answered"`
	GrowthTotal    int   `json:"growth_total"`
}

// recentSubmissionLimit caps the awaiting-review list on the teacher
// landing page.
const recentSubmissionLimit = 5

type DashboardService interface {
	TeacherOverview() (*TeacherDashboard, error)
	StudentOverview(userID string) (*StudentDashboard, error)

	// RegisteredStudents lists student accounts with their Growth Hub
	// completion, optionally narrowed by name and sorted by a
	// whitelisted column
	RegisteredStudents(nameFilter, sortBy string) ([]StudentSummary, error)
}

type DashboardServiceImpl struct {
	userRepo   repositories.UserRepository
	jobRepo    repositories.JobRepository
	appRepo    repositories.ApplicationRepository
	growthRepo repositories.GrowthRepository
	appService ApplicationService
	jobService JobService
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	growthRepo repositories.GrowthRepository,
	appService ApplicationService,
	jobService JobService,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:   userRepo,
		jobRepo:    jobRepo,
		appRepo:    appRepo,
		growthRepo: growthRepo,
		appService: appService,
		jobService: jobService,
	}
}

func (s *DashboardServiceImpl) TeacherOverview() (*TeacherDashboard, error) {
	students, err := s.userRepo.CountByRole(models.UserRoleStudent)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	open := 0
	for _, j := range jobs {
		if j.Status == models.JobStatusOpen {
			open++
		}
	}

	rows, err := s.appRepo.ListDetails(repositories.ApplicationFilter{})
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	byStatus := make(map[string]int64)
	for _, r := range rows {
		byStatus[string(r.Status)]++
	}

	awaiting, err := s.appService.ListForTeacher(dto.ApplicationListFilter{
		Status: string(models.ApplicationStatusSubmitted),
	})
	if err != nil {
		return nil, err
	}
	if len(awaiting) > recentSubmissionLimit {
		awaiting = awaiting[:recentSubmissionLimit]
	}

	return &TeacherDashboard{
		Students:       students,
		OpenJobs:       open,
		TotalJobs:      len(jobs),
		ByStatus:       byStatus,
		Applications:   int64(len(rows)),
		AwaitingReview: awaiting,
	}, nil
}

func (s *DashboardServiceImpl) StudentOverview(userID string) (*StudentDashboard, error) {
	apps, err := s.appService.MyApplications(userID)
	if err != nil {
		return nil, err
	}

	openJobs, err := s.jobService.ListOpen()
	if err != nil {
		return nil, err
	}

	appliedIDs := make([]string, 0, len(apps))
	hasActive := false
	for _, a := range apps {
		appliedIDs = append(appliedIDs, a.JobID)
		if a.Status.IsActive() {
			hasActive = true
		}
	}

	return &StudentDashboard{
		Applications:  apps,
		OpenJobs:      openJobs,
		AppliedJobIDs: appliedIDs,
		HasActive:     hasActive,
	}, nil
}

func (s *DashboardServiceImpl) RegisteredStudents(nameFilter, sortBy string) ([]StudentSummary, error) {
	users, err := s.userRepo.FindStudents(nameFilter, sortBy)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	answered, err := s.growthRepo.CountResponsesByUser()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	out := make([]StudentSummary, 0, len(users))
	for i := range users {
		out = append(out, StudentSummary{
			UserDTO:        dto.NewUserDTO(&users[i]),
			GrowthAnswered: answered[users[i].ID],
			GrowthTotal:    len(growth.Activities),
		})
	}
	return out, nil
}
