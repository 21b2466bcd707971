package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/email"
	"psychportal_backend/internal/logger"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/repositories"
	"psychportal_backend/internal/services/dto"
	"psychportal_backend/internal/storage"
)

var (
	allowedResumeExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
	allowedPhotoExts  = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
)

const (
	resumeDir = "resumes"
	photoDir  = "photos"
)

// UploadInput carries one uploaded file into the service layer.
type UploadInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type ApplicationService interface {
	// Apply creates a pending_resume application and takes one vacancy
	Apply(userID string, req *dto.ApplyRequest) (*dto.ApplicationDTO, error)

	// MyApplications lists the student's applications, newest first
	MyApplications(userID string) ([]dto.ApplicationDTO, error)

	// UploadDocuments stores the resume and photo and moves the
	// application to submitted
	UploadDocuments(ctx context.Context, userID, appID string, resume, photo UploadInput) (*dto.ApplicationDTO, error)

	// Assess records a teacher decision on a submitted application and
	// notifies the student
	Assess(appID string, req *dto.AssessRequest) error

	// ListForTeacher joins applications with students and jobs for the
	// teacher report, narrowed by the listing filter
	ListForTeacher(filter dto.ApplicationListFilter) ([]dto.ApplicationDetailDTO, error)

	// BulkClear removes applications, restores vacancies taken by active
	// ones and deletes their stored files
	BulkClear(ctx context.Context, req *dto.BulkClearRequest) (*dto.BulkClearResult, error)

	// ExpireOverdue auto-rejects resume-less applications past their
	// deadline and returns how many were affected
	ExpireOverdue(now time.Time) (int, error)
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	store    storage.Storage
	mailer   email.Provider

	deadline    time.Duration
	maxFileSize int64
	displayLoc  *time.Location
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
	mailer email.Provider,
	deadline time.Duration,
	maxFileSize int64,
	displayLoc *time.Location,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		store:       store,
		mailer:      mailer,
		deadline:    deadline,
		maxFileSize: maxFileSize,
		displayLoc:  displayLoc,
	}
}

func (s *ApplicationServiceImpl) Apply(userID string, req *dto.ApplyRequest) (*dto.ApplicationDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	// One active application per student, across all jobs.
	if _, err := s.appRepo.FindActiveByUser(userID); err == nil {
		return nil, appErrors.ErrActiveApplicationExists
	} else if !appErrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, appErrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, appErrors.ErrJobNotOpen
	}

	// Capacity pre-check. The guarded decrement below is the real gate,
	// this only gives a friendlier early answer.
	active, err := s.appRepo.CountActiveByJob(job.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if job.Vacancies <= 0 || active >= int64(job.Vacancies) {
		return nil, appErrors.ErrNoVacancies
	}

	now := time.Now().UTC()
	app := &models.Application{
		JobID:          job.ID,
		UserID:         userID,
		StudentID:      user.StudentID,
		Status:         models.ApplicationStatusPendingResume,
		AppliedAt:      now,
		ResumeDeadline: now.Add(s.deadline),
	}

	if err := s.appRepo.CreateWithVacancyDecrement(app, s.jobRepo); err != nil {
		switch {
		case appErrors.Is(err, repositories.ErrNoVacanciesLeft):
			return nil, appErrors.ErrNoVacancies
		case appErrors.Is(err, repositories.ErrActiveApplication):
			return nil, appErrors.ErrActiveApplicationExists
		default:
			return nil, appErrors.InternalError(err)
		}
	}

	if err := s.mailer.SendApplicationReceived(user.Email, user.Name, job.Title, s.formatDisplay(app.ResumeDeadline)); err != nil {
		logger.MailLog("application_received", user.Email, err)
	}

	out := s.toDTO(app, job.Title)
	return &out, nil
}

func (s *ApplicationServiceImpl) MyApplications(userID string) ([]dto.ApplicationDTO, error) {
	apps, err := s.appRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	out := make([]dto.ApplicationDTO, 0, len(apps))
	for i := range apps {
		title := ""
		if apps[i].Job != nil {
			title = apps[i].Job.Title
		}
		out = append(out, s.toDTO(&apps[i], title))
	}
	return out, nil
}

func (s *ApplicationServiceImpl) UploadDocuments(ctx context.Context, userID, appID string, resume, photo UploadInput) (*dto.ApplicationDTO, error) {
	app, err := s.appRepo.FindByIDWithJob(appID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if app.UserID != userID {
		return nil, appErrors.ErrNotApplicationOwner
	}
	if app.Status != models.ApplicationStatusPendingResume &&
		app.Status != models.ApplicationStatusCorrectionsNeeded {
		return nil, appErrors.ErrApplicationNotEditable
	}

	if resume.Content == nil || photo.Content == nil ||
		strings.TrimSpace(resume.Filename) == "" || strings.TrimSpace(photo.Filename) == "" {
		return nil, appErrors.ErrMissingUploadFiles
	}

	resumeExt := strings.ToLower(filepath.Ext(resume.Filename))
	photoExt := strings.ToLower(filepath.Ext(photo.Filename))
	if !allowedResumeExts[resumeExt] {
		return nil, appErrors.ErrInvalidResumeType
	}
	if !allowedPhotoExts[photoExt] {
		return nil, appErrors.ErrInvalidPhotoType
	}
	if s.maxFileSize > 0 && (resume.Size > s.maxFileSize || photo.Size > s.maxFileSize) {
		return nil, appErrors.ErrFileTooLarge
	}

	resumeBytes, err := s.readUpload(resume.Content)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	photoBytes, err := s.readUpload(photo.Content)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if s.maxFileSize > 0 && (int64(len(resumeBytes)) > s.maxFileSize || int64(len(photoBytes)) > s.maxFileSize) {
		return nil, appErrors.ErrFileTooLarge
	}

	base := fmt.Sprintf("%s_%s", app.StudentID, app.ID)
	resumeName := base + resumeExt
	photoName := base + "_photo" + photoExt

	if err := s.store.Save(ctx, filepath.Join(resumeDir, resumeName), bytes.NewReader(resumeBytes), contentTypeFor(resumeExt)); err != nil {
		return nil, appErrors.InternalError(err)
	}
	if err := s.store.Save(ctx, filepath.Join(photoDir, photoName), bytes.NewReader(photoBytes), contentTypeFor(photoExt)); err != nil {
		return nil, appErrors.InternalError(err)
	}

	now := time.Now().UTC()
	app.ResumeFile = resumeName
	app.PhotoFile = photoName
	app.ResumeUploaded = &now
	app.Status = models.ApplicationStatusSubmitted
	app.TeacherFeedback = "" // resubmission voids earlier feedback

	if err := s.appRepo.Update(app); err != nil {
		return nil, appErrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err == nil {
		jobTitle := ""
		if app.Job != nil {
			jobTitle = app.Job.Title
		}

		if err := s.mailer.SendNewSubmission(user.Name, user.StudentID, jobTitle, []email.Attachment{
			{Name: resumeName, Content: resumeBytes, ContentType: contentTypeFor(resumeExt)},
			{Name: photoName, Content: photoBytes, ContentType: contentTypeFor(photoExt)},
		}); err != nil {
			logger.MailLog("new_submission", "notice mailbox", err)
		}

		if err := s.mailer.SendResumeReceived(user.Email, user.Name, jobTitle); err != nil {
			logger.MailLog("resume_received", user.Email, err)
		}
	}

	jobTitle := ""
	if app.Job != nil {
		jobTitle = app.Job.Title
	}
	out := s.toDTO(app, jobTitle)
	return &out, nil
}

func (s *ApplicationServiceImpl) Assess(appID string, req *dto.AssessRequest) error {
	status := models.ApplicationStatus(req.Status)
	if !status.IsDecision() {
		return appErrors.ErrInvalidStatus("application", "Unsupported assessment status")
	}

	app, err := s.appRepo.FindByIDWithJob(appID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrApplicationNotFound) {
			return appErrors.ErrApplicationNotFound
		}
		return appErrors.InternalError(err)
	}
	if app.Status != models.ApplicationStatusSubmitted {
		return appErrors.ErrApplicationNotAssessable
	}

	app.Status = status
	app.TeacherFeedback = req.Feedback
	if err := s.appRepo.Update(app); err != nil {
		return appErrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(app.UserID)
	if err != nil {
		return nil // decision is recorded, notification is best effort
	}

	jobTitle := ""
	if app.Job != nil {
		jobTitle = app.Job.Title
	}
	// Feedback travels with the email only when corrections are requested.
	feedback := ""
	if status == models.ApplicationStatusCorrectionsNeeded {
		feedback = req.Feedback
	}
	if err := s.mailer.SendStatusUpdate(user.Email, user.Name, jobTitle, string(status), feedback); err != nil {
		logger.MailLog("status_update", user.Email, err)
	}
	return nil
}

func (s *ApplicationServiceImpl) ListForTeacher(filter dto.ApplicationListFilter) ([]dto.ApplicationDetailDTO, error) {
	repoFilter := repositories.ApplicationFilter{
		StudentName: filter.StudentName,
		HasResume:   filter.HasResume,
	}
	if filter.Status != "" {
		repoFilter.Statuses = []models.ApplicationStatus{models.ApplicationStatus(filter.Status)}
	}

	rows, err := s.appRepo.ListDetails(repoFilter)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	out := make([]dto.ApplicationDetailDTO, 0, len(rows))
	for i := range rows {
		detail := dto.ApplicationDetailDTO{
			ApplicationDTO: s.toDTO(&rows[i].Application, rows[i].JobTitle),
			StudentName:    rows[i].StudentName,
			StudentNumber:  rows[i].Application.StudentID,
			StudentEmail:   rows[i].StudentEmail,
		}
		if uploaded := rows[i].Application.ResumeUploaded; uploaded != nil {
			hours := uploaded.Sub(rows[i].Application.AppliedAt).Hours()
			detail.UploadDurationHours = &hours
		}
		out = append(out, detail)
	}
	return out, nil
}

func (s *ApplicationServiceImpl) BulkClear(ctx context.Context, req *dto.BulkClearRequest) (*dto.BulkClearResult, error) {
	cleared, err := s.appRepo.ClearByIDs(req.ApplicationIDs, s.jobRepo)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	result := &dto.BulkClearResult{
		Removed:        len(cleared),
		VacanciesFreed: make(map[string]int),
	}
	for _, c := range cleared {
		result.VacanciesFreed[c.JobID]++
		for _, path := range storedPaths(c.ResumeFile, c.PhotoFile) {
			if err := s.store.Delete(ctx, path); err != nil {
				result.FileDeleteErrors++
				logger.Warn("failed to delete stored file", "path", path, "error", err)
			} else {
				result.FilesDeleted++
			}
		}
	}
	return result, nil
}

func (s *ApplicationServiceImpl) ExpireOverdue(now time.Time) (int, error) {
	expired, err := s.appRepo.ExpirePending(now)
	if err != nil {
		return 0, err
	}

	for _, row := range expired {
		if err := s.mailer.SendDeadlineExpired(row.StudentEmail, row.StudentName, row.JobTitle); err != nil {
			logger.MailLog("deadline_expired", row.StudentEmail, err)
		}
	}
	return len(expired), nil
}

func (s *ApplicationServiceImpl) toDTO(app *models.Application, jobTitle string) dto.ApplicationDTO {
	return dto.ApplicationDTO{
		ID:               app.ID,
		JobID:            app.JobID,
		JobTitle:         jobTitle,
		Status:           app.Status,
		StatusMessage:    statusMessage(app.Status),
		AppliedAt:        app.AppliedAt,
		ResumeDeadline:   app.ResumeDeadline,
		DeadlineDisplay:  s.formatDisplay(app.ResumeDeadline),
		ResumeUploaded:   app.HasResume(),
		ResumeUploadedAt: app.ResumeUploaded,
		TeacherFeedback:  app.TeacherFeedback,
	}
}

// statusMessage is the human line students see next to their application.
func statusMessage(status models.ApplicationStatus) string {
	switch status {
	case models.ApplicationStatusPendingResume:
		return "Please upload your resume and photo before the deadline."
	case models.ApplicationStatusSubmitted:
		return "Your documents were received and are under review."
	case models.ApplicationStatusApproved:
		return "Congratulations, your application was approved."
	case models.ApplicationStatusRejected:
		return "Your application was not successful this time."
	case models.ApplicationStatusCorrectionsNeeded:
		return "Corrections are needed. Please review the feedback and upload your documents again."
	case models.ApplicationStatusRejectedAuto:
		return "Your application expired because no resume was uploaded in time."
	default:
		return ""
	}
}

// formatDisplay renders a UTC instant in the portal display timezone.
// Storage stays UTC, only presentation shifts.
func (s *ApplicationServiceImpl) formatDisplay(t time.Time) string {
	if s.displayLoc == nil {
		return t.UTC().Format("02 Jan 2006, 03:04 PM MST")
	}
	return t.In(s.displayLoc).Format("02 Jan 2006, 03:04 PM MST")
}

// readUpload buffers an upload, stopping one byte past the limit so an
// oversized stream is detected without reading it to the end. A
// non-positive limit means unlimited.
func (s *ApplicationServiceImpl) readUpload(content io.Reader) ([]byte, error) {
	if s.maxFileSize > 0 {
		content = io.LimitReader(content, s.maxFileSize+1)
	}
	return io.ReadAll(content)
}

func contentTypeFor(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

func storedPaths(resumeFile, photoFile string) []string {
	var paths []string
	if resumeFile != "" {
		paths = append(paths, filepath.Join(resumeDir, resumeFile))
	}
	if photoFile != "" {
		paths = append(paths, filepath.Join(photoDir, photoFile))
	}
	return paths
}
