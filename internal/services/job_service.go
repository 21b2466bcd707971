package services

import (
	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/repositories"
	"psychportal_backend/internal/services/dto"
)

type JobService interface {
	ListOpen() ([]dto.JobDTO, error)
	ListAll() ([]dto.JobDTO, error)
	GetByID(jobID string) (*dto.JobDTO, error)
	Create(teacherID string, req *dto.CreateJobRequest) (*dto.JobDTO, error)
	Update(jobID string, req *dto.UpdateJobRequest) (*dto.JobDTO, error)
	Close(jobID string) error
	Delete(jobID string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) ListOpen() ([]dto.JobDTO, error) {
	jobs, err := s.jobRepo.FindOpen()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return mapJobs(jobs), nil
}

func (s *JobServiceImpl) ListAll() ([]dto.JobDTO, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return mapJobs(jobs), nil
}

func (s *JobServiceImpl) GetByID(jobID string) (*dto.JobDTO, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	out := dto.NewJobDTO(job)
	return &out, nil
}

func (s *JobServiceImpl) Create(teacherID string, req *dto.CreateJobRequest) (*dto.JobDTO, error) {
	job := &models.Job{
		Title:         req.Title,
		Description:   req.Description,
		Specification: req.Specification,
		Vacancies:     req.Vacancies,
		ProofOfFunds:  req.ProofOfFunds,
		CreatedBy:     teacherID,
		Status:        models.JobStatusOpen,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	out := dto.NewJobDTO(job)
	return &out, nil
}

func (s *JobServiceImpl) Update(jobID string, req *dto.UpdateJobRequest) (*dto.JobDTO, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Specification = req.Specification
	job.Vacancies = req.Vacancies
	job.ProofOfFunds = req.ProofOfFunds
	job.Status = models.JobStatus(req.Status)

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	out := dto.NewJobDTO(job)
	return &out, nil
}

// Close marks a job as no longer accepting applications. Existing
// applications are untouched.
func (s *JobServiceImpl) Close(jobID string) error {
	err := s.jobRepo.UpdateStatus(jobID, models.JobStatusClosed)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return appErrors.ErrJobNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) Delete(jobID string) error {
	err := s.jobRepo.Delete(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return appErrors.ErrJobNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func mapJobs(jobs []models.Job) []dto.JobDTO {
	out := make([]dto.JobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, dto.NewJobDTO(&jobs[i]))
	}
	return out
}
