package repositories

import (
	"errors"

	"gorm.io/gorm"

	"psychportal_backend/internal/models"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrNoVacanciesLeft = errors.New("no vacancies left")
)

type JobRepository interface {
	FindByID(id string) (*models.Job, error)
	FindAll() ([]models.Job, error)
	FindOpen() ([]models.Job, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
	UpdateStatus(jobID string, status models.JobStatus) error
	Delete(jobID string) error

	// DecrementVacancies atomically takes one vacancy. Returns
	// ErrNoVacanciesLeft when the count is already zero.
	DecrementVacancies(tx *gorm.DB, jobID string) error

	// IncrementVacancies returns vacancies freed by cleared applications
	IncrementVacancies(tx *gorm.DB, jobID string, n int) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindOpen() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("status = ?", models.JobStatusOpen).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) UpdateStatus(jobID string, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(jobID string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// DecrementVacancies relies on a guarded UPDATE so two concurrent
// applicants can never take the same last seat.
func (r *JobRepositoryImpl) DecrementVacancies(tx *gorm.DB, jobID string) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	result := db.Model(&models.Job{}).
		Where("id = ? AND vacancies > 0", jobID).
		Update("vacancies", gorm.Expr("vacancies - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoVacanciesLeft
	}
	return nil
}

func (r *JobRepositoryImpl) IncrementVacancies(tx *gorm.DB, jobID string, n int) error {
	if n <= 0 {
		return nil
	}
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("vacancies", gorm.Expr("vacancies + ?", n)).Error
}
