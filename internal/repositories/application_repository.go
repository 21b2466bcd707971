package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"psychportal_backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrActiveApplication   = errors.New("active application already exists")
)

// ApplicationDetail is an application joined with its student and job,
// used by teacher listings and the spreadsheet export.
type ApplicationDetail struct {
	models.Application
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	JobTitle     string `json:"job_title"`
}

// ApplicationFilter narrows the teacher listing and the report views.
// Zero value means no filtering.
type ApplicationFilter struct {
	Statuses    []models.ApplicationStatus
	StudentName string // case-insensitive substring match on the student name
	HasResume   *bool  // true: resume uploaded, false: still missing
}

// ClearedApplication is the per-row result of a bulk clear, carrying
// what is needed to restore vacancies afterwards.
type ClearedApplication struct {
	ID         string
	JobID      string
	ResumeFile string
	PhotoFile  string
}

type ApplicationRepository interface {
	FindByID(id string) (*models.Application, error)
	FindByIDWithJob(id string) (*models.Application, error)
	FindActiveByUser(userID string) (*models.Application, error)
	FindByUser(userID string) ([]models.Application, error)
	CountActiveByJob(jobID string) (int64, error)
	Update(app *models.Application) error

	// CreateWithVacancyDecrement inserts the application and takes one
	// vacancy in a single transaction. If the guarded decrement finds no
	// vacancy the insert is rolled back and ErrNoVacanciesLeft returned.
	CreateWithVacancyDecrement(app *models.Application, jobs JobRepository) error

	// ListDetails returns applications joined with student and job rows,
	// newest first, narrowed by the filter
	ListDetails(filter ApplicationFilter) ([]ApplicationDetail, error)

	// ExpirePending flips overdue resume-less applications to
	// rejected_auto and returns the affected rows for notification
	ExpirePending(now time.Time) ([]ApplicationDetail, error)

	// ClearByIDs deletes the given applications and restores one vacancy
	// per row removed, all in one transaction
	ClearByIDs(ids []string, jobs JobRepository) ([]ClearedApplication, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByIDWithJob(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Job").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindActiveByUser(userID string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Job").
		Where("user_id = ? AND status IN ?", userID, models.ActiveApplicationStatuses).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByUser(userID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Job").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) CountActiveByJob(jobID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND status IN ?", jobID, models.ActiveApplicationStatuses).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) Update(app *models.Application) error {
	return r.db.Save(app).Error
}

func (r *ApplicationRepositoryImpl) CreateWithVacancyDecrement(app *models.Application, jobs JobRepository) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrActiveApplication
			}
			return err
		}
		// Guarded decrement inside the same transaction. A failure here
		// rolls the insert back, the applicant loses the race cleanly.
		return jobs.DecrementVacancies(tx, app.JobID)
	})
}

func (r *ApplicationRepositoryImpl) ListDetails(filter ApplicationFilter) ([]ApplicationDetail, error) {
	var rows []ApplicationDetail
	q := r.db.Model(&models.Application{}).
		Select("applications.*, users.name AS student_name, users.email AS student_email, jobs.title AS job_title").
		Joins("JOIN users ON users.id = applications.user_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Order("applications.applied_at DESC")
	if len(filter.Statuses) > 0 {
		q = q.Where("applications.status IN ?", filter.Statuses)
	}
	if filter.StudentName != "" {
		q = q.Where("users.name ILIKE ?", "%"+filter.StudentName+"%")
	}
	if filter.HasResume != nil {
		if *filter.HasResume {
			q = q.Where("applications.resume_file <> ''")
		} else {
			q = q.Where("(applications.resume_file = '' OR applications.resume_file IS NULL)")
		}
	}
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *ApplicationRepositoryImpl) ExpirePending(now time.Time) ([]ApplicationDetail, error) {
	var expired []ApplicationDetail

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Select first so the worker can notify the affected students.
		err := tx.Model(&models.Application{}).
			Select("applications.*, users.name AS student_name, users.email AS student_email, jobs.title AS job_title").
			Joins("JOIN users ON users.id = applications.user_id").
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("applications.status = ?", models.ApplicationStatusPendingResume).
			Where("(applications.resume_file = '' OR applications.resume_file IS NULL)").
			Where("applications.resume_deadline < ?", now).
			Scan(&expired).Error
		if err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}

		ids := make([]string, 0, len(expired))
		for _, e := range expired {
			ids = append(ids, e.ID)
		}

		return tx.Model(&models.Application{}).
			Where("id IN ? AND status = ?", ids, models.ApplicationStatusPendingResume).
			Updates(map[string]interface{}{
				"status":     models.ApplicationStatusRejectedAuto,
				"updated_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return expired, nil
}

func (r *ApplicationRepositoryImpl) ClearByIDs(ids []string, jobs JobRepository) ([]ClearedApplication, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var cleared []ClearedApplication
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var apps []models.Application
		if err := tx.Where("id IN ?", ids).Find(&apps).Error; err != nil {
			return err
		}

		// Every deletion frees one seat, the inverse of the decrement
		// taken on apply. Status does not matter here.
		freed := make(map[string]int)
		for _, app := range apps {
			freed[app.JobID]++
			cleared = append(cleared, ClearedApplication{
				ID:         app.ID,
				JobID:      app.JobID,
				ResumeFile: app.ResumeFile,
				PhotoFile:  app.PhotoFile,
			})
		}

		if err := tx.Delete(&models.Application{}, "id IN ?", ids).Error; err != nil {
			return err
		}

		for jobID, n := range freed {
			if err := jobs.IncrementVacancies(tx, jobID, n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cleared, nil
}
