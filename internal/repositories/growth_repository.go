package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"psychportal_backend/internal/models"
)

var (
	ErrGrowthResponseNotFound = errors.New("growth response not found")
	ErrSelfAssessmentNotFound = errors.New("self assessment not found")
)

// GrowthResponseDetail joins a reflection with its author for teacher views.
type GrowthResponseDetail struct {
	models.GrowthResponse
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
}

// SelfAssessmentDetail joins a self-check with its author.
type SelfAssessmentDetail struct {
	models.SelfAssessment
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
}

type GrowthRepository interface {
	// UpsertResponse saves a reflection, overwriting any earlier answer
	// for the same activity
	UpsertResponse(resp *models.GrowthResponse) error
	FindResponsesByUser(userID string) ([]models.GrowthResponse, error)
	ListResponseDetails() ([]GrowthResponseDetail, error)
	DeleteResponse(id string) error

	// CountResponsesByUser tallies answered prompts per student, for the
	// dashboard completion view
	CountResponsesByUser() (map[string]int64, error)

	// UpsertSelfAssessment saves the five-question self-check
	UpsertSelfAssessment(sa *models.SelfAssessment) error
	FindSelfAssessmentByUser(userID string) (*models.SelfAssessment, error)
	ListSelfAssessmentDetails() ([]SelfAssessmentDetail, error)
	DeleteSelfAssessment(id string) error
}

type GrowthRepositoryImpl struct {
	db *gorm.DB
}

func NewGrowthRepository(db *gorm.DB) GrowthRepository {
	return &GrowthRepositoryImpl{db: db}
}

func (r *GrowthRepositoryImpl) UpsertResponse(resp *models.GrowthResponse) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "activity_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"response_text", "updated_at"}),
	}).Create(resp).Error
}

func (r *GrowthRepositoryImpl) FindResponsesByUser(userID string) ([]models.GrowthResponse, error) {
	var responses []models.GrowthResponse
	err := r.db.Where("user_id = ?", userID).
		Order("activity_id ASC").
		Find(&responses).Error
	return responses, err
}

func (r *GrowthRepositoryImpl) ListResponseDetails() ([]GrowthResponseDetail, error) {
	var rows []GrowthResponseDetail
	err := r.db.Model(&models.GrowthResponse{}).
		Select("growth_responses.*, users.name AS student_name, users.email AS student_email").
		Joins("JOIN users ON users.id = growth_responses.user_id").
		Order("growth_responses.updated_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GrowthRepositoryImpl) DeleteResponse(id string) error {
	result := r.db.Delete(&models.GrowthResponse{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGrowthResponseNotFound
	}
	return nil
}

func (r *GrowthRepositoryImpl) CountResponsesByUser() (map[string]int64, error) {
	var rows []struct {
		UserID string
		Total  int64
	}
	err := r.db.Model(&models.GrowthResponse{}).
		Select("user_id, COUNT(*) AS total").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Total
	}
	return counts, nil
}

func (r *GrowthRepositoryImpl) UpsertSelfAssessment(sa *models.SelfAssessment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "updated_at"}),
	}).Create(sa).Error
}

func (r *GrowthRepositoryImpl) FindSelfAssessmentByUser(userID string) (*models.SelfAssessment, error) {
	var sa models.SelfAssessment
	err := r.db.First(&sa, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sa, nil
}

func (r *GrowthRepositoryImpl) ListSelfAssessmentDetails() ([]SelfAssessmentDetail, error) {
	var rows []SelfAssessmentDetail
	err := r.db.Model(&models.SelfAssessment{}).
		Select("self_assessments.*, users.name AS student_name, users.email AS student_email").
		Joins("JOIN users ON users.id = self_assessments.user_id").
		Order("self_assessments.updated_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GrowthRepositoryImpl) DeleteSelfAssessment(id string) error {
	result := r.db.Delete(&models.SelfAssessment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSelfAssessmentNotFound
	}
	return nil
}
