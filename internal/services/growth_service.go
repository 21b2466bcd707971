package services

import (
	"encoding/json"
	"math/rand"

	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/growth"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/repositories"
	"psychportal_backend/internal/services/dto"
)

type GrowthService interface {
	// Activities returns the full catalog with the student's answers
	// merged in
	Activities(userID string) ([]dto.GrowthActivityDTO, error)

	// RandomActivity picks an unanswered prompt for the student, or any
	// prompt once everything is answered
	RandomActivity(userID string) (*dto.GrowthActivityDTO, error)

	// SubmitResponse saves or overwrites the reflection for one prompt
	SubmitResponse(userID string, req *dto.GrowthResponseRequest) error

	// ListResponses is the teacher view over all reflections
	ListResponses() ([]dto.GrowthResponseDetailDTO, error)

	// DeleteResponse removes a single reflection (teacher action)
	DeleteResponse(responseID string) error

	// SubmitSelfAssessment saves the five-question self-check
	SubmitSelfAssessment(userID string, req *dto.SelfAssessmentRequest) error

	// SelfAssessment returns the stored self-check, or nil if none
	SelfAssessment(userID string) (*dto.SelfAssessmentDTO, error)

	// ListSelfAssessments is the teacher view over all self-checks
	ListSelfAssessments() ([]dto.SelfAssessmentDetailDTO, error)

	// DeleteSelfAssessment removes a stored self-check (teacher action)
	DeleteSelfAssessment(id string) error
}

type GrowthServiceImpl struct {
	growthRepo repositories.GrowthRepository
}

func NewGrowthService(growthRepo repositories.GrowthRepository) GrowthService {
	return &GrowthServiceImpl{growthRepo: growthRepo}
}

func (s *GrowthServiceImpl) Activities(userID string) ([]dto.GrowthActivityDTO, error) {
	responses, err := s.growthRepo.FindResponsesByUser(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	answered := make(map[int]*models.GrowthResponse, len(responses))
	for i := range responses {
		answered[responses[i].ActivityID] = &responses[i]
	}

	out := make([]dto.GrowthActivityDTO, 0, len(growth.Activities))
	for _, a := range growth.Activities {
		item := dto.GrowthActivityDTO{
			ID:    a.ID,
			Title: a.Title,
			Desc:  a.Desc,
			Icon:  a.Icon,
		}
		if resp, ok := answered[a.ID]; ok {
			item.ResponseText = resp.ResponseText
			t := resp.UpdatedAt
			item.AnsweredAt = &t
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *GrowthServiceImpl) RandomActivity(userID string) (*dto.GrowthActivityDTO, error) {
	items, err := s.Activities(userID)
	if err != nil {
		return nil, err
	}

	unanswered := make([]dto.GrowthActivityDTO, 0, len(items))
	for _, item := range items {
		if item.AnsweredAt == nil {
			unanswered = append(unanswered, item)
		}
	}
	pool := unanswered
	if len(pool) == 0 {
		pool = items
	}

	pick := pool[rand.Intn(len(pool))]
	return &pick, nil
}

func (s *GrowthServiceImpl) SubmitResponse(userID string, req *dto.GrowthResponseRequest) error {
	if _, ok := growth.ActivityByID(req.ActivityID); !ok {
		return appErrors.NewBadRequestError("Unknown activity")
	}

	resp := &models.GrowthResponse{
		UserID:       userID,
		ActivityID:   req.ActivityID,
		ResponseText: req.ResponseText,
	}
	if err := s.growthRepo.UpsertResponse(resp); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *GrowthServiceImpl) ListResponses() ([]dto.GrowthResponseDetailDTO, error) {
	rows, err := s.growthRepo.ListResponseDetails()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	out := make([]dto.GrowthResponseDetailDTO, 0, len(rows))
	for _, row := range rows {
		title := ""
		if a, ok := growth.ActivityByID(row.ActivityID); ok {
			title = a.Title
		}
		out = append(out, dto.GrowthResponseDetailDTO{
			ID:            row.ID,
			ActivityID:    row.ActivityID,
			ActivityTitle: title,
			StudentName:   row.StudentName,
			StudentEmail:  row.StudentEmail,
			ResponseText:  row.ResponseText,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return out, nil
}

func (s *GrowthServiceImpl) DeleteResponse(responseID string) error {
	err := s.growthRepo.DeleteResponse(responseID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrGrowthResponseNotFound) {
			return appErrors.ErrNotFound(err, "growth", "Reflection not found")
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *GrowthServiceImpl) SubmitSelfAssessment(userID string, req *dto.SelfAssessmentRequest) error {
	raw, err := json.Marshal(req.Answers)
	if err != nil {
		return appErrors.InternalError(err)
	}

	sa := &models.SelfAssessment{
		UserID:  userID,
		Answers: raw,
	}
	if err := s.growthRepo.UpsertSelfAssessment(sa); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *GrowthServiceImpl) SelfAssessment(userID string) (*dto.SelfAssessmentDTO, error) {
	sa, err := s.growthRepo.FindSelfAssessmentByUser(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if sa == nil {
		return nil, nil
	}

	answers := make(map[string]string)
	if err := json.Unmarshal(sa.Answers, &answers); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.SelfAssessmentDTO{
		Answers:   answers,
		UpdatedAt: sa.UpdatedAt,
	}, nil
}

func (s *GrowthServiceImpl) ListSelfAssessments() ([]dto.SelfAssessmentDetailDTO, error) {
	rows, err := s.growthRepo.ListSelfAssessmentDetails()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	out := make([]dto.SelfAssessmentDetailDTO, 0, len(rows))
	for _, row := range rows {
		answers := make(map[string]string)
		if err := json.Unmarshal(row.Answers, &answers); err != nil {
			return nil, appErrors.InternalError(err)
		}
		out = append(out, dto.SelfAssessmentDetailDTO{
			ID:           row.ID,
			StudentName:  row.StudentName,
			StudentEmail: row.StudentEmail,
			Answers:      answers,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return out, nil
}

func (s *GrowthServiceImpl) DeleteSelfAssessment(id string) error {
	err := s.growthRepo.DeleteSelfAssessment(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrSelfAssessmentNotFound) {
			return appErrors.ErrNotFound(err, "growth", "Self-assessment not found")
		}
		return appErrors.InternalError(err)
	}
	return nil
}
