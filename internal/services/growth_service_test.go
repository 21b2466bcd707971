package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psychportal_backend/internal/growth"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/repositories"
	"psychportal_backend/internal/services/dto"
)

type fakeGrowthRepo struct {
	responses   map[string]*models.GrowthResponse // keyed by userID:activityID
	assessments map[string]*models.SelfAssessment
	nextID      int
}

func newFakeGrowthRepo() *fakeGrowthRepo {
	return &fakeGrowthRepo{
		responses:   make(map[string]*models.GrowthResponse),
		assessments: make(map[string]*models.SelfAssessment),
	}
}

func growthKey(userID string, activityID int) string {
	return fmt.Sprintf("%s:%d", userID, activityID)
}

func (r *fakeGrowthRepo) UpsertResponse(resp *models.GrowthResponse) error {
	key := growthKey(resp.UserID, resp.ActivityID)
	if existing, ok := r.responses[key]; ok {
		existing.ResponseText = resp.ResponseText
		existing.UpdatedAt = time.Now().UTC()
		return nil
	}
	r.nextID++
	resp.ID = fmt.Sprintf("resp-%d", r.nextID)
	resp.UpdatedAt = time.Now().UTC()
	r.responses[key] = resp
	return nil
}

func (r *fakeGrowthRepo) FindResponsesByUser(userID string) ([]models.GrowthResponse, error) {
	var out []models.GrowthResponse
	for _, resp := range r.responses {
		if resp.UserID == userID {
			out = append(out, *resp)
		}
	}
	return out, nil
}

func (r *fakeGrowthRepo) ListResponseDetails() ([]repositories.GrowthResponseDetail, error) {
	var out []repositories.GrowthResponseDetail
	for _, resp := range r.responses {
		out = append(out, repositories.GrowthResponseDetail{
			GrowthResponse: *resp,
			StudentName:    "Student",
			StudentEmail:   "student@uni.edu",
		})
	}
	return out, nil
}

func (r *fakeGrowthRepo) DeleteResponse(id string) error {
	for key, resp := range r.responses {
		if resp.ID == id {
			delete(r.responses, key)
			return nil
		}
	}
	return repositories.ErrGrowthResponseNotFound
}

func (r *fakeGrowthRepo) UpsertSelfAssessment(sa *models.SelfAssessment) error {
	if existing, ok := r.assessments[sa.UserID]; ok {
		existing.Answers = sa.Answers
		existing.UpdatedAt = time.Now().UTC()
		return nil
	}
	r.nextID++
	sa.ID = fmt.Sprintf("sa-%d", r.nextID)
	sa.UpdatedAt = time.Now().UTC()
	r.assessments[sa.UserID] = sa
	return nil
}

func (r *fakeGrowthRepo) FindSelfAssessmentByUser(userID string) (*models.SelfAssessment, error) {
	return r.assessments[userID], nil
}

func (r *fakeGrowthRepo) CountResponsesByUser() (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, resp := range r.responses {
		counts[resp.UserID]++
	}
	return counts, nil
}

func (r *fakeGrowthRepo) ListSelfAssessmentDetails() ([]repositories.SelfAssessmentDetail, error) {
	var out []repositories.SelfAssessmentDetail
	for _, sa := range r.assessments {
		out = append(out, repositories.SelfAssessmentDetail{
			SelfAssessment: *sa,
			StudentName:    "Student",
			StudentEmail:   "student@uni.edu",
		})
	}
	return out, nil
}

func (r *fakeGrowthRepo) DeleteSelfAssessment(id string) error {
	for userID, sa := range r.assessments {
		if sa.ID == id {
			delete(r.assessments, userID)
			return nil
		}
	}
	return repositories.ErrSelfAssessmentNotFound
}

func TestActivitiesMergesAnswers(t *testing.T) {
	repo := newFakeGrowthRepo()
	svc := NewGrowthService(repo)

	require.NoError(t, svc.SubmitResponse("u1", &dto.GrowthResponseRequest{
		ActivityID:   3,
		ResponseText: "I tried the breathing exercise before my exam.",
	}))

	items, err := svc.Activities("u1")
	require.NoError(t, err)
	require.Len(t, items, len(growth.Activities))

	var answered int
	for _, item := range items {
		if item.ID == 3 {
			assert.Equal(t, "I tried the breathing exercise before my exam.", item.ResponseText)
			assert.NotNil(t, item.AnsweredAt)
			answered++
		} else {
			assert.Empty(t, item.ResponseText)
			assert.Nil(t, item.AnsweredAt)
		}
	}
	assert.Equal(t, 1, answered)
}

func TestSubmitResponseOverwrites(t *testing.T) {
	repo := newFakeGrowthRepo()
	svc := NewGrowthService(repo)

	require.NoError(t, svc.SubmitResponse("u1", &dto.GrowthResponseRequest{ActivityID: 7, ResponseText: "first"}))
	require.NoError(t, svc.SubmitResponse("u1", &dto.GrowthResponseRequest{ActivityID: 7, ResponseText: "second"}))

	responses, err := repo.FindResponsesByUser("u1")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "second", responses[0].ResponseText)
}

func TestSubmitResponseRejectsUnknownActivity(t *testing.T) {
	svc := NewGrowthService(newFakeGrowthRepo())

	err := svc.SubmitResponse("u1", &dto.GrowthResponseRequest{ActivityID: 999, ResponseText: "x"})
	assert.Error(t, err)
}

func TestDeleteResponse(t *testing.T) {
	repo := newFakeGrowthRepo()
	svc := NewGrowthService(repo)

	require.NoError(t, svc.SubmitResponse("u1", &dto.GrowthResponseRequest{ActivityID: 1, ResponseText: "x"}))

	rows, err := svc.ListResponses()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotEmpty(t, rows[0].ActivityTitle)

	require.NoError(t, svc.DeleteResponse(rows[0].ID))

	err = svc.DeleteResponse(rows[0].ID)
	assert.Error(t, err)
}

func TestSelfAssessmentRoundTrip(t *testing.T) {
	svc := NewGrowthService(newFakeGrowthRepo())

	sa, err := svc.SelfAssessment("u1")
	require.NoError(t, err)
	assert.Nil(t, sa)

	answers := map[string]string{
		"strengths": "listening",
		"goals":     "clinical placement",
	}
	require.NoError(t, svc.SubmitSelfAssessment("u1", &dto.SelfAssessmentRequest{Answers: answers}))

	sa, err = svc.SelfAssessment("u1")
	require.NoError(t, err)
	require.NotNil(t, sa)
	assert.Equal(t, answers, sa.Answers)
}

func TestRandomActivityPrefersUnanswered(t *testing.T) {
	repo := newFakeGrowthRepo()
	svc := NewGrowthService(repo)

	// Answer everything except prompt 42 so the pick is deterministic.
	for _, activity := range growth.Activities {
		if activity.ID == 42 {
			continue
		}
		require.NoError(t, svc.SubmitResponse("u1", &dto.GrowthResponseRequest{
			ActivityID:   activity.ID,
			ResponseText: "done",
		}))
	}

	pick, err := svc.RandomActivity("u1")
	require.NoError(t, err)
	assert.Equal(t, 42, pick.ID)
	assert.Nil(t, pick.AnsweredAt)
}

func TestRandomActivityFallsBackWhenAllAnswered(t *testing.T) {
	repo := newFakeGrowthRepo()
	svc := NewGrowthService(repo)

	for _, activity := range growth.Activities {
		require.NoError(t, svc.SubmitResponse("u1", &dto.GrowthResponseRequest{
			ActivityID:   activity.ID,
			ResponseText: "done",
		}))
	}

	pick, err := svc.RandomActivity("u1")
	require.NoError(t, err)
	require.NotNil(t, pick)
	assert.NotNil(t, pick.AnsweredAt)
}

func TestListAndDeleteSelfAssessments(t *testing.T) {
	repo := newFakeGrowthRepo()
	svc := NewGrowthService(repo)

	require.NoError(t, svc.SubmitSelfAssessment("u1", &dto.SelfAssessmentRequest{
		Answers: map[string]string{"strengths": "empathy"},
	}))

	rows, err := svc.ListSelfAssessments()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Student", rows[0].StudentName)
	assert.Equal(t, "empathy", rows[0].Answers["strengths"])

	require.NoError(t, svc.DeleteSelfAssessment(rows[0].ID))

	err = svc.DeleteSelfAssessment(rows[0].ID)
	assert.Error(t, err)

	rows, err = svc.ListSelfAssessments()
	require.NoError(t, err)
	assert.Empty(t, rows)
}
