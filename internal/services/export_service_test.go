package services

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"psychportal_backend/internal/models"
	"psychportal_backend/internal/repositories"
)

// detailListRepo serves canned rows to the exporter. Only ListDetails is
// ever called, the embedded interface covers the rest.
type detailListRepo struct {
	repositories.ApplicationRepository
	rows []repositories.ApplicationDetail
}

func (r *detailListRepo) ListDetails(filter repositories.ApplicationFilter) ([]repositories.ApplicationDetail, error) {
	return r.rows, nil
}

func TestAssessedStudentsExport(t *testing.T) {
	appliedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	repo := &detailListRepo{rows: []repositories.ApplicationDetail{
		{
			Application: models.Application{
				BaseModel:       models.BaseModel{ID: "a1"},
				Status:          models.ApplicationStatusCorrectionsNeeded,
				AppliedAt:       appliedAt,
				TeacherFeedback: "add references",
			},
			StudentName:  "Asel K",
			StudentEmail: "asel@uni.edu",
			JobTitle:     "Lab Assistant",
		},
	}}

	file, err := NewExportService(repo).AssessedStudents()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^Assessed_Students_\d{8}_\d{4}\.xlsx$`), file.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	require.NotEmpty(t, file.Content)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Assessed Students"}, wb.GetSheetList())

	cells, err := wb.GetRows("Assessed Students")
	require.NoError(t, err)
	require.Len(t, cells, 2)

	assert.Equal(t, []string{"Student Name", "Student Email", "Job Title", "Status", "Applied At", "Teacher Feedback"}, cells[0])
	assert.Equal(t, []string{"Asel K", "asel@uni.edu", "Lab Assistant", "Corrections Needed", "2026-03-14 09:30", "add references"}, cells[1])
}

func TestAssessedStudentsExportEmpty(t *testing.T) {
	file, err := NewExportService(&detailListRepo{}).AssessedStudents()
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	cells, err := wb.GetRows("Assessed Students")
	require.NoError(t, err)
	require.Len(t, cells, 1) // header only
}

func TestTitleCaseStatus(t *testing.T) {
	assert.Equal(t, "Approved", titleCaseStatus(models.ApplicationStatusApproved))
	assert.Equal(t, "Corrections Needed", titleCaseStatus(models.ApplicationStatusCorrectionsNeeded))
	assert.Equal(t, "Rejected Auto", titleCaseStatus(models.ApplicationStatusRejectedAuto))
}
