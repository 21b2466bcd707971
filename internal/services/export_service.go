package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/repositories"
)

const exportSheet = "Assessed Students"

// ExportFile is a rendered spreadsheet ready to stream to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type ExportService interface {
	// AssessedStudents renders all assessed applications as an xlsx
	// workbook, newest first
	AssessedStudents() (*ExportFile, error)
}

type ExportServiceImpl struct {
	appRepo repositories.ApplicationRepository
}

func NewExportService(appRepo repositories.ApplicationRepository) ExportService {
	return &ExportServiceImpl{appRepo: appRepo}
}

func (s *ExportServiceImpl) AssessedStudents() (*ExportFile, error) {
	rows, err := s.appRepo.ListDetails(repositories.ApplicationFilter{Statuses: models.AssessedApplicationStatuses})
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetIdx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	f.SetActiveSheet(sheetIdx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, appErrors.InternalError(err)
	}

	headers := []string{"Student Name", "Student Email", "Job Title", "Status", "Applied At", "Teacher Feedback"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, appErrors.InternalError(err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.StudentName,
			row.StudentEmail,
			row.JobTitle,
			titleCaseStatus(row.Status),
			row.AppliedAt.UTC().Format("2006-01-02 15:04"),
			row.TeacherFeedback,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, appErrors.InternalError(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("Assessed_Students_%s.xlsx", time.Now().UTC().Format("20060102_1504")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}

// titleCaseStatus renders "corrections_needed" as "Corrections Needed"
func titleCaseStatus(status models.ApplicationStatus) string {
	words := strings.Split(string(status), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
