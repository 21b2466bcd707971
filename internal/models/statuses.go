package models

type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"

	// Job status is an explicit flag; vacancy exhaustion never closes a job
	// by itself.
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPendingResume     ApplicationStatus = "pending_resume"
	ApplicationStatusSubmitted         ApplicationStatus = "submitted"
	ApplicationStatusApproved          ApplicationStatus = "approved"
	ApplicationStatusRejected          ApplicationStatus = "rejected"
	ApplicationStatusCorrectionsNeeded ApplicationStatus = "corrections_needed"
	ApplicationStatusRejectedAuto      ApplicationStatus = "rejected_auto"
)

// ActiveApplicationStatuses are the statuses that count against the
// one-application-per-student limit and against job capacity.
var ActiveApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPendingResume,
	ApplicationStatusSubmitted,
	ApplicationStatusApproved,
}

// AssessedApplicationStatuses are the statuses included in the teacher's
// spreadsheet export.
var AssessedApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApproved,
	ApplicationStatusRejected,
	ApplicationStatusCorrectionsNeeded,
}

// AllApplicationStatuses is used by report filters.
var AllApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPendingResume,
	ApplicationStatusSubmitted,
	ApplicationStatusApproved,
	ApplicationStatusRejected,
	ApplicationStatusRejectedAuto,
	ApplicationStatusCorrectionsNeeded,
}

// IsActive reports whether the status counts as an active application.
func (s ApplicationStatus) IsActive() bool {
	for _, active := range ActiveApplicationStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// IsDecision reports whether the status is a valid teacher disposition.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusApproved ||
		s == ApplicationStatusRejected ||
		s == ApplicationStatusCorrectionsNeeded
}
