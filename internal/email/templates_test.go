package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationReceivedBody(t *testing.T) {
	subject, body := applicationReceivedBody("Asel K", "Lab Assistant", "03 Sep 2026, 02:00 PM IST")

	assert.Contains(t, subject, "Lab Assistant")
	assert.Contains(t, body, "Dear Asel K")
	assert.Contains(t, body, "03 Sep 2026, 02:00 PM IST")
	assert.Contains(t, body, "automatically rejected")
}

func TestStatusUpdateBodyFeedbackIsConditional(t *testing.T) {
	_, body := statusUpdateBody("Asel K", "Lab Assistant", "approved", "")
	assert.Contains(t, body, "approved")
	assert.NotContains(t, body, "Feedback")

	_, body = statusUpdateBody("Asel K", "Lab Assistant", "corrections_needed", "add your references")
	assert.Contains(t, body, "corrections_needed")
	assert.Contains(t, body, "add your references")
}

func TestNewSubmissionBodyIdentifiesStudent(t *testing.T) {
	subject, body := newSubmissionBody("Asel K", "PSY2026", "Lab Assistant")

	assert.Contains(t, subject, "Asel K")
	assert.Contains(t, subject, "PSY2026")
	assert.Contains(t, body, "attached")
}

func TestDeadlineExpiredBody(t *testing.T) {
	_, body := deadlineExpiredBody("Asel K", "Lab Assistant")
	assert.Contains(t, body, "automatically rejected")
	assert.Contains(t, body, "apply again")
}

func TestOTPBodyCarriesCode(t *testing.T) {
	_, body := otpBody("Asel K", "123456")
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "expires")
}
