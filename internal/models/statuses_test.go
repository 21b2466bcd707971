package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusIsActive(t *testing.T) {
	assert.True(t, ApplicationStatusPendingResume.IsActive())
	assert.True(t, ApplicationStatusSubmitted.IsActive())
	assert.True(t, ApplicationStatusApproved.IsActive())

	assert.False(t, ApplicationStatusRejected.IsActive())
	assert.False(t, ApplicationStatusRejectedAuto.IsActive())
	assert.False(t, ApplicationStatusCorrectionsNeeded.IsActive())
}

func TestApplicationStatusIsDecision(t *testing.T) {
	assert.True(t, ApplicationStatusApproved.IsDecision())
	assert.True(t, ApplicationStatusRejected.IsDecision())
	assert.True(t, ApplicationStatusCorrectionsNeeded.IsDecision())

	assert.False(t, ApplicationStatusPendingResume.IsDecision())
	assert.False(t, ApplicationStatusSubmitted.IsDecision())
	assert.False(t, ApplicationStatusRejectedAuto.IsDecision())
}

func TestHasResume(t *testing.T) {
	app := Application{}
	assert.False(t, app.HasResume())

	app.ResumeFile = "S100_a1.pdf"
	assert.True(t, app.HasResume())
}
