package models

import "gorm.io/datatypes"

// GrowthResponse is one student's written reflection for one Growth Hub
// activity. One row per (user, activity) pair; re-submitting overwrites.
type GrowthResponse struct {
	BaseModel
	UserID       string `gorm:"type:uuid;not null;uniqueIndex:idx_growth_user_activity" json:"user_id"`
	ActivityID   int    `gorm:"not null;uniqueIndex:idx_growth_user_activity" json:"activity_id"`
	ResponseText string `gorm:"type:text;not null" json:"response_text"`
}

// SelfAssessment holds the five-question self-check answers as a JSON
// document keyed q1..q5. One row per user, upserted on resubmission.
type SelfAssessment struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Answers datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
}
