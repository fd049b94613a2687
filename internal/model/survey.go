package model

import "time"

const (
	VoteYes = "yes"
	VoteNo  = "no"
)

// Survey is a yes/no survey published by a surveyor
type Survey struct {
	ID            string    `json:"_id"`
	SurveyorEmail string    `json:"surveyorEmail"`
	SurveyTitle   string    `json:"surveyTitle"`
	Category      string    `json:"category"`
	Date          string    `json:"date"`
	Description   string    `json:"description"`
	Question1     string    `json:"question1"`
	YesVotes      int64     `json:"yesVotes"`
	NoVotes       int64     `json:"noVotes"`
	CreatedAt     time.Time `json:"created_at"`
}

// SurveyRequest carries the editable survey fields for create and update.
type SurveyRequest struct {
	SurveyorEmail string `json:"surveyorEmail"`
	SurveyTitle   string `json:"surveyTitle" binding:"required"`
	Category      string `json:"category"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	Question1     string `json:"question1"`
}

// VoteRequest is the payload of a survey vote
type VoteRequest struct {
	Vote string `json:"vote" binding:"required,oneof=yes no"`
}
