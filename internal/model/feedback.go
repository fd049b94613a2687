package model

import "time"

// Comment is a user's comment on a survey
type Comment struct {
	ID        string    `json:"_id"`
	SurveyID  string    `json:"surveyId"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	SurveyID string `json:"surveyId" binding:"required"`
	Name     string `json:"name"`
	Comment  string `json:"comment" binding:"required"`
}

// Report flags a survey for admin review
type Report struct {
	ID        string    `json:"_id"`
	SurveyID  string    `json:"surveyId"`
	Email     string    `json:"email"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReportRequest struct {
	SurveyID string `json:"surveyId" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}
