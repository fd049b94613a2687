package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"survey_platform/internal/model"
	"survey_platform/internal/repository"

	"github.com/google/uuid"
)

// FeedbackService handles comments and reports on surveys
type FeedbackService interface {
	AddComment(ctx context.Context, email string, req model.CreateCommentRequest) (model.InsertResult, error)
	ListComments(ctx context.Context, surveyID string) ([]model.Comment, error)
	AddReport(ctx context.Context, email string, req model.CreateReportRequest) (model.InsertResult, error)
	ListReports(ctx context.Context) ([]model.Report, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) AddComment(ctx context.Context, email string, req model.CreateCommentRequest) (model.InsertResult, error) {
	if err := validateID(req.SurveyID); err != nil {
		return model.InsertResult{}, err
	}
	c := &model.Comment{
		ID:        uuid.NewString(),
		SurveyID:  req.SurveyID,
		Email:     email,
		Name:      req.Name,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		if errors.Is(err, repository.ErrUnknownSurvey) {
			return model.InsertResult{}, ErrSurveyNotFound
		}
		return model.InsertResult{}, fmt.Errorf("failed to add comment: %w", err)
	}
	return model.Inserted(c.ID), nil
}

func (s *feedbackService) ListComments(ctx context.Context, surveyID string) ([]model.Comment, error) {
	if surveyID != "" {
		if err := validateID(surveyID); err != nil {
			return nil, err
		}
	}
	comments, err := s.repo.FindComments(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *feedbackService) AddReport(ctx context.Context, email string, req model.CreateReportRequest) (model.InsertResult, error) {
	if err := validateID(req.SurveyID); err != nil {
		return model.InsertResult{}, err
	}
	r := &model.Report{
		ID:        uuid.NewString(),
		SurveyID:  req.SurveyID,
		Email:     email,
		Reason:    req.Reason,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateReport(ctx, r); err != nil {
		if errors.Is(err, repository.ErrUnknownSurvey) {
			return model.InsertResult{}, ErrSurveyNotFound
		}
		return model.InsertResult{}, fmt.Errorf("failed to add report: %w", err)
	}
	return model.Inserted(r.ID), nil
}

func (s *feedbackService) ListReports(ctx context.Context) ([]model.Report, error) {
	reports, err := s.repo.FindReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}
