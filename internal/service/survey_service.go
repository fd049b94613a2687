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

// SurveyService defines operations for surveys and votes
type SurveyService interface {
	List(ctx context.Context) ([]model.Survey, error)
	Latest(ctx context.Context) ([]model.Survey, error)
	Get(ctx context.Context, id string) (*model.Survey, error)
	Create(ctx context.Context, creatorEmail string, req model.SurveyRequest) (model.InsertResult, error)
	Update(ctx context.Context, id string, req model.SurveyRequest) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
	Vote(ctx context.Context, id, email, vote string) (model.UpdateResult, error)
}

type surveyService struct {
	repo        repository.SurveyRepository
	latestLimit int64
}

// NewSurveyService creates a new SurveyService; Latest returns at most latestLimit surveys.
func NewSurveyService(repo repository.SurveyRepository, latestLimit int64) SurveyService {
	return &surveyService{repo: repo, latestLimit: latestLimit}
}

func (s *surveyService) List(ctx context.Context) ([]model.Survey, error) {
	surveys, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	return surveys, nil
}

func (s *surveyService) Latest(ctx context.Context) ([]model.Survey, error) {
	surveys, err := s.repo.FindLatest(ctx, s.latestLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest surveys: %w", err)
	}
	return surveys, nil
}

func (s *surveyService) Get(ctx context.Context, id string) (*model.Survey, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	survey, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find survey: %w", err)
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

// Create stores a survey. The surveyor email defaults to the creator's.
func (s *surveyService) Create(ctx context.Context, creatorEmail string, req model.SurveyRequest) (model.InsertResult, error) {
	survey := &model.Survey{
		ID:            uuid.NewString(),
		SurveyorEmail: req.SurveyorEmail,
		SurveyTitle:   req.SurveyTitle,
		Category:      req.Category,
		Date:          req.Date,
		Description:   req.Description,
		Question1:     req.Question1,
		CreatedAt:     time.Now(),
	}
	if survey.SurveyorEmail == "" {
		survey.SurveyorEmail = creatorEmail
	}

	if err := s.repo.Create(ctx, survey); err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create survey: %w", err)
	}
	return model.Inserted(survey.ID), nil
}

func (s *surveyService) Update(ctx context.Context, id string, req model.SurveyRequest) (model.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return model.UpdateResult{}, err
	}
	n, err := s.repo.Update(ctx, &model.Survey{
		ID:            id,
		SurveyorEmail: req.SurveyorEmail,
		SurveyTitle:   req.SurveyTitle,
		Category:      req.Category,
		Date:          req.Date,
		Description:   req.Description,
		Question1:     req.Question1,
	})
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to update survey: %w", err)
	}
	return model.Updated(n), nil
}

func (s *surveyService) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return model.DeleteResult{}, err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete survey: %w", err)
	}
	return model.Deleted(n), nil
}

func (s *surveyService) Vote(ctx context.Context, id, email, vote string) (model.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return model.UpdateResult{}, err
	}
	n, err := s.repo.Vote(ctx, id, email, vote)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyVoted) {
			return model.UpdateResult{}, ErrAlreadyVoted
		}
		return model.UpdateResult{}, fmt.Errorf("failed to record vote: %w", err)
	}
	if n == 0 {
		return model.UpdateResult{}, ErrSurveyNotFound
	}
	return model.Updated(n), nil
}
