package repository

import (
	"context"
	"errors"
	"fmt"

	"survey_platform/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrAlreadyVoted is returned when the voter already voted on the survey
var ErrAlreadyVoted = errors.New("user already voted on this survey")

// SurveyRepository defines operations for survey data
type SurveyRepository interface {
	Create(ctx context.Context, survey *model.Survey) error
	FindByID(ctx context.Context, id string) (*model.Survey, error)
	FindAll(ctx context.Context) ([]model.Survey, error)
	FindLatest(ctx context.Context, limit int64) ([]model.Survey, error)
	Update(ctx context.Context, survey *model.Survey) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	// Vote records one vote per (survey, email) and bumps the matching counter.
	// It returns the number of surveys updated (0 when the survey does not exist).
	Vote(ctx context.Context, surveyID, email, vote string) (int64, error)
}

type surveyRepository struct {
	db Pool
}

// NewSurveyRepository creates a new SurveyRepository
func NewSurveyRepository(db Pool) SurveyRepository {
	return &surveyRepository{db: db}
}

const surveyColumns = `id, surveyor_email, survey_title, category, survey_date, description, question1, yes_votes, no_votes, created_at`

func scanSurvey(row pgx.Row, s *model.Survey) error {
	return row.Scan(&s.ID, &s.SurveyorEmail, &s.SurveyTitle, &s.Category, &s.Date,
		&s.Description, &s.Question1, &s.YesVotes, &s.NoVotes, &s.CreatedAt)
}

func (r *surveyRepository) Create(ctx context.Context, s *model.Survey) error {
	sql := `INSERT INTO surveys (id, surveyor_email, survey_title, category, survey_date, description, question1, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, sql, s.ID, s.SurveyorEmail, s.SurveyTitle, s.Category, s.Date, s.Description, s.Question1, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create survey: %w", err)
	}
	return nil
}

// FindByID retrieves a survey; (nil, nil) when absent
func (r *surveyRepository) FindByID(ctx context.Context, id string) (*model.Survey, error) {
	s := &model.Survey{}
	err := scanSurvey(r.db.QueryRow(ctx, `SELECT `+surveyColumns+` FROM surveys WHERE id = $1`, id), s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find survey by ID: %w", err)
	}
	return s, nil
}

func (r *surveyRepository) FindAll(ctx context.Context) ([]model.Survey, error) {
	return r.query(ctx, `SELECT `+surveyColumns+` FROM surveys ORDER BY created_at DESC`)
}

func (r *surveyRepository) FindLatest(ctx context.Context, limit int64) ([]model.Survey, error) {
	return r.query(ctx, `SELECT `+surveyColumns+` FROM surveys ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *surveyRepository) query(ctx context.Context, sql string, args ...any) ([]model.Survey, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query surveys: %w", err)
	}
	defer rows.Close()

	surveys := []model.Survey{}
	for rows.Next() {
		var s model.Survey
		if err := scanSurvey(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan survey row: %w", err)
		}
		surveys = append(surveys, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating survey rows: %w", err)
	}
	return surveys, nil
}

// Update overwrites the editable fields; vote counters are untouched
func (r *surveyRepository) Update(ctx context.Context, s *model.Survey) (int64, error) {
	sql := `UPDATE surveys
            SET surveyor_email = $1, survey_title = $2, category = $3, survey_date = $4, description = $5, question1 = $6
            WHERE id = $7`
	cmdTag, err := r.db.Exec(ctx, sql, s.SurveyorEmail, s.SurveyTitle, s.Category, s.Date, s.Description, s.Question1, s.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update survey: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *surveyRepository) Delete(ctx context.Context, id string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM surveys WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete survey: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *surveyRepository) Vote(ctx context.Context, surveyID, email, vote string) (int64, error) {
	counter := "no_votes"
	if vote == model.VoteYes {
		counter = "yes_votes"
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin vote transaction: %w", err)
	}

	updated, err := r.vote(ctx, tx, surveyID, email, vote, counter)
	if err != nil || updated == 0 {
		_ = tx.Rollback(ctx)
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit vote: %w", err)
	}
	return updated, nil
}

func (r *surveyRepository) vote(ctx context.Context, tx DBTX, surveyID, email, vote, counter string) (int64, error) {
	cmdTag, err := tx.Exec(ctx, fmt.Sprintf(`UPDATE surveys SET %s = %s + 1 WHERE id = $1`, counter, counter), surveyID)
	if err != nil {
		return 0, fmt.Errorf("failed to count vote: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, nil
	}

	cmdTag, err = tx.Exec(ctx, `INSERT INTO survey_votes (survey_id, email, vote) VALUES ($1, $2, $3)
            ON CONFLICT (survey_id, email) DO NOTHING`, surveyID, email, vote)
	if err != nil {
		return 0, fmt.Errorf("failed to record vote: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, ErrAlreadyVoted
	}
	return 1, nil
}
