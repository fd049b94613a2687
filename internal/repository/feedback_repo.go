package repository

import (
	"context"
	"errors"
	"fmt"

	"survey_platform/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUnknownSurvey is returned when feedback references a survey that does not exist
var ErrUnknownSurvey = errors.New("referenced survey does not exist")

const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// FeedbackRepository stores comments and reports on surveys
type FeedbackRepository interface {
	CreateComment(ctx context.Context, c *model.Comment) error
	FindComments(ctx context.Context, surveyID string) ([]model.Comment, error)
	CreateReport(ctx context.Context, r *model.Report) error
	FindReports(ctx context.Context) ([]model.Report, error)
}

type feedbackRepository struct {
	db DBTX
}

func NewFeedbackRepository(db DBTX) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateComment(ctx context.Context, c *model.Comment) error {
	sql := `INSERT INTO comments (id, survey_id, email, name, comment, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.Exec(ctx, sql, c.ID, c.SurveyID, c.Email, c.Name, c.Comment, c.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return ErrUnknownSurvey
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindComments lists comments oldest first; an empty surveyID lists all of them
func (r *feedbackRepository) FindComments(ctx context.Context, surveyID string) ([]model.Comment, error) {
	sql := `SELECT id, survey_id, email, name, comment, created_at FROM comments`
	args := []any{}
	if surveyID != "" {
		sql += ` WHERE survey_id = $1`
		args = append(args, surveyID)
	}
	sql += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.SurveyID, &c.Email, &c.Name, &c.Comment, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return comments, nil
}

func (r *feedbackRepository) CreateReport(ctx context.Context, rep *model.Report) error {
	sql := `INSERT INTO reports (id, survey_id, email, reason, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, sql, rep.ID, rep.SurveyID, rep.Email, rep.Reason, rep.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return ErrUnknownSurvey
		}
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *feedbackRepository) FindReports(ctx context.Context) ([]model.Report, error) {
	rows, err := r.db.Query(ctx, `SELECT id, survey_id, email, reason, created_at FROM reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []model.Report{}
	for rows.Next() {
		var rep model.Report
		if err := rows.Scan(&rep.ID, &rep.SurveyID, &rep.Email, &rep.Reason, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return reports, nil
}
