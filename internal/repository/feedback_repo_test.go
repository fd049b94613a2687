package repository

import (
	"context"
	"testing"
	"time"

	"survey_platform/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackRepository_CreateComment(t *testing.T) {
	mock := newMockPool(t)
	repo := NewFeedbackRepository(mock)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO comments`).
		WithArgs("c-1", "s-1", "a@x.com", "Ann", "nice", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateComment(context.Background(), &model.Comment{
		ID: "c-1", SurveyID: "s-1", Email: "a@x.com", Name: "Ann", Comment: "nice", CreatedAt: now,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepository_FindComments_BySurvey(t *testing.T) {
	mock := newMockPool(t)
	repo := NewFeedbackRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM comments WHERE survey_id = \$1 ORDER BY created_at`).
		WithArgs("s-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "survey_id", "email", "name", "comment", "created_at"}).
			AddRow("c-1", "s-1", "a@x.com", "", "nice", now))

	comments, err := repo.FindComments(context.Background(), "s-1")

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice", comments[0].Comment)
}

func TestFeedbackRepository_FindComments_All(t *testing.T) {
	mock := newMockPool(t)
	repo := NewFeedbackRepository(mock)

	mock.ExpectQuery(`FROM comments ORDER BY created_at`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "survey_id", "email", "name", "comment", "created_at"}))

	comments, err := repo.FindComments(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, comments)
	assert.NotNil(t, comments)
}

func TestFeedbackRepository_Reports(t *testing.T) {
	mock := newMockPool(t)
	repo := NewFeedbackRepository(mock)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO reports`).
		WithArgs("r-1", "s-1", "a@x.com", "spam", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`FROM reports ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "survey_id", "email", "reason", "created_at"}).
			AddRow("r-1", "s-1", "a@x.com", "spam", now))

	require.NoError(t, repo.CreateReport(context.Background(), &model.Report{
		ID: "r-1", SurveyID: "s-1", Email: "a@x.com", Reason: "spam", CreatedAt: now,
	}))
	reports, err := repo.FindReports(context.Background())

	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "spam", reports[0].Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepository_CreateComment_UnknownSurvey(t *testing.T) {
	mock := newMockPool(t)
	repo := NewFeedbackRepository(mock)

	mock.ExpectExec(`INSERT INTO comments`).
		WithArgs("c-1", "s-404", "a@x.com", "", "hi", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.CreateComment(context.Background(), &model.Comment{
		ID: "c-1", SurveyID: "s-404", Email: "a@x.com", Comment: "hi", CreatedAt: time.Now(),
	})

	assert.ErrorIs(t, err, ErrUnknownSurvey)
}
