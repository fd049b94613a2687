package service

import (
	"context"
	"time"

	"survey_platform/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateIfAbsent(ctx context.Context, user *model.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id string, role model.Role) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockSurveyRepo struct{ mock.Mock }

func (m *mockSurveyRepo) Create(ctx context.Context, s *model.Survey) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSurveyRepo) FindByID(ctx context.Context, id string) (*model.Survey, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*model.Survey)
	return s, args.Error(1)
}

func (m *mockSurveyRepo) FindAll(ctx context.Context) ([]model.Survey, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]model.Survey)
	return s, args.Error(1)
}

func (m *mockSurveyRepo) FindLatest(ctx context.Context, limit int64) ([]model.Survey, error) {
	args := m.Called(ctx, limit)
	s, _ := args.Get(0).([]model.Survey)
	return s, args.Error(1)
}

func (m *mockSurveyRepo) Update(ctx context.Context, s *model.Survey) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSurveyRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSurveyRepo) Vote(ctx context.Context, surveyID, email, vote string) (int64, error) {
	args := m.Called(ctx, surveyID, email, vote)
	return args.Get(0).(int64), args.Error(1)
}

type mockFeedbackRepo struct{ mock.Mock }

func (m *mockFeedbackRepo) CreateComment(ctx context.Context, c *model.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockFeedbackRepo) FindComments(ctx context.Context, surveyID string) ([]model.Comment, error) {
	args := m.Called(ctx, surveyID)
	c, _ := args.Get(0).([]model.Comment)
	return c, args.Error(1)
}

func (m *mockFeedbackRepo) CreateReport(ctx context.Context, r *model.Report) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockFeedbackRepo) FindReports(ctx context.Context) ([]model.Report, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]model.Report)
	return r, args.Error(1)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) CreateAndPromote(ctx context.Context, p *model.Payment) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) FindAll(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]model.Payment)
	return p, args.Error(1)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}

type mockRevocations struct{ mock.Mock }

func (m *mockRevocations) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return m.Called(ctx, tokenID, expiresAt).Error(0)
}

func (m *mockRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
