package handler

import (
	"context"
	"sort"
	"sync"

	"survey_platform/internal/model"
	"survey_platform/internal/repository"
)

// memStore implements the repository interfaces in memory.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*model.User
	surveys  map[string]*model.Survey
	order    []string
	votes    map[string]bool
	comments []model.Comment
	reports  []model.Report
	payments []model.Payment
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[string]*model.User{},
		surveys: map[string]*model.Survey{},
		votes:   map[string]bool{},
	}
}

type memUsers struct{ *memStore }

func (s memUsers) CreateIfAbsent(_ context.Context, user *model.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return false, nil
	}
	u := *user
	s.users[user.Email] = &u
	return true, nil
}

func (s memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s memUsers) FindAll(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Role != users[j].Role {
			return users[i].Role < users[j].Role
		}
		return users[i].Email < users[j].Email
	})
	return users, nil
}

func (s memUsers) UpdateRole(_ context.Context, id string, role model.Role) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (s memUsers) Delete(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, u := range s.users {
		if u.ID == id {
			delete(s.users, email)
			return 1, nil
		}
	}
	return 0, nil
}

type memSurveys struct{ *memStore }

func (s memSurveys) Create(_ context.Context, survey *model.Survey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *survey
	s.surveys[survey.ID] = &cp
	s.order = append(s.order, survey.ID)
	return nil
}

func (s memSurveys) FindByID(_ context.Context, id string) (*model.Survey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.surveys[id]
	if !ok {
		return nil, nil
	}
	cp := *sv
	return &cp, nil
}

func (s memSurveys) FindAll(ctx context.Context) ([]model.Survey, error) {
	return s.FindLatest(ctx, 0)
}

func (s memSurveys) FindLatest(_ context.Context, limit int64) ([]model.Survey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Survey
	for i := len(s.order) - 1; i >= 0; i-- {
		if sv, ok := s.surveys[s.order[i]]; ok {
			out = append(out, *sv)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (s memSurveys) Update(_ context.Context, survey *model.Survey) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.surveys[survey.ID]
	if !ok {
		return 0, nil
	}
	sv.SurveyorEmail = survey.SurveyorEmail
	sv.SurveyTitle = survey.SurveyTitle
	sv.Category = survey.Category
	sv.Date = survey.Date
	sv.Description = survey.Description
	sv.Question1 = survey.Question1
	return 1, nil
}

func (s memSurveys) Delete(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.surveys[id]; !ok {
		return 0, nil
	}
	delete(s.surveys, id)
	return 1, nil
}

func (s memSurveys) Vote(_ context.Context, surveyID, email, vote string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.surveys[surveyID]
	if !ok {
		return 0, nil
	}
	key := surveyID + "/" + email
	if s.votes[key] {
		return 0, repository.ErrAlreadyVoted
	}
	s.votes[key] = true
	if vote == model.VoteYes {
		sv.YesVotes++
	} else {
		sv.NoVotes++
	}
	return 1, nil
}

type memFeedback struct{ *memStore }

func (s memFeedback) CreateComment(_ context.Context, c *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.surveys[c.SurveyID]; !ok {
		return repository.ErrUnknownSurvey
	}
	s.comments = append(s.comments, *c)
	return nil
}

func (s memFeedback) FindComments(_ context.Context, surveyID string) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Comment
	for _, c := range s.comments {
		if surveyID == "" || c.SurveyID == surveyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s memFeedback) CreateReport(_ context.Context, r *model.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.surveys[r.SurveyID]; !ok {
		return repository.ErrUnknownSurvey
	}
	s.reports = append(s.reports, *r)
	return nil
}

func (s memFeedback) FindReports(_ context.Context) ([]model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Report(nil), s.reports...), nil
}

type memPayments struct{ *memStore }

func (s memPayments) CreateAndPromote(_ context.Context, p *model.Payment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, *p)
	u, ok := s.users[p.Email]
	if !ok {
		return 0, nil
	}
	u.Role = model.RoleProUser
	return 1, nil
}

func (s memPayments) FindAll(_ context.Context) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Payment(nil), s.payments...), nil
}

type fakeGateway struct {
	amount   int64
	currency string
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, currency string) (string, error) {
	g.amount = amount
	g.currency = currency
	return "pi_test_secret", nil
}
