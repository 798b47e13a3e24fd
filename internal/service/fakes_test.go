package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/notify"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the pgdb guarantees that matter to
// the services: insertion order on job listings, status-guarded transitions,
// case-insensitive status filtering.

type memStore struct {
	users  map[uuid.UUID]entity.User
	jobs   map[uuid.UUID]entity.Job
	quotes []entity.Quote

	expenses      []entity.Quote
	notifications []notify.Notification
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[uuid.UUID]entity.User),
		jobs:   make(map[uuid.UUID]entity.Job),
		quotes: make([]entity.Quote, 0),
	}
}

func (m *memStore) addUser(name, email string) entity.User {
	user := entity.User{Id: uuid.New(), Name: name, Email: email}
	m.users[user.Id] = user

	return user
}

func (m *memStore) addJob(title, ownerEmail string, posted bool) entity.Job {
	job := entity.Job{
		Id:                 uuid.New(),
		Title:              title,
		Posted:             posted,
		RenovationRecordId: uuid.New(),
		OwnerEmail:         ownerEmail,
	}
	m.jobs[job.Id] = job

	return job
}

func (m *memStore) addQuote(user entity.User, job entity.Job, price string, workTime int) entity.Quote {
	quote := entity.Quote{
		Id:          uuid.New(),
		Price:       price,
		WorkTime:    workTime,
		Email:       user.Email,
		Description: "quote from " + user.Name,
		Status:      entity.StatusPending,
		JobId:       job.Id,
		UserId:      user.Id,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	m.quotes = append(m.quotes, quote)

	return quote
}

func (m *memStore) quoteById(id string) (*entity.Quote, bool) {
	for i := range m.quotes {
		if m.quotes[i].Id.String() == id {
			return &m.quotes[i], true
		}
	}

	return nil, false
}

type memQuoteRepo struct {
	store *memStore
}

func (r *memQuoteRepo) CreateQuote(_ context.Context, input *entity.CreateQuoteInput) (uuid.UUID, error) {
	jobId, err := uuid.Parse(input.JobId)
	if err != nil {
		return uuid.Nil, err
	}

	userId, err := uuid.Parse(input.UserId)
	if err != nil {
		return uuid.Nil, err
	}

	workTime, err := strconv.Atoi(input.WorkTime)
	if err != nil {
		return uuid.Nil, err
	}

	quote := entity.Quote{
		Id:          uuid.New(),
		Price:       input.Price,
		WorkTime:    workTime,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Description: input.Description,
		Status:      entity.StatusPending,
		JobId:       jobId,
		UserId:      userId,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	r.store.quotes = append(r.store.quotes, quote)

	return quote.Id, nil
}

func (r *memQuoteRepo) GetQuoteById(_ context.Context, id string) (*entity.Quote, error) {
	quote, ok := r.store.quoteById(id)
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	copied := *quote

	return &copied, nil
}

func paginate(quotes []entity.Quote, pg *entity.PaginationInput) []entity.Quote {
	if pg == nil {
		return quotes
	}
	if pg.Offset >= len(quotes) {
		return []entity.Quote{}
	}
	end := pg.Offset + pg.Limit
	if end > len(quotes) {
		end = len(quotes)
	}

	return quotes[pg.Offset:end]
}

func (r *memQuoteRepo) GetJobQuotes(_ context.Context, jobId string, pg *entity.PaginationInput) ([]entity.Quote, error) {
	quotes := make([]entity.Quote, 0)
	for _, quote := range r.store.quotes {
		if quote.JobId.String() == jobId {
			quotes = append(quotes, quote)
		}
	}

	return paginate(quotes, pg), nil
}

func (r *memQuoteRepo) GetUserQuotes(_ context.Context, userId string, pg *entity.PaginationInput) ([]entity.Quote, error) {
	quotes := make([]entity.Quote, 0)
	for _, quote := range r.store.quotes {
		if quote.UserId.String() == userId {
			quotes = append(quotes, quote)
		}
	}

	return paginate(quotes, pg), nil
}

func (r *memQuoteRepo) GetQuotesByStatus(_ context.Context, userId string, status string, pg *entity.PaginationInput) ([]entity.Quote, error) {
	quotes := make([]entity.Quote, 0)
	for _, quote := range r.store.quotes {
		if quote.UserId.String() == userId && strings.EqualFold(string(quote.Status), status) {
			quotes = append(quotes, quote)
		}
	}

	return paginate(quotes, pg), nil
}

func (r *memQuoteRepo) UpdateQuoteStatus(_ context.Context, id string, from, to entity.QuoteStatus) error {
	quote, ok := r.store.quoteById(id)
	if !ok || quote.Status != from {
		return repo_errors.ErrStaleState
	}
	quote.Status = to

	return nil
}

func (r *memQuoteRepo) DeleteQuote(_ context.Context, id string) error {
	for i := range r.store.quotes {
		if r.store.quotes[i].Id.String() == id {
			if r.store.quotes[i].Status != entity.StatusPending {
				return repo_errors.ErrStaleState
			}
			r.store.quotes = append(r.store.quotes[:i], r.store.quotes[i+1:]...)

			return nil
		}
	}

	return repo_errors.ErrStaleState
}

func (r *memQuoteRepo) UpdateQuoteRated(_ context.Context, id string, rated bool) error {
	quote, ok := r.store.quoteById(id)
	if !ok {
		return repo_errors.ErrNotFound
	}
	quote.Rated = rated

	return nil
}

func (r *memQuoteRepo) CountQuotesByStatus(_ context.Context, jobId string, status entity.QuoteStatus) (int, error) {
	count := 0
	for _, quote := range r.store.quotes {
		if quote.JobId.String() == jobId && quote.Status == status {
			count++
		}
	}

	return count, nil
}

func (r *memQuoteRepo) HasQuoteWithStatus(_ context.Context, userId string, jobId string, status entity.QuoteStatus) (bool, error) {
	for _, quote := range r.store.quotes {
		if quote.UserId.String() == userId && quote.JobId.String() == jobId && quote.Status == status {
			return true, nil
		}
	}

	return false, nil
}

func (r *memQuoteRepo) CountJobQuotes(_ context.Context, jobId string) (int, error) {
	count := 0
	for _, quote := range r.store.quotes {
		if quote.JobId.String() == jobId {
			count++
		}
	}

	return count, nil
}

type memJobRepo struct {
	store *memStore
}

func (r *memJobRepo) GetJobById(_ context.Context, id string) (*entity.Job, error) {
	jobId, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	job, ok := r.store.jobs[jobId]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &job, nil
}

func (r *memJobRepo) UpdateJobPosted(_ context.Context, id string, posted bool) error {
	jobId, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	job, ok := r.store.jobs[jobId]
	if !ok {
		return repo_errors.ErrNotFound
	}
	job.Posted = posted
	r.store.jobs[jobId] = job

	return nil
}

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) GetUserById(_ context.Context, id string) (*entity.User, error) {
	userId, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	user, ok := r.store.users[userId]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &user, nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			copied := user

			return &copied, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

type memExpenseRepo struct {
	store *memStore
}

func (r *memExpenseRepo) CreateExpenseFromQuote(_ context.Context, quote *entity.Quote, _ *entity.Job) error {
	r.store.expenses = append(r.store.expenses, *quote)

	return nil
}

type recordingScheduler struct {
	store *memStore
}

func (s *recordingScheduler) Schedule(n notify.Notification) {
	s.store.notifications = append(s.store.notifications, n)
}

func (m *memStore) notificationsOfKind(kind notify.Kind) []notify.Notification {
	matched := make([]notify.Notification, 0)
	for _, n := range m.notifications {
		if n.Kind == kind {
			matched = append(matched, n)
		}
	}

	return matched
}

func newTestServices(store *memStore) *Services {
	repos := &repo.Repositories{
		Quote:   &memQuoteRepo{store: store},
		Job:     &memJobRepo{store: store},
		User:    &memUserRepo{store: store},
		Expense: &memExpenseRepo{store: store},
	}

	return NewServices(repos, &recordingScheduler{store: store})
}
