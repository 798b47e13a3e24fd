package repo

import (
	"context"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo/pgdb"
	"github.com/modziE3/SENG302-TradieMe-sub002/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	GetUserById(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

type Job interface {
	GetJobById(ctx context.Context, id string) (*entity.Job, error)
	UpdateJobPosted(ctx context.Context, id string, posted bool) error
}

type Quote interface {
	CreateQuote(ctx context.Context, input *entity.CreateQuoteInput) (uuid.UUID, error)
	GetQuoteById(ctx context.Context, id string) (*entity.Quote, error)

	// GetJobQuotes returns the job's quotes in insertion order.
	GetJobQuotes(ctx context.Context, jobId string, pg *entity.PaginationInput) ([]entity.Quote, error)
	GetUserQuotes(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.Quote, error)

	// GetQuotesByStatus filters with a case-insensitive status match.
	GetQuotesByStatus(ctx context.Context, userId string, status string, pg *entity.PaginationInput) ([]entity.Quote, error)

	// UpdateQuoteStatus applies a Pending-guarded transition and reports
	// repo_errors.ErrStaleState when the guard matches no row.
	UpdateQuoteStatus(ctx context.Context, id string, from, to entity.QuoteStatus) error

	// DeleteQuote removes the row, guarded on the quote still being Pending.
	DeleteQuote(ctx context.Context, id string) error

	UpdateQuoteRated(ctx context.Context, id string, rated bool) error

	CountQuotesByStatus(ctx context.Context, jobId string, status entity.QuoteStatus) (int, error)
	HasQuoteWithStatus(ctx context.Context, userId string, jobId string, status entity.QuoteStatus) (bool, error)
	CountJobQuotes(ctx context.Context, jobId string) (int, error)
}

type Expense interface {
	CreateExpenseFromQuote(ctx context.Context, quote *entity.Quote, job *entity.Job) error
}

type Repositories struct {
	Diagnostics
	User
	Job
	Quote
	Expense
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		User:        pgdb.NewUserRepo(p),
		Job:         pgdb.NewJobRepo(p),
		Quote:       pgdb.NewQuoteRepo(p),
		Expense:     pgdb.NewExpenseRepo(p),
	}
}
