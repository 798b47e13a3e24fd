package service

import (
	"context"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/notify"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Quote interface {
	SubmitQuote(ctx context.Context, input *entity.CreateQuoteInput) (*entity.QuoteOutputModel, error)

	AcceptQuote(ctx context.Context, quoteId string, actorEmail string, retractListing bool, convertToExpense bool) (*entity.QuoteOutputModel, error)

	// RejectQuote returns how many quotes are still pending on the job
	// after the rejection.
	RejectQuote(ctx context.Context, quoteId string, actorEmail string) (int, error)

	RetractQuote(ctx context.Context, quoteId string, actorEmail string) error

	CheckDuplicate(ctx context.Context, userId string, jobId string) (bool, error)

	MarkRated(ctx context.Context, quoteId string, actorEmail string) (*entity.QuoteOutputModel, error)

	GetJobQuotes(ctx context.Context, jobId string, actorEmail string, page int, pageSize int) (*entity.QuoteListOutputModel, error)
	GetUserQuotes(ctx context.Context, actorEmail string, status string, page int, pageSize int) (*entity.QuoteListOutputModel, error)
}

type Comparison interface {
	Compare(a, b *entity.Quote) (entity.ComparisonResult, error)
}

type Tournament interface {
	StartComparison(ctx context.Context, jobId string, actorEmail string) (*entity.StartComparisonOutputModel, error)

	NextCandidate(ctx context.Context, jobId string, actorEmail string, remainingTradieIds []string, remainingQuoteIds []string, eliminatedQuoteId string, side entity.Side) (*entity.NextCandidateOutputModel, error)

	// Eliminate returns the post-rejection pending count so the caller can
	// detect the "exactly one left" boundary.
	Eliminate(ctx context.Context, quoteId string, actorEmail string, side entity.Side) (int, error)

	AcceptFinal(ctx context.Context, jobId string, actorEmail string) (*entity.QuoteOutputModel, error)
}

type Services struct {
	Diagnostics Diagnostics
	Quote       Quote
	Comparison  Comparison
	Tournament  Tournament
}

func NewServices(repos *repo.Repositories, notifier notify.Scheduler) *Services {
	comparison := NewComparisonService()
	quote := NewQuoteService(repos, NewQuoteValidator(), notifier)

	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Quote:       quote,
		Comparison:  comparison,
		Tournament:  NewTournamentService(repos, quote, comparison),
	}
}
