package service

import (
	"context"
	"errors"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/notify"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo/repo_errors"
)

const defaultPageSize = 5

// QuoteService owns the quote state machine: submission, acceptance,
// rejection and retraction, plus the one-pending-quote-per-sender invariant.
type QuoteService struct {
	quoteRepo   repo.Quote
	jobRepo     repo.Job
	userRepo    repo.User
	expenseRepo repo.Expense
	validator   *QuoteValidator
	notifier    notify.Scheduler
}

func NewQuoteService(repos *repo.Repositories, validator *QuoteValidator, notifier notify.Scheduler) *QuoteService {
	return &QuoteService{
		quoteRepo:   repos.Quote,
		jobRepo:     repos.Job,
		userRepo:    repos.User,
		expenseRepo: repos.Expense,
		validator:   validator,
		notifier:    notifier,
	}
}

func (s *QuoteService) SubmitQuote(ctx context.Context, input *entity.CreateQuoteInput) (*entity.QuoteOutputModel, error) {
	job, err := s.jobRepo.GetJobById(ctx, input.JobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}

	if !job.Posted {
		return nil, ErrJobNotPosted
	}

	sender, err := s.userRepo.GetUserById(ctx, input.UserId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	duplicate, err := s.quoteRepo.HasQuoteWithStatus(ctx, input.UserId, input.JobId, entity.StatusPending)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, ErrDuplicateQuote
	}

	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	id, err := s.quoteRepo.CreateQuote(ctx, input)
	if err != nil {
		return nil, err
	}

	quote, err := s.quoteRepo.GetQuoteById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	s.notifier.Schedule(notify.Notification{
		Kind:           notify.KindQuoteReceived,
		RecipientEmail: job.OwnerEmail,
		JobTitle:       job.Title,
		SenderName:     sender.Name,
	})

	return mapQuote(quote), nil
}

func (s *QuoteService) AcceptQuote(ctx context.Context, quoteId string, actorEmail string, retractListing bool, convertToExpense bool) (*entity.QuoteOutputModel, error) {
	quote, job, err := s.getQuoteWithJob(ctx, quoteId)
	if err != nil {
		return nil, err
	}

	if job.OwnerEmail != actorEmail {
		return nil, ErrNotJobOwner
	}

	if !quote.Status.CanTransitionTo(entity.StatusAccepted) {
		return nil, ErrStaleState
	}

	err = s.quoteRepo.UpdateQuoteStatus(ctx, quoteId, entity.StatusPending, entity.StatusAccepted)
	if err != nil {
		if errors.Is(err, repo_errors.ErrStaleState) {
			return nil, ErrStaleState
		}

		return nil, err
	}

	if retractListing {
		if err := s.jobRepo.UpdateJobPosted(ctx, job.Id.String(), false); err != nil {
			return nil, err
		}
	}

	if sender, err := s.userRepo.GetUserById(ctx, quote.UserId.String()); err == nil {
		s.notifier.Schedule(notify.Notification{
			Kind:           notify.KindQuoteAccepted,
			RecipientEmail: sender.Email,
			JobTitle:       job.Title,
			SenderName:     sender.Name,
		})
	}

	if convertToExpense {
		if err := s.expenseRepo.CreateExpenseFromQuote(ctx, quote, job); err != nil {
			return nil, err
		}
	}

	quote, err = s.quoteRepo.GetQuoteById(ctx, quoteId)
	if err != nil {
		return nil, err
	}

	return mapQuote(quote), nil
}

func (s *QuoteService) RejectQuote(ctx context.Context, quoteId string, actorEmail string) (int, error) {
	quote, job, err := s.getQuoteWithJob(ctx, quoteId)
	if err != nil {
		return 0, err
	}

	if job.OwnerEmail != actorEmail {
		return 0, ErrNotJobOwner
	}

	if !quote.Status.CanTransitionTo(entity.StatusRejected) {
		return 0, ErrStaleState
	}

	err = s.quoteRepo.UpdateQuoteStatus(ctx, quoteId, entity.StatusPending, entity.StatusRejected)
	if err != nil {
		if errors.Is(err, repo_errors.ErrStaleState) {
			return 0, ErrStaleState
		}

		return 0, err
	}

	return s.quoteRepo.CountQuotesByStatus(ctx, job.Id.String(), entity.StatusPending)
}

// RetractQuote is sender-only and deletes the row outright. The retraction
// notification goes the other way round: to the job owner.
func (s *QuoteService) RetractQuote(ctx context.Context, quoteId string, actorEmail string) error {
	quote, job, err := s.getQuoteWithJob(ctx, quoteId)
	if err != nil {
		return err
	}

	sender, err := s.userRepo.GetUserById(ctx, quote.UserId.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrUserNotFound
		}

		return err
	}

	if sender.Email != actorEmail {
		return ErrNotQuoteSender
	}

	if !quote.Status.CanRetract() {
		return ErrStaleState
	}

	if err := s.quoteRepo.DeleteQuote(ctx, quoteId); err != nil {
		if errors.Is(err, repo_errors.ErrStaleState) {
			return ErrStaleState
		}

		return err
	}

	s.notifier.Schedule(notify.Notification{
		Kind:           notify.KindQuoteRetracted,
		RecipientEmail: job.OwnerEmail,
		JobTitle:       job.Title,
		SenderName:     sender.Name,
	})

	return nil
}

func (s *QuoteService) CheckDuplicate(ctx context.Context, userId string, jobId string) (bool, error) {
	return s.quoteRepo.HasQuoteWithStatus(ctx, userId, jobId, entity.StatusPending)
}

func (s *QuoteService) MarkRated(ctx context.Context, quoteId string, actorEmail string) (*entity.QuoteOutputModel, error) {
	_, job, err := s.getQuoteWithJob(ctx, quoteId)
	if err != nil {
		return nil, err
	}

	if job.OwnerEmail != actorEmail {
		return nil, ErrNotJobOwner
	}

	if err := s.quoteRepo.UpdateQuoteRated(ctx, quoteId, true); err != nil {
		return nil, err
	}

	quote, err := s.quoteRepo.GetQuoteById(ctx, quoteId)
	if err != nil {
		return nil, err
	}

	return mapQuote(quote), nil
}

func (s *QuoteService) GetJobQuotes(ctx context.Context, jobId string, actorEmail string, page int, pageSize int) (*entity.QuoteListOutputModel, error) {
	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}

	if job.OwnerEmail != actorEmail {
		return nil, ErrNotJobOwner
	}

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	count, err := s.quoteRepo.CountJobQuotes(ctx, jobId)
	if err != nil {
		return nil, err
	}

	page = entity.ClampPage(count, pageSize, page)
	quotes, err := s.quoteRepo.GetJobQuotes(ctx, jobId, entity.PageInput(count, pageSize, page))
	if err != nil {
		return nil, err
	}

	totalPages := entity.TotalPages(count, pageSize)

	return &entity.QuoteListOutputModel{
		Quotes:      mapQuotes(quotes),
		Page:        page,
		TotalPages:  totalPages,
		PageNumbers: entity.PageNumbers(totalPages, page, defaultPageSize),
	}, nil
}

func (s *QuoteService) GetUserQuotes(ctx context.Context, actorEmail string, status string, page int, pageSize int) (*entity.QuoteListOutputModel, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	var quotes []entity.Quote
	if status == "" {
		quotes, err = s.quoteRepo.GetUserQuotes(ctx, user.Id.String(), nil)
	} else {
		quotes, err = s.quoteRepo.GetQuotesByStatus(ctx, user.Id.String(), status, nil)
	}
	if err != nil {
		return nil, err
	}

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	count := len(quotes)
	page = entity.ClampPage(count, pageSize, page)
	start, end := entity.PageBounds(count, pageSize, page)
	totalPages := entity.TotalPages(count, pageSize)

	return &entity.QuoteListOutputModel{
		Quotes:      mapQuotes(quotes[start:end]),
		Page:        page,
		TotalPages:  totalPages,
		PageNumbers: entity.PageNumbers(totalPages, page, defaultPageSize),
	}, nil
}

func (s *QuoteService) getQuoteWithJob(ctx context.Context, quoteId string) (*entity.Quote, *entity.Job, error) {
	quote, err := s.quoteRepo.GetQuoteById(ctx, quoteId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, ErrQuoteNotFound
		}

		return nil, nil, err
	}

	job, err := s.jobRepo.GetJobById(ctx, quote.JobId.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, ErrJobNotFound
		}

		return nil, nil, err
	}

	return quote, job, nil
}
