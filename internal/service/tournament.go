package service

import (
	"context"
	"errors"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo/repo_errors"
)

// TournamentService drives the stateless pairwise elimination protocol. The
// server keeps no round state: the client round-trips two parallel ordered id
// sequences (remaining tradies, remaining quotes), and every call re-fetches
// the authoritative data from the store. The id lists are positional
// bookkeeping only, never trusted payloads.
type TournamentService struct {
	quoteRepo  repo.Quote
	jobRepo    repo.Job
	userRepo   repo.User
	lifecycle  Quote
	comparison Comparison
}

func NewTournamentService(repos *repo.Repositories, lifecycle Quote, comparison Comparison) *TournamentService {
	return &TournamentService{
		quoteRepo:  repos.Quote,
		jobRepo:    repos.Job,
		userRepo:   repos.User,
		lifecycle:  lifecycle,
		comparison: comparison,
	}
}

func (s *TournamentService) StartComparison(ctx context.Context, jobId string, actorEmail string) (*entity.StartComparisonOutputModel, error) {
	job, err := s.ownedJob(ctx, jobId, actorEmail)
	if err != nil {
		return nil, err
	}

	candidates, err := s.pendingCandidates(ctx, job.Id.String())
	if err != nil {
		return nil, err
	}

	if len(candidates) < 2 {
		return nil, ErrInsufficientCandidates
	}

	first, second := candidates[0], candidates[1]

	firstTradie, err := s.userRepo.GetUserById(ctx, first.UserId.String())
	if err != nil {
		return nil, err
	}

	secondTradie, err := s.userRepo.GetUserById(ctx, second.UserId.String())
	if err != nil {
		return nil, err
	}

	firstStats, err := s.comparison.Compare(&first, &second)
	if err != nil {
		return nil, err
	}

	secondStats, err := s.comparison.Compare(&second, &first)
	if err != nil {
		return nil, err
	}

	remainingTradieIds := make([]string, 0, len(candidates)-2)
	remainingQuoteIds := make([]string, 0, len(candidates)-2)
	for _, candidate := range candidates[2:] {
		remainingTradieIds = append(remainingTradieIds, candidate.UserId.String())
		remainingQuoteIds = append(remainingQuoteIds, candidate.Id.String())
	}

	return &entity.StartComparisonOutputModel{
		FirstTradie:        mapUser(firstTradie),
		FirstQuote:         *mapQuote(&first),
		SecondTradie:       mapUser(secondTradie),
		SecondQuote:        *mapQuote(&second),
		FirstStats:         firstStats,
		SecondStats:        secondStats,
		RemainingTradieIds: remainingTradieIds,
		RemainingQuoteIds:  remainingQuoteIds,
	}, nil
}

func (s *TournamentService) NextCandidate(ctx context.Context, jobId string, actorEmail string, remainingTradieIds []string, remainingQuoteIds []string, eliminatedQuoteId string, side entity.Side) (*entity.NextCandidateOutputModel, error) {
	if !side.Valid() {
		return nil, ErrInvalidSide
	}

	job, err := s.ownedJob(ctx, jobId, actorEmail)
	if err != nil {
		return nil, err
	}

	pending, err := s.pendingQuotes(ctx, job.Id.String())
	if err != nil {
		return nil, err
	}

	remainingQuotes := make(map[string]bool, len(remainingQuoteIds))
	for _, id := range remainingQuoteIds {
		remainingQuotes[id] = true
	}

	// The survivor of the last round is re-derived from the store: it is the
	// job's pending quote that sits on neither the remaining list nor the
	// eliminated slot.
	var survivor *entity.Quote
	pendingById := make(map[string]*entity.Quote, len(pending))
	for i := range pending {
		quote := &pending[i]
		pendingById[quote.Id.String()] = quote
		if survivor == nil && !remainingQuotes[quote.Id.String()] && quote.Id.String() != eliminatedQuoteId {
			survivor = quote
		}
	}

	if survivor == nil {
		return nil, ErrNoCandidate
	}

	// Next up: the first remaining tradie that still has a pending quote
	// among the remaining quote ids.
	var candidate *entity.Quote
	for _, tradieId := range remainingTradieIds {
		for _, quoteId := range remainingQuoteIds {
			quote, stillPending := pendingById[quoteId]
			if stillPending && quote.UserId.String() == tradieId {
				candidate = quote
				break
			}
		}
		if candidate != nil {
			break
		}
	}

	if candidate == nil {
		return &entity.NextCandidateOutputModel{Exhausted: true}, nil
	}

	tradie, err := s.userRepo.GetUserById(ctx, candidate.UserId.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	candidateStats, err := s.comparison.Compare(candidate, survivor)
	if err != nil {
		return nil, err
	}

	survivorStats, err := s.comparison.Compare(survivor, candidate)
	if err != nil {
		return nil, err
	}

	return &entity.NextCandidateOutputModel{
		Exhausted:      false,
		Side:           string(side),
		Tradie:         mapUser(tradie),
		Quote:          *mapQuote(candidate),
		CandidateStats: candidateStats,
		SurvivorStats:  survivorStats,
	}, nil
}

func (s *TournamentService) Eliminate(ctx context.Context, quoteId string, actorEmail string, side entity.Side) (int, error) {
	if !side.Valid() {
		return 0, ErrInvalidSide
	}

	return s.lifecycle.RejectQuote(ctx, quoteId, actorEmail)
}

// AcceptFinal re-derives the pending list from the store instead of trusting
// any client-held id, then accepts the remaining quote with its full side
// effect chain, unlisting the job.
func (s *TournamentService) AcceptFinal(ctx context.Context, jobId string, actorEmail string) (*entity.QuoteOutputModel, error) {
	job, err := s.ownedJob(ctx, jobId, actorEmail)
	if err != nil {
		return nil, err
	}

	pending, err := s.pendingQuotes(ctx, job.Id.String())
	if err != nil {
		return nil, err
	}

	if len(pending) == 0 {
		return nil, ErrNoCandidate
	}

	return s.lifecycle.AcceptQuote(ctx, pending[0].Id.String(), actorEmail, true, false)
}

func (s *TournamentService) ownedJob(ctx context.Context, jobId string, actorEmail string) (*entity.Job, error) {
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

	return job, nil
}

func (s *TournamentService) pendingQuotes(ctx context.Context, jobId string) ([]entity.Quote, error) {
	quotes, err := s.quoteRepo.GetJobQuotes(ctx, jobId, nil)
	if err != nil {
		return nil, err
	}

	pending := make([]entity.Quote, 0, len(quotes))
	for _, quote := range quotes {
		if quote.Status == entity.StatusPending {
			pending = append(pending, quote)
		}
	}

	return pending, nil
}

// pendingCandidates keeps the job's quote insertion order and deduplicates
// senders by first occurrence, one quote per tradie.
func (s *TournamentService) pendingCandidates(ctx context.Context, jobId string) ([]entity.Quote, error) {
	pending, err := s.pendingQuotes(ctx, jobId)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(pending))
	candidates := make([]entity.Quote, 0, len(pending))
	for _, quote := range pending {
		if seen[quote.UserId.String()] {
			continue
		}
		seen[quote.UserId.String()] = true
		candidates = append(candidates, quote)
	}

	return candidates, nil
}
