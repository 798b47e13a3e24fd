package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo/repo_errors"
	"github.com/modziE3/SENG302-TradieMe-sub002/pkg/postgres"

	"github.com/google/uuid"
)

const quoteColumns = "id, price, work_time, email, phone_number, description, status, rated, job_id, user_id, created_at"

type QuoteRepo struct {
	*postgres.Postgres
}

func NewQuoteRepo(pgdb *postgres.Postgres) *QuoteRepo {
	return &QuoteRepo{pgdb}
}

func (r *QuoteRepo) CreateQuote(ctx context.Context, input *entity.CreateQuoteInput) (uuid.UUID, error) {
	jobUuid, err := uuid.Parse(input.JobId)
	if err != nil {
		return uuid.Nil, err
	}

	userUuid, err := uuid.Parse(input.UserId)
	if err != nil {
		return uuid.Nil, err
	}

	workTime, err := strconv.Atoi(input.WorkTime)
	if err != nil {
		return uuid.Nil, err
	}

	createQuoteReq, args, _ := r.SqlBuilder.
		Insert("quote").
		Columns("price", "work_time", "email", "phone_number", "description", "status", "job_id", "user_id").
		Values(input.Price, workTime, input.Email, input.PhoneNumber, input.Description, entity.StatusPending, jobUuid, userUuid).
		Suffix("RETURNING id").
		ToSql()

	var quoteId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createQuoteReq, args...).Scan(&quoteId); err != nil {
		return uuid.Nil, err
	}

	return quoteId, nil
}

func scanQuote(row interface{ Scan(...any) error }) (*entity.Quote, error) {
	var quote entity.Quote
	var createdAt time.Time
	err := row.Scan(&quote.Id, &quote.Price, &quote.WorkTime, &quote.Email, &quote.PhoneNumber,
		&quote.Description, &quote.Status, &quote.Rated, &quote.JobId, &quote.UserId, &createdAt)
	if err != nil {
		return nil, err
	}
	quote.CreatedAt = createdAt.Format(time.RFC3339)

	return &quote, nil
}

func (r *QuoteRepo) GetQuoteById(ctx context.Context, id string) (*entity.Quote, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getQuoteReq, args, _ := r.SqlBuilder.
		Select(quoteColumns).
		From("quote").
		Where("id = ?", uuidForm).
		ToSql()

	quote, err := scanQuote(r.Database.QueryRowContext(ctx, getQuoteReq, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return quote, nil
}

func (r *QuoteRepo) queryQuotes(ctx context.Context, query string, args []interface{}) ([]entity.Quote, error) {
	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]entity.Quote, 0)
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return quotes, err
		}
		quotes = append(quotes, *quote)
	}
	if err = rows.Err(); err != nil {
		return quotes, err
	}

	return quotes, nil
}

func (r *QuoteRepo) GetJobQuotes(ctx context.Context, jobId string, pg *entity.PaginationInput) ([]entity.Quote, error) {
	uuidForm, err := uuid.Parse(jobId)
	if err != nil {
		return nil, err
	}

	builder := r.SqlBuilder.
		Select(quoteColumns).
		From("quote").
		Where("job_id = ?", uuidForm).
		OrderBy("created_at ASC", "id ASC")
	if pg != nil {
		builder = builder.Offset(uint64(pg.Offset)).Limit(uint64(pg.Limit))
	}

	getJobQuotesReq, args, _ := builder.ToSql()

	return r.queryQuotes(ctx, getJobQuotesReq, args)
}

func (r *QuoteRepo) GetUserQuotes(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.Quote, error) {
	uuidForm, err := uuid.Parse(userId)
	if err != nil {
		return nil, err
	}

	builder := r.SqlBuilder.
		Select(quoteColumns).
		From("quote").
		Where("user_id = ?", uuidForm).
		OrderBy("created_at ASC", "id ASC")
	if pg != nil {
		builder = builder.Offset(uint64(pg.Offset)).Limit(uint64(pg.Limit))
	}

	getUserQuotesReq, args, _ := builder.ToSql()

	return r.queryQuotes(ctx, getUserQuotesReq, args)
}

func (r *QuoteRepo) GetQuotesByStatus(ctx context.Context, userId string, status string, pg *entity.PaginationInput) ([]entity.Quote, error) {
	uuidForm, err := uuid.Parse(userId)
	if err != nil {
		return nil, err
	}

	builder := r.SqlBuilder.
		Select(quoteColumns).
		From("quote").
		Where("user_id = ?", uuidForm).
		Where("lower(status) = lower(?)", status).
		OrderBy("created_at ASC", "id ASC")
	if pg != nil {
		builder = builder.Offset(uint64(pg.Offset)).Limit(uint64(pg.Limit))
	}

	getByStatusReq, args, _ := builder.ToSql()

	return r.queryQuotes(ctx, getByStatusReq, args)
}

// UpdateQuoteStatus is the transition guard: the WHERE clause pins the status
// the caller observed, so a racing transition leaves zero rows to update.
func (r *QuoteRepo) UpdateQuoteStatus(ctx context.Context, id string, from, to entity.QuoteStatus) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	updateStatusReq, args, _ := r.SqlBuilder.
		Update("quote").
		Set("status", to).
		Where("id = ?", uuidForm).
		Where("status = ?", from).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateStatusReq, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrStaleState
	}

	return nil
}

func (r *QuoteRepo) DeleteQuote(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	deleteQuoteReq, args, _ := r.SqlBuilder.
		Delete("quote").
		Where("id = ?", uuidForm).
		Where("status = ?", entity.StatusPending).
		ToSql()

	result, err := r.Database.ExecContext(ctx, deleteQuoteReq, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrStaleState
	}

	return nil
}

func (r *QuoteRepo) UpdateQuoteRated(ctx context.Context, id string, rated bool) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	updateRatedReq, args, _ := r.SqlBuilder.
		Update("quote").
		Set("rated", rated).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateRatedReq, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *QuoteRepo) CountQuotesByStatus(ctx context.Context, jobId string, status entity.QuoteStatus) (int, error) {
	uuidForm, err := uuid.Parse(jobId)
	if err != nil {
		return 0, err
	}

	countReq, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("quote").
		Where("job_id = ?", uuidForm).
		Where("status = ?", status).
		ToSql()

	var count int
	if err := r.Database.QueryRowContext(ctx, countReq, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *QuoteRepo) HasQuoteWithStatus(ctx context.Context, userId string, jobId string, status entity.QuoteStatus) (bool, error) {
	userUuid, err := uuid.Parse(userId)
	if err != nil {
		return false, err
	}

	jobUuid, err := uuid.Parse(jobId)
	if err != nil {
		return false, err
	}

	hasQuoteReq, args, _ := r.SqlBuilder.
		Select("id").
		From("quote").
		Where("user_id = ?", userUuid).
		Where("job_id = ?", jobUuid).
		Where("status = ?", status).
		Limit(1).
		ToSql()

	var id uuid.UUID
	err = r.Database.QueryRowContext(ctx, hasQuoteReq, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (r *QuoteRepo) CountJobQuotes(ctx context.Context, jobId string) (int, error) {
	uuidForm, err := uuid.Parse(jobId)
	if err != nil {
		return 0, err
	}

	countReq, args, _ := r.SqlBuilder.
		Select("count(*)").
		From("quote").
		Where("job_id = ?", uuidForm).
		ToSql()

	var count int
	if err := r.Database.QueryRowContext(ctx, countReq, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
