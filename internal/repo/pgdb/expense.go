package pgdb

import (
	"context"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/pkg/postgres"
)

type ExpenseRepo struct {
	*postgres.Postgres
}

func NewExpenseRepo(pgdb *postgres.Postgres) *ExpenseRepo {
	return &ExpenseRepo{pgdb}
}

// CreateExpenseFromQuote materializes an accepted quote's price as a job
// expense row for the surrounding budgeting pages.
func (r *ExpenseRepo) CreateExpenseFromQuote(ctx context.Context, quote *entity.Quote, job *entity.Job) error {
	createExpenseReq, args, _ := r.SqlBuilder.
		Insert("expense").
		Columns("job_id", "quote_id", "description", "amount").
		Values(job.Id, quote.Id, quote.Description, quote.Price).
		ToSql()

	_, err := r.Database.ExecContext(ctx, createExpenseReq, args...)
	if err != nil {
		return err
	}

	return nil
}
