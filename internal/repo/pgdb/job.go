package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/entity"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo/repo_errors"
	"github.com/modziE3/SENG302-TradieMe-sub002/pkg/postgres"

	"github.com/google/uuid"
)

type JobRepo struct {
	*postgres.Postgres
}

func NewJobRepo(pgdb *postgres.Postgres) *JobRepo {
	return &JobRepo{pgdb}
}

// GetJobById resolves the owner email through the owning renovation record so
// authorization checks never need a second round trip.
func (r *JobRepo) GetJobById(ctx context.Context, id string) (*entity.Job, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getJobReq, args, _ := r.SqlBuilder.
		Select("job.id, job.title, job.posted, job.renovation_record_id, renovation_record.owner_email").
		From("job").
		InnerJoin("renovation_record on job.renovation_record_id = renovation_record.id").
		Where("job.id = ?", uuidForm).
		ToSql()

	var job entity.Job
	row := r.Database.QueryRowContext(ctx, getJobReq, args...)
	err = row.Scan(&job.Id, &job.Title, &job.Posted, &job.RenovationRecordId, &job.OwnerEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &job, nil
}

func (r *JobRepo) UpdateJobPosted(ctx context.Context, id string, posted bool) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	updatePostedReq, args, _ := r.SqlBuilder.
		Update("job").
		Set("posted", posted).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updatePostedReq, args...)
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
