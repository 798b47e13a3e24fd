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

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getUserReq, args, _ := r.SqlBuilder.
		Select("id, name, email").
		From("account").
		Where("id = ?", uuidForm).
		ToSql()

	var user entity.User
	row := r.Database.QueryRowContext(ctx, getUserReq, args...)
	if err := row.Scan(&user.Id, &user.Name, &user.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	getUserReq, args, _ := r.SqlBuilder.
		Select("id, name, email").
		From("account").
		Where("email = ?", email).
		ToSql()

	var user entity.User
	row := r.Database.QueryRowContext(ctx, getUserReq, args...)
	if err := row.Scan(&user.Id, &user.Name, &user.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}
