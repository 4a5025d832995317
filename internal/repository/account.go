package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdnielss/socialmedia-api/internal/middleware"
	"github.com/jdnielss/socialmedia-api/internal/model"
	"github.com/jdnielss/socialmedia-api/internal/server"
)

// AccountRepository performs database operations on the account table.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository constructs an AccountRepository over the shared
// connection pool.
func NewAccountRepository(s *server.Server) *AccountRepository {
	return &AccountRepository{pool: s.DB.Pool}
}

// Insert persists a new account and returns it with the generated
// account_id populated.
func (r *AccountRepository) Insert(ctx context.Context, username, password string) (*model.Account, error) {
	account := &model.Account{
		Username: username,
		Password: password,
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO account (username, password) VALUES ($1, $2) RETURNING account_id`,
		username, password,
	).Scan(&account.AccountID)
	if err != nil {
		return nil, fmt.Errorf("inserting account: %w", err)
	}

	middleware.LoggerFromContext(ctx).Debug().
		Int("account_id", account.AccountID).
		Msg("account inserted")

	return account, nil
}

// UsernameExists reports whether an account with the given username is
// already registered.
func (r *AccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM account WHERE username = $1)`,
		username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking username existence: %w", err)
	}

	return exists, nil
}

// GetByCredentials fetches the account matching the exact username AND
// password pair. Absence is (nil, nil).
func (r *AccountRepository) GetByCredentials(ctx context.Context, username, password string) (*model.Account, error) {
	var account model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT account_id, username, password FROM account WHERE username = $1 AND password = $2`,
		username, password,
	).Scan(&account.AccountID, &account.Username, &account.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching account by credentials: %w", err)
	}

	return &account, nil
}

// GetByID fetches an account by primary key. Absence is (nil, nil).
func (r *AccountRepository) GetByID(ctx context.Context, id int) (*model.Account, error) {
	var account model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT account_id, username, password FROM account WHERE account_id = $1`,
		id,
	).Scan(&account.AccountID, &account.Username, &account.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching account by id: %w", err)
	}

	return &account, nil
}
