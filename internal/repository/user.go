package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const userColumns = `id, first_name, last_name, email, role, telegram_chat_id, created_at`

type UserRepository struct {
	store
}

func NewUserRepo(db *dbpg.DB, opts TxOptions) *UserRepository {
	return &UserRepository{store: newStore(db, opts)}
}

func scanUser(row scanner) (*domain.User, error) {
	var u domain.User
	var chatID sql.NullInt64
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role, &chatID, &u.CreatedAt); err != nil {
		return nil, err
	}
	if chatID.Valid {
		u.TelegramChatID = &chatID.Int64
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, in domain.CreateUserInput) (*domain.User, error) {
	query := `INSERT INTO users (first_name, last_name, email, role, telegram_chat_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + userColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		in.FirstName, in.LastName, in.Email, in.Role, in.TelegramChatID)
	if err != nil {
		return nil, classify(ctx, "insert user", err)
	}

	u, err := scanUser(row)
	if err != nil {
		err = classify(ctx, "insert user", err)
		if isConstraint(err, "users_email_key") {
			return nil, fmt.Errorf("%w: %w", domain.ErrEmailTaken, err)
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, classify(ctx, "get user", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, classify(ctx, "scan user", err)
	}

	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, classify(ctx, "get user", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, classify(ctx, "scan user", err)
	}

	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, classify(ctx, "list users", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}
