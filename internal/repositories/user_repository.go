package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils"
)

type UserRepository interface {
	// CreateUser reports false when the username is already taken.
	CreateUser(ctx context.Context, user *models.User) (bool, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`

	result, err := r.DB.ExecContext(dbCtx, query, user.Username, user.Password)
	if err != nil {
		return false, storeError("create user", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, storeError("create user", err)
	}

	return inserted == 1, nil
}

func (r *userRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT username, password FROM users WHERE username = $1`

	user := &models.User{}

	err := r.DB.QueryRowContext(dbCtx, query, username).Scan(&user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storeError("get user", err)
	}

	return user, nil
}
