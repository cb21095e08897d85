package repository

import (
	"context"
	"database/sql"
	"time"

	"oil_heating/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// RunFilter narrows a run listing. Zero values disable the matching condition.
type RunFilter struct {
	From   time.Time
	To     time.Time
	Kind   string
	UserID int
	Limit  int
}

type RunRepo interface {
	Append(ctx context.Context, r models.Run) (string, error)
	Get(ctx context.Context, id string) (*models.Run, error)
	List(ctx context.Context, f RunFilter) ([]models.Run, error)
}

type Repository struct {
	RunRepo RunRepo
	Auth    Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		RunRepo: NewRunSQLite(db),
		Auth:    NewUserRepository(db),
	}
}
