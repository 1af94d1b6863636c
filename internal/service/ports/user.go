package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, in domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
