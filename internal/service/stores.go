package service

import (
	"context"

	"go-calc-api/internal/model"
)

// UserStore is the credential store contract. Create must enforce
// email uniqueness atomically and report model.ErrDuplicateEmail when
// the email is taken.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u model.User) error
}

type ScenarioStore interface {
	Create(ctx context.Context, s model.Scenario) (model.Scenario, error)
	FindByID(ctx context.Context, id int64) (model.Scenario, error)
	List(ctx context.Context) ([]model.Scenario, error)
	ListByOwner(ctx context.Context, userID string) ([]model.Scenario, error)
	Delete(ctx context.Context, id int64) error
}
