package unitofwork

import (
	"context"

	"viralpost-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	GenerationRepository() contract.GenerationRepository
	GeneratedPostRepository() contract.GeneratedPostRepository
}
