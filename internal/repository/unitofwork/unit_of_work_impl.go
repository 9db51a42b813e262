package unitofwork

import (
	"context"

	"viralpost-be/internal/repository/contract"
	"viralpost-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type unitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func newUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWorkImpl{db: db}
}

// conn returns the transaction handle when one is open, the bare connection
// otherwise, so repositories work the same in both modes.
func (u *unitOfWorkImpl) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *unitOfWorkImpl) Begin(ctx context.Context) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *unitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *unitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *unitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.conn())
}

func (u *unitOfWorkImpl) GenerationRepository() contract.GenerationRepository {
	return implementation.NewGenerationRepository(u.conn())
}

func (u *unitOfWorkImpl) GeneratedPostRepository() contract.GeneratedPostRepository {
	return implementation.NewGeneratedPostRepository(u.conn())
}
