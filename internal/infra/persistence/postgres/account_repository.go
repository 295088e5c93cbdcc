// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Find returns every account stored under email, oldest first.
func (repo *accountRepository) Find(ctx context.Context, email string) ([]*entity.Account, error) {
	var rows []*model.AccountModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find accounts by email")
	}

	accounts := make([]*entity.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, toAccountDomain(row))
	}

	return accounts, nil
}

// Create inserts a new account. The unique email index turns a lost signup race into ErrAccountAlreadyExists.
func (repo *accountRepository) Create(ctx context.Context, email, password string) (*entity.Account, error) {
	row := &model.AccountModel{
		Email:    email,
		Password: password,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return toAccountDomain(row), nil
}

// FindByID retrieves a single account by id.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	row, err := repo.first(ctx, repo.db, id)
	if err != nil {
		return nil, err
	}

	return toAccountDomain(row), nil
}

// Update applies the non-nil attrs and returns the stored row.
func (repo *accountRepository) Update(ctx context.Context, id int64, attrs entity.AccountAttrs) (*entity.Account, error) {
	var updated *model.AccountModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := repo.first(ctx, tx, id)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if attrs.Email != nil {
			changes["email"] = *attrs.Email
		}
		if attrs.Password != nil {
			changes["password"] = *attrs.Password
		}
		if len(changes) > 0 {
			if err := tx.Model(row).Updates(changes).Error; err != nil {
				if isUniqueConstraintViolation(err) {
					return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already exists")
				}

				return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
			}
		}
		updated = row

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toAccountDomain(updated), nil
}

// Remove deletes the account and returns its last stored state.
func (repo *accountRepository) Remove(ctx context.Context, id int64) (*entity.Account, error) {
	var removed *model.AccountModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := repo.first(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := tx.Delete(row).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to remove account")
		}
		removed = row

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toAccountDomain(removed), nil
}

func (repo *accountRepository) first(ctx context.Context, db *gorm.DB, id int64) (*model.AccountModel, error) {
	var row model.AccountModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by id")
	}

	return &row, nil
}

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:        data.ID,
		Email:     data.Email,
		Password:  data.Password,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
