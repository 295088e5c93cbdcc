package redis

import (
	"context"
	"strconv"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"

	goredis "github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "accounts"

const (
	fieldEmail     = "email"
	fieldPassword  = "password"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// accountRepository stores one hash per account plus a sorted set of ids per email.
//
//	<prefix>:account:seq            INCR counter for ids
//	<prefix>:account:<id>           hash {email, password, createdAt, updatedAt}
//	<prefix>:account:email:<email>  zset of ids scored by id
//
// Like the in-memory store it does not enforce email uniqueness.
type accountRepository struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewAccountRepository returns a Redis account store. An empty prefix uses "accounts".
func NewAccountRepository(client goredis.UniversalClient, prefix string) repository.AccountRepository {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &accountRepository{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (repo *accountRepository) seqKey() string {
	return repo.prefix + ":account:seq"
}

func (repo *accountRepository) accountKey(id int64) string {
	return repo.prefix + ":account:" + strconv.FormatInt(id, 10)
}

func (repo *accountRepository) emailKey(email string) string {
	return repo.prefix + ":account:email:" + email
}

// Find loads every account indexed under email, in id order.
func (repo *accountRepository) Find(ctx context.Context, email string) ([]*entity.Account, error) {
	members, err := repo.client.ZRange(ctx, repo.emailKey(email), 0, -1).Result()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read email index")
	}

	accounts := make([]*entity.Account, 0, len(members))
	if len(members) == 0 {
		return accounts, nil
	}

	cmds := make([]*goredis.MapStringStringCmd, 0, len(members))
	ids := make([]int64, 0, len(members))
	_, err = repo.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, member := range members {
			id, err := strconv.ParseInt(member, 10, 64)
			if err != nil {
				continue
			}
			ids = append(ids, id)
			cmds = append(cmds, pipe.HGetAll(ctx, repo.accountKey(id)))
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load accounts")
	}

	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// Index entry outlived its hash.
			continue
		}
		accounts = append(accounts, decodeAccount(ids[i], fields))
	}

	return accounts, nil
}

// Create allocates an id and writes the hash and the email index atomically.
func (repo *accountRepository) Create(ctx context.Context, email, password string) (*entity.Account, error) {
	id, err := repo.client.Incr(ctx, repo.seqKey()).Result()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to allocate account id")
	}

	now := repo.now()
	account := &entity.Account{
		ID:        id,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, repo.accountKey(id), encodeAccount(account))
		pipe.ZAdd(ctx, repo.emailKey(email), goredis.Z{Score: float64(id), Member: id})

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return account, nil
}

// FindByID returns the account hash for id, or repository.ErrAccountNotFound.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	fields, err := repo.client.HGetAll(ctx, repo.accountKey(id)).Result()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by id")
	}
	if len(fields) == 0 {
		return nil, repository.ErrAccountNotFound
	}

	return decodeAccount(id, fields), nil
}

// Update rewrites the hash and moves the id between email indexes when the email changes.
func (repo *accountRepository) Update(ctx context.Context, id int64, attrs entity.AccountAttrs) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousEmail := account.Email
	if attrs.Email != nil {
		account.Email = *attrs.Email
	}
	if attrs.Password != nil {
		account.Password = *attrs.Password
	}
	account.UpdatedAt = repo.now()

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, repo.accountKey(id), encodeAccount(account))
		if account.Email != previousEmail {
			pipe.ZRem(ctx, repo.emailKey(previousEmail), id)
			pipe.ZAdd(ctx, repo.emailKey(account.Email), goredis.Z{Score: float64(id), Member: id})
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	return account, nil
}

// Remove deletes the hash and its email index entry.
func (repo *accountRepository) Remove(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, repo.accountKey(id))
		pipe.ZRem(ctx, repo.emailKey(account.Email), id)

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to remove account")
	}

	return account, nil
}

func encodeAccount(account *entity.Account) map[string]any {
	return map[string]any{
		fieldEmail:     account.Email,
		fieldPassword:  account.Password,
		fieldCreatedAt: account.CreatedAt.UnixNano(),
		fieldUpdatedAt: account.UpdatedAt.UnixNano(),
	}
}

func decodeAccount(id int64, fields map[string]string) *entity.Account {
	return &entity.Account{
		ID:        id,
		Email:     fields[fieldEmail],
		Password:  fields[fieldPassword],
		CreatedAt: decodeTime(fields[fieldCreatedAt]),
		UpdatedAt: decodeTime(fields[fieldUpdatedAt]),
	}
}

func decodeTime(raw string) time.Time {
	nanos, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(0, nanos)
}

