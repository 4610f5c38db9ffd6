package account

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libkata/optional"
	"github.com/shopspring/decimal"
)

// NewCachedStorage wraps storage with a read-through cache of account lookups. Cached accounts
// are handed out as copies, writes drop the affected entries. A lookup that overlapped a write
// is returned but not cached.
func NewCachedStorage(storage Storage, expiration time.Duration, logger l.Wrapper) Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if storage == nil {
		logger.Fatal("no storage")
	}

	if expiration <= 0 {
		expiration = time.Minute
	}

	return &cachedStorageImpl{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "cachedStorageImpl")),
		storage: storage,
		cached:  cache.New(expiration, expiration*2),
	}
}

type cachedStorageImpl struct {
	logger  l.Wrapper
	storage Storage
	cached  *cache.Cache

	lock       sync.Mutex
	generation uint64
}

func (impl *cachedStorageImpl) idKey(id uint64) string {
	return fmt.Sprintf("id:%d", id)
}

func (impl *cachedStorageImpl) emailKey(email string) string {
	return "email:" + strings.ToLower(email)
}

func (impl *cachedStorageImpl) load(key string) (*Account, bool) {
	i, ok := impl.cached.Get(key)
	if !ok {
		return nil, false
	}

	account, ok := i.(*Account)
	if !ok {
		return nil, false
	}

	return account.Clone(), true
}

func (impl *cachedStorageImpl) beginLoad() uint64 {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.generation
}

// store caches account unless a write happened since the load that produced it began.
func (impl *cachedStorageImpl) store(account *Account, generation uint64) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if generation != impl.generation {
		return
	}

	impl.cached.SetDefault(impl.idKey(account.ID), account.Clone())
	impl.cached.SetDefault(impl.emailKey(account.Email), account.Clone())
}

func (impl *cachedStorageImpl) invalidate(id uint64) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.generation++

	if i, ok := impl.cached.Get(impl.idKey(id)); ok {
		if account, ok := i.(*Account); ok {
			impl.cached.Delete(impl.emailKey(account.Email))
		}
	}

	impl.cached.Delete(impl.idKey(id))
}

func (impl *cachedStorageImpl) AddAccount(ctx context.Context, account *Account) (id uint64, err error) {
	id, err = impl.storage.AddAccount(ctx, account)
	if err != nil {
		return
	}

	impl.invalidate(id)

	return
}

func (impl *cachedStorageImpl) GetAccount(ctx context.Context, id uint64) (*Account, error) {
	if account, ok := impl.load(impl.idKey(id)); ok {
		return account, nil
	}

	generation := impl.beginLoad()

	account, err := impl.storage.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	impl.store(account, generation)

	return account, nil
}

func (impl *cachedStorageImpl) FindAccountByEmail(ctx context.Context, email string) (*Account, error) {
	if account, ok := impl.load(impl.emailKey(email)); ok {
		return account, nil
	}

	generation := impl.beginLoad()

	account, err := impl.storage.FindAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	impl.store(account, generation)

	return account, nil
}

func (impl *cachedStorageImpl) SetBalance(ctx context.Context, id uint64, balance decimal.Decimal) error {
	impl.invalidate(id)
	defer impl.invalidate(id)

	err := impl.storage.SetBalance(ctx, id, balance)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.UInt64Field("id", id)).Error("set balance failed")
	}

	return err
}

func (impl *cachedStorageImpl) ListAccounts(ctx context.Context, createdAtStart, createdAtFinish time.Time) ([]*Account, error) {
	return impl.storage.ListAccounts(ctx, createdAtStart, createdAtFinish)
}

func (impl *cachedStorageImpl) HasAccount(ctx context.Context) (bool, error) {
	return impl.storage.HasAccount(ctx)
}

//
//
//

// NewStorageProvider supplies the account stored under id. Lookup failures are logged and
// reported as an absent account. The supplied account is a copy: changing it, e.g. with Deposit,
// does not touch storage; use DepositToStorage for that.
func NewStorageProvider(ctx context.Context, storage Storage, id uint64, logger l.Wrapper) Provider {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "storageProvider"))

	return ProviderFunc(func() optional.Optional[*Account] {
		account, err := storage.GetAccount(ctx, id)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.UInt64Field("id", id)).Debug("no account")

			return optional.Empty[*Account]()
		}

		return optional.Of(account)
	})
}

// DepositToStorage adds amount to the balance of the account stored under id. The read and the
// write are separate storage calls.
func DepositToStorage(ctx context.Context, storage Storage, id uint64, amount decimal.Decimal) error {
	account, err := storage.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	return storage.SetBalance(ctx, id, account.Balance.Add(amount))
}
