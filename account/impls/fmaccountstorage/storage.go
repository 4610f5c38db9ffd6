package fmaccountstorage

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libkata/account"
	"github.com/shopspring/decimal"
)

const defaultFileName = "accounts.json"

func NewFMAccountStorage(root string, storage stg.FileStorage, logger l.Wrapper) account.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmAccountStorageImpl{
		logger: logger.WithFields(l.StringField(l.ClsKey, "fmAccountStorageImpl")),
		book: mwf.NewMemWithFile[Book, mwf.Serial, mwf.Lock](
			newBook(), &mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, defaultFileName), storage),
	}
}

type fmAccountStorageImpl struct {
	logger l.Wrapper
	book   *mwf.MemWithFile[Book, mwf.Serial, mwf.Lock]
}

func (impl *fmAccountStorageImpl) AddAccount(_ context.Context, a *account.Account) (id uint64, err error) {
	if a == nil || a.Email == "" {
		err = commerr.ErrInvalidArgument

		return
	}

	err = impl.book.Change(func(old Book) (b Book, err error) {
		b = old
		b.fix()

		n := a.Clone()
		if n.ID == 0 {
			n.ID = snowflake.ID()
		}

		if n.CreationDate.IsZero() {
			n.CreationDate = time.Now()
		}

		if _, ok := b.Accounts[n.ID]; ok {
			err = fmt.Errorf("%w: account id %d", commerr.ErrAlreadyExists, n.ID)

			return
		}

		key := emailKey(n.Email)

		if _, ok := b.Emails[key]; ok {
			err = fmt.Errorf("%w: account email %s", commerr.ErrAlreadyExists, n.Email)

			return
		}

		b.Accounts[n.ID] = n
		b.Emails[key] = n.ID
		id = n.ID

		return
	})
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("email", a.Email)).Error("add account failed")
	}

	return
}

func (impl *fmAccountStorageImpl) GetAccount(_ context.Context, id uint64) (a *account.Account, err error) {
	impl.book.Read(func(b Book) {
		if info, ok := b.Accounts[id]; ok {
			a = info.Clone()
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmAccountStorageImpl) FindAccountByEmail(_ context.Context, email string) (a *account.Account, err error) {
	impl.book.Read(func(b Book) {
		if id, ok := b.Emails[emailKey(email)]; ok {
			if info, ok := b.Accounts[id]; ok {
				a = info.Clone()

				return
			}
		}

		err = commerr.ErrNotFound
	})

	return
}

func (impl *fmAccountStorageImpl) SetBalance(_ context.Context, id uint64, balance decimal.Decimal) error {
	return impl.book.Change(func(old Book) (b Book, err error) {
		b = old
		b.fix()

		info, ok := b.Accounts[id]
		if !ok {
			err = commerr.ErrNotFound

			return
		}

		n := info.Clone()
		n.Balance = balance
		b.Accounts[id] = n

		return
	})
}

// ListAccounts returns the accounts created in [createdAtStart, createdAtFinish), oldest first.
// A zero bound is open.
func (impl *fmAccountStorageImpl) ListAccounts(_ context.Context, createdAtStart,
	createdAtFinish time.Time) (accounts []*account.Account, err error) {
	impl.book.Read(func(b Book) {
		for _, info := range b.Accounts {
			if info.CreationDate.Before(createdAtStart) ||
				(!createdAtFinish.IsZero() && !info.CreationDate.Before(createdAtFinish)) {
				continue
			}

			accounts = append(accounts, info.Clone())
		}
	})

	sort.SliceStable(accounts, func(i, j int) bool {
		if accounts[i].CreationDate.Equal(accounts[j].CreationDate) {
			return accounts[i].ID < accounts[j].ID
		}

		return accounts[i].CreationDate.Before(accounts[j].CreationDate)
	})

	return
}

func (impl *fmAccountStorageImpl) HasAccount(_ context.Context) (has bool, err error) {
	impl.book.Read(func(b Book) {
		has = len(b.Accounts) > 0
	})

	return
}
