package redisimpls

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libkata/account"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

func NewRedisAccountStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) account.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "accountsStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &accountsStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type accountsStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *accountsStorage) AddAccount(ctx context.Context, a *account.Account) (id uint64, err error) {
	if a == nil || a.Email == "" {
		err = commerr.ErrInvalidArgument

		return
	}

	n := a.Clone()

	if n.ID == 0 {
		n.ID = snowflake.ID()
	}

	if n.CreationDate.IsZero() {
		n.CreationDate = time.Now()
	}

	d, err := json.Marshal(n)
	if err != nil {
		return
	}

	err = addAccountScript.Run(ctx, impl.redisCli, []string{impl.accountKey(n.ID),
		impl.emailKey(n.Email), impl.createAtKey()}, n.ID, d, n.Balance.String(),
		n.CreationDate.UnixMilli()).Err()
	if err != nil {
		err = impl.scriptErr(err)

		impl.logger.WithFields(l.ErrorField(err), l.StringField("email", n.Email)).Error("add account failed")

		return
	}

	id = n.ID

	return
}

func (impl *accountsStorage) GetAccount(ctx context.Context, id uint64) (a *account.Account, err error) {
	is, err := impl.redisCli.HMGet(ctx, impl.accountKey(id), "data", "balance").Result()
	if err != nil {
		return
	}

	if is[0] == nil {
		err = commerr.ErrNotFound

		return
	}

	a = new(account.Account)

	err = json.Unmarshal([]byte(cast.ToString(is[0])), a)
	if err != nil {
		a = nil

		return
	}

	if is[1] != nil {
		a.Balance, err = decimal.NewFromString(cast.ToString(is[1]))
		if err != nil {
			a = nil

			return
		}
	}

	return
}

func (impl *accountsStorage) FindAccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	id, err := impl.redisCli.Get(ctx, impl.emailKey(email)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return nil, err
	}

	return impl.GetAccount(ctx, id)
}

func (impl *accountsStorage) SetBalance(ctx context.Context, id uint64, balance decimal.Decimal) error {
	err := setBalanceScript.Run(ctx, impl.redisCli, []string{impl.accountKey(id)}, balance.String()).Err()
	if err != nil {
		return impl.scriptErr(err)
	}

	return nil
}

// ListAccounts returns the accounts created in [createdAtStart, createdAtFinish), oldest first.
// A zero bound is open.
func (impl *accountsStorage) ListAccounts(ctx context.Context, createdAtStart,
	createdAtFinish time.Time) (accounts []*account.Account, err error) {
	minS, maxS := "-inf", "+inf"

	if !createdAtStart.IsZero() {
		minS = strconv.FormatInt(createdAtStart.UnixMilli(), 10)
	}

	if !createdAtFinish.IsZero() {
		maxS = "(" + strconv.FormatInt(createdAtFinish.UnixMilli(), 10)
	}

	idSs, err := impl.redisCli.ZRangeByScore(ctx, impl.createAtKey(), &redis.ZRangeBy{
		Min: minS,
		Max: maxS,
	}).Result()
	if err != nil {
		return
	}

	accounts = make([]*account.Account, 0, len(idSs))

	for _, s := range idSs {
		id, e := strconv.ParseUint(s, 10, 64)
		if e != nil {
			impl.logger.WithFields(l.ErrorField(e), l.StringField("id", s)).
				Error("invalid id on create_at table")

			continue
		}

		a, e := impl.GetAccount(ctx, id)
		if e != nil {
			if errors.Is(e, commerr.ErrNotFound) {
				continue
			}

			err = e

			return
		}

		accounts = append(accounts, a)
	}

	return
}

func (impl *accountsStorage) HasAccount(ctx context.Context) (f bool, err error) {
	n, err := impl.redisCli.ZCard(ctx, impl.createAtKey()).Result()
	if err != nil {
		return
	}

	f = n > 0

	return
}

//
//
//

func (impl *accountsStorage) scriptErr(err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, errIDExists), strings.Contains(msg, errEmailExists):
		return fmt.Errorf("%w: %s", commerr.ErrAlreadyExists, msg)
	case strings.Contains(msg, errIDNotExists):
		return fmt.Errorf("%w: %s", commerr.ErrNotFound, msg)
	}

	return err
}

func (impl *accountsStorage) accountKey(id uint64) string {
	return impl.preKey + "aid:" + strconv.FormatUint(id, 10)
}

func (impl *accountsStorage) emailKey(email string) string {
	return impl.preKey + "email:" + strings.ToLower(strings.TrimSpace(email))
}

func (impl *accountsStorage) createAtKey() string {
	return impl.preKey + "accounts:create_at"
}
