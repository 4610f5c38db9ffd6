package account

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libkata/statistic/memdate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type utMemStorage struct {
	accounts map[uint64]*Account
	gets     int
}

func newUTMemStorage() *utMemStorage {
	return &utMemStorage{
		accounts: make(map[uint64]*Account),
	}
}

func (s *utMemStorage) AddAccount(_ context.Context, account *Account) (uint64, error) {
	if _, ok := s.accounts[account.ID]; ok {
		return 0, commerr.ErrAlreadyExists
	}

	s.accounts[account.ID] = account.Clone()

	return account.ID, nil
}

func (s *utMemStorage) GetAccount(_ context.Context, id uint64) (*Account, error) {
	s.gets++

	a, ok := s.accounts[id]
	if !ok {
		return nil, commerr.ErrNotFound
	}

	return a.Clone(), nil
}

func (s *utMemStorage) FindAccountByEmail(_ context.Context, email string) (*Account, error) {
	s.gets++

	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			return a.Clone(), nil
		}
	}

	return nil, commerr.ErrNotFound
}

func (s *utMemStorage) SetBalance(_ context.Context, id uint64, balance decimal.Decimal) error {
	a, ok := s.accounts[id]
	if !ok {
		return commerr.ErrNotFound
	}

	a.Balance = balance

	return nil
}

func (s *utMemStorage) ListAccounts(_ context.Context, createdAtStart, createdAtFinish time.Time) ([]*Account, error) {
	var accounts []*Account

	for _, a := range s.accounts {
		if !a.CreationDate.Before(createdAtStart) && a.CreationDate.Before(createdAtFinish) {
			accounts = append(accounts, a.Clone())
		}
	}

	return accounts, nil
}

func (s *utMemStorage) HasAccount(_ context.Context) (bool, error) {
	return len(s.accounts) > 0, nil
}

func TestGenerator(t *testing.T) {
	g, err := NewGenerator(&GeneratorConfig{
		Seed:         42,
		EmailDomains: []string{"ukr.net"},
		MinBalance:   100,
		MaxBalance:   200,
	})
	require.Nil(t, err)

	accounts := g.GenerateList(50)
	assert.Len(t, accounts, 50)

	ids := make(map[uint64]struct{})

	for _, a := range accounts {
		ids[a.ID] = struct{}{}

		assert.EqualValues(t, "ukr.net", a.EmailDomain())
		assert.True(t, a.Balance.GreaterThanOrEqual(decimal.NewFromInt(1)))
		assert.True(t, a.Balance.LessThanOrEqual(decimal.NewFromInt(2)))
		assert.NotEmpty(t, a.FirstName)
		assert.NotEqual(t, SexUnknown, a.Sex)
		assert.False(t, a.CreationDate.After(time.Now()))
		assert.True(t, a.Birthday.Before(a.CreationDate) || a.Birthday.Before(time.Now()))
	}

	assert.Len(t, ids, 50)

	g, err = NewGenerator(nil)
	require.Nil(t, err)
	assert.NotNil(t, g.Generate())

	_, err = NewGenerator(&GeneratorConfig{MinBalance: 10, MaxBalance: 5})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = NewGenerator(&GeneratorConfig{EmailDomains: []string{"not a domain"}})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestCachedStorage(t *testing.T) {
	ctx := context.Background()
	mem := newUTMemStorage()
	storage := NewCachedStorage(mem, time.Minute, nil)

	for _, a := range utAccounts() {
		_, err := storage.AddAccount(ctx, a)
		assert.Nil(t, err)
	}

	_, err := storage.AddAccount(ctx, utAccounts()[0])
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))

	a, err := storage.GetAccount(ctx, 2)
	assert.Nil(t, err)
	assert.EqualValues(t, "Olivia", a.FirstName)

	a.FirstName = "Changed"

	a, err = storage.GetAccount(ctx, 2)
	assert.Nil(t, err)
	assert.EqualValues(t, "Olivia", a.FirstName)
	assert.EqualValues(t, 1, mem.gets)

	a, err = storage.FindAccountByEmail(ctx, "CARDENAS@mail.com")
	assert.Nil(t, err)
	assert.EqualValues(t, 2, a.ID)
	assert.EqualValues(t, 1, mem.gets)

	assert.Nil(t, storage.SetBalance(ctx, 2, decimal.NewFromInt(5)))

	a, err = storage.GetAccount(ctx, 2)
	assert.Nil(t, err)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(5)))
	assert.EqualValues(t, 2, mem.gets)

	a, err = storage.FindAccountByEmail(ctx, "cardenas@mail.com")
	assert.Nil(t, err)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(5)))

	_, err = storage.GetAccount(ctx, 100)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	err = storage.SetBalance(ctx, 100, decimal.Zero)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	accounts, err := storage.ListAccounts(ctx, utDate(2014, time.January, 1), utDate(2017, time.January, 1))
	assert.Nil(t, err)
	assert.Len(t, accounts, 2)

	has, err := storage.HasAccount(ctx)
	assert.Nil(t, err)
	assert.True(t, has)
}

type utBlockingStorage struct {
	*utMemStorage

	block   bool
	loaded  chan struct{}
	release chan struct{}
}

func (s *utBlockingStorage) GetAccount(ctx context.Context, id uint64) (*Account, error) {
	a, err := s.utMemStorage.GetAccount(ctx, id)

	if s.block {
		s.block = false
		s.loaded <- struct{}{}
		<-s.release
	}

	return a, err
}

func TestCachedStorageWriteDuringLoad(t *testing.T) {
	ctx := context.Background()
	mem := newUTMemStorage()

	_, err := mem.AddAccount(ctx, &Account{ID: 1, Email: "a@b.com", Balance: decimal.NewFromInt(10)})
	require.Nil(t, err)

	backing := &utBlockingStorage{
		utMemStorage: mem,
		block:        true,
		loaded:       make(chan struct{}),
		release:      make(chan struct{}),
	}
	storage := NewCachedStorage(backing, time.Minute, nil)

	type result struct {
		a   *Account
		err error
	}

	done := make(chan result, 1)

	go func() {
		a, e := storage.GetAccount(ctx, 1)
		done <- result{a, e}
	}()

	<-backing.loaded
	assert.Nil(t, storage.SetBalance(ctx, 1, decimal.NewFromInt(99)))
	close(backing.release)

	r := <-done
	assert.Nil(t, r.err)
	assert.True(t, r.a.Balance.Equal(decimal.NewFromInt(10)))

	a, err := storage.GetAccount(ctx, 1)
	assert.Nil(t, err)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(99)))

	a, err = storage.FindAccountByEmail(ctx, "a@b.com")
	assert.Nil(t, err)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(99)))
}

func TestStorageProvider(t *testing.T) {
	ctx := context.Background()
	mem := newUTMemStorage()

	_, err := mem.AddAccount(ctx, utAccounts()[0])
	require.Nil(t, err)

	a, err := GetAccount(NewStorageProvider(ctx, mem, 1, nil))
	assert.Nil(t, err)
	assert.EqualValues(t, "Justin", a.FirstName)

	_, err = GetAccount(NewStorageProvider(ctx, mem, 2, nil))
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	Deposit(NewStorageProvider(ctx, mem, 1, nil), decimal.NewFromInt(5))

	a, err = mem.GetAccount(ctx, 1)
	assert.Nil(t, err)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(172966)))

	assert.Nil(t, DepositToStorage(ctx, NewCachedStorage(mem, time.Minute, nil), 1, decimal.NewFromInt(5)))

	a, err = mem.GetAccount(ctx, 1)
	assert.Nil(t, err)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(172971)))

	err = DepositToStorage(ctx, mem, 2, decimal.NewFromInt(5))
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestBalanceStatistics(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "balances.json")

	bs, err := NewBalanceStatistics(time.UTC, fileName, nil, nil)
	require.Nil(t, err)

	accounts := utAccounts()
	accounts = append(accounts, &Account{
		ID: 5, Email: "x@gmail.com", CreationDate: utDate(2016, time.May, 2), Balance: decimal.RequireFromString("0.5"),
	})

	assert.Nil(t, bs.Add(accounts...))
	assert.ElementsMatch(t, []string{"gmail.com", "mail.com", "yahoo.com"}, bs.EmailDomains())

	bs, err = NewBalanceStatistics(time.UTC, fileName, nil, nil)
	require.Nil(t, err)

	total := bs.GetOn("gmail.com", memdate.PeriodYear, utDate(2016, time.December, 31))
	assert.EqualValues(t, 2, total.Count)
	assert.True(t, total.Balance.Equal(decimal.RequireFromString("172966.5")))

	total = bs.GetOn("gmail.com", memdate.PeriodQuarter, utDate(2016, time.June, 1))
	assert.EqualValues(t, 2, total.Count)

	total = bs.GetOn("gmail.com", memdate.PeriodMonth, utDate(2016, time.May, 20))
	assert.EqualValues(t, 1, total.Count)

	total = bs.GetOn("gmail.com", memdate.PeriodDay, utDate(2011, time.March, 10))
	assert.True(t, total.Balance.Equal(decimal.NewFromInt(13889)))

	total = bs.GetOn("mail.com", memdate.PeriodYear, utDate(2016, time.April, 17))
	assert.EqualValues(t, 0, total.Count)
}

func TestBalanceStatisticsAllOrNothing(t *testing.T) {
	fileName := t.TempDir()

	bs, err := NewBalanceStatistics(time.UTC, fileName, nil, nil)
	require.Nil(t, err)

	assert.NotNil(t, bs.Add(utAccounts()...))
	assert.Empty(t, bs.EmailDomains())

	total := bs.GetOn("gmail.com", memdate.PeriodYear, utDate(2016, time.April, 17))
	assert.EqualValues(t, 0, total.Count)
}
