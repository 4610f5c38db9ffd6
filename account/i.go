package account

import (
	"context"
	"time"

	"github.com/sgostarter/libkata/optional"
	"github.com/shopspring/decimal"
)

type Provider interface {
	GetAccount() optional.Optional[*Account]
}

type ProviderFunc func() optional.Optional[*Account]

func (fn ProviderFunc) GetAccount() optional.Optional[*Account] {
	return fn()
}

type CreditProvider interface {
	GetCreditAccount() optional.Optional[*CreditAccount]
}

type CreditProviderFunc func() optional.Optional[*CreditAccount]

func (fn CreditProviderFunc) GetCreditAccount() optional.Optional[*CreditAccount] {
	return fn()
}

type Service interface {
	ProcessAccount(account *Account)
	ProcessWithNoAccount()
}

type Storage interface {
	AddAccount(ctx context.Context, account *Account) (id uint64, err error)
	GetAccount(ctx context.Context, id uint64) (*Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*Account, error)
	SetBalance(ctx context.Context, id uint64, balance decimal.Decimal) error
	ListAccounts(ctx context.Context, createdAtStart, createdAtFinish time.Time) ([]*Account, error)
	HasAccount(ctx context.Context) (bool, error)
}
