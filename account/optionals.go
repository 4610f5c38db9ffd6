package account

import (
	"fmt"
	"strings"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libkata/optional"
	"github.com/sgostarter/libkata/query"
	"github.com/shopspring/decimal"
)

// Deposit adds amount to the provided account, if any.
func Deposit(provider Provider, amount decimal.Decimal) {
	provider.GetAccount().IfPresent(func(account *Account) {
		account.Balance = account.Balance.Add(amount)
	})
}

func GetAccountOrDefault(provider Provider, defaultAccount *Account) *Account {
	return provider.GetAccount().OrElse(defaultAccount)
}

func ProcessAccount(provider Provider, service Service) {
	provider.GetAccount().IfPresentOrElse(service.ProcessAccount, service.ProcessWithNoAccount)
}

func GetOrGenerateAccount(provider Provider, generator *Generator) *Account {
	return provider.GetAccount().OrElseGet(generator.Generate)
}

func RetrieveBalance(provider Provider) optional.Optional[decimal.Decimal] {
	return optional.Map(provider.GetAccount(), func(account *Account) decimal.Decimal {
		return account.Balance
	})
}

func GetAccount(provider Provider) (*Account, error) {
	return provider.GetAccount().OrElseErr(func() error {
		return fmt.Errorf("%w: no account provided", commerr.ErrNotFound)
	})
}

func RetrieveCreditBalance(provider CreditProvider) optional.Optional[decimal.Decimal] {
	return optional.Map(provider.GetCreditAccount(), func(account *CreditAccount) decimal.Decimal {
		return account.CreditBalance
	})
}

func RetrieveAccountGmail(provider Provider) optional.Optional[*Account] {
	return provider.GetAccount().Filter(func(account *Account) bool {
		return strings.HasSuffix(strings.ToLower(account.Email), "@gmail.com")
	})
}

func GetAccountWithFallback(provider, fallbackProvider Provider) (*Account, error) {
	if account, ok := provider.GetAccount().Get(); ok {
		return account, nil
	}

	return GetAccount(fallbackProvider)
}

func GetAccountWithMaxBalance(accounts []*Account) (*Account, error) {
	return query.MustMaxBy(accounts, byBalance())
}

func FindMinBalanceValue(accounts []*Account) optional.Optional[float64] {
	return optional.Map(optional.FromPair(query.MinBy(accounts, byBalance())), func(account *Account) float64 {
		return account.Balance.InexactFloat64()
	})
}

func ProcessAccountWithMaxBalance(accounts []*Account, service Service) error {
	account, err := GetAccountWithMaxBalance(accounts)
	if err != nil {
		return err
	}

	service.ProcessAccount(account)

	return nil
}

func CalculateTotalCreditBalance(accounts []*CreditAccount) decimal.Decimal {
	return query.Reduce(accounts, decimal.Zero, func(total decimal.Decimal, account *CreditAccount) decimal.Decimal {
		return total.Add(account.CreditBalance)
	})
}
