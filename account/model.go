package account

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	}

	return "unknown"
}

type Account struct {
	ID           uint64          `json:"id" yaml:"id"`
	FirstName    string          `json:"firstName" yaml:"firstName"`
	LastName     string          `json:"lastName" yaml:"lastName"`
	Email        string          `json:"email" yaml:"email"`
	Birthday     time.Time       `json:"birthday" yaml:"birthday"`
	Sex          Sex             `json:"sex" yaml:"sex"`
	CreationDate time.Time       `json:"creationDate" yaml:"creationDate"`
	Balance      decimal.Decimal `json:"balance" yaml:"balance"`
}

func (a *Account) BirthdayMonth() time.Month {
	return a.Birthday.Month()
}

func (a *Account) CreationMonth() time.Month {
	return a.CreationDate.Month()
}

// EmailDomain returns the part of the email between the first "@" and the next one (or the end),
// or "" when there is no "@".
func (a *Account) EmailDomain() string {
	parts := strings.Split(a.Email, "@")
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}

func (a *Account) Clone() *Account {
	c := *a

	return &c
}

type CreditAccount struct {
	Account

	CreditBalance decimal.Decimal `json:"creditBalance" yaml:"creditBalance"`
}
