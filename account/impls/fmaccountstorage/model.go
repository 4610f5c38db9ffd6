package fmaccountstorage

import (
	"strings"

	"github.com/sgostarter/libkata/account"
)

// Book is the persisted file content: accounts by id plus the lower-cased email index.
type Book struct {
	Accounts map[uint64]*account.Account `json:"accounts" yaml:"accounts"`
	Emails   map[string]uint64           `json:"emails" yaml:"emails"`
}

func newBook() Book {
	return Book{
		Accounts: make(map[uint64]*account.Account),
		Emails:   make(map[string]uint64),
	}
}

func (b *Book) fix() {
	if b.Accounts == nil {
		b.Accounts = make(map[uint64]*account.Account)
	}

	if b.Emails == nil {
		b.Emails = make(map[string]uint64)
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
