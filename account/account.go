package account

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libkata/optional"
	"github.com/sgostarter/libkata/query"
	"github.com/shopspring/decimal"
)

// Streams answers read-only questions about a fixed list of accounts. Every method is an
// independent pass over the list.
type Streams struct {
	logger   l.Wrapper
	accounts []*Account
}

func NewStreams(accounts []*Account, logger l.Wrapper) *Streams {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Streams{
		logger:   logger.WithFields(l.StringField(l.ClsKey, "accountStreams")),
		accounts: accounts,
	}
}

func byBalance() query.Comparator[*Account] {
	return query.ComparingFunc(func(a *Account) decimal.Decimal {
		return a.Balance
	}, decimal.Decimal.Cmp)
}

func byFirstAndLastNames() query.Comparator[*Account] {
	return query.Comparing(func(a *Account) string {
		return a.FirstName
	}).ThenComparing(query.Comparing(func(a *Account) string {
		return a.LastName
	}))
}

func (s *Streams) FindRichestPerson() optional.Optional[*Account] {
	return optional.FromPair(query.MaxBy(s.accounts, byBalance()))
}

func (s *Streams) FindAccountsByBirthdayMonth(birthdayMonth time.Month) []*Account {
	return query.Filter(s.accounts, func(a *Account) bool {
		return a.BirthdayMonth() == birthdayMonth
	})
}

func (s *Streams) PartitionMaleAccounts() map[bool][]*Account {
	return query.Partition(s.accounts, func(a *Account) bool {
		return a.Sex == SexMale
	})
}

func (s *Streams) GroupAccountsByEmailDomain() map[string][]*Account {
	return query.GroupBy(s.accounts, (*Account).EmailDomain)
}

func (s *Streams) GetNumOfLettersInFirstAndLastNames() int {
	return query.SumBy(s.accounts, func(a *Account) int {
		return utf8.RuneCountInString(a.FirstName) + utf8.RuneCountInString(a.LastName)
	})
}

func (s *Streams) CalculateTotalBalance() decimal.Decimal {
	return query.Reduce(s.accounts, decimal.Zero, func(total decimal.Decimal, a *Account) decimal.Decimal {
		return total.Add(a.Balance)
	})
}

func (s *Streams) SortByFirstAndLastNames() []*Account {
	return query.SortedBy(s.accounts, byFirstAndLastNames())
}

func (s *Streams) ContainsAccountWithEmailDomain(emailDomain string) bool {
	return query.AnyMatch(s.accounts, func(a *Account) bool {
		return strings.HasSuffix(a.Email, "@"+emailDomain)
	})
}

// FindAccountByEmail matches email case-insensitively. With several matches the first one in
// list order is returned.
func (s *Streams) FindAccountByEmail(email string) (*Account, error) {
	a, err := query.MustFindFirst(s.accounts, func(a *Account) bool {
		return strings.EqualFold(a.Email, email)
	})
	if err != nil {
		return nil, fmt.Errorf("cannot find account by email=%s: %w", email, err)
	}

	return a, nil
}

func (s *Streams) GetBalanceByEmail(email string) (decimal.Decimal, error) {
	a, err := s.FindAccountByEmail(email)
	if err != nil {
		s.logger.WithFields(l.StringField("email", email)).Debug("balance lookup missed")

		return decimal.Zero, err
	}

	return a.Balance, nil
}

// CollectAccountsByID fails with commerr.ErrAlreadyExists when two accounts share an id.
func (s *Streams) CollectAccountsByID() (map[uint64]*Account, error) {
	return query.ToMap(s.accounts, func(a *Account) uint64 {
		return a.ID
	}, func(a *Account) *Account {
		return a
	})
}

func (s *Streams) CollectBalancesByEmailForAccountsCreatedOn(year int) (map[string]decimal.Decimal, error) {
	return query.ToMap(query.Filter(s.accounts, func(a *Account) bool {
		return a.CreationDate.Year() == year
	}), func(a *Account) string {
		return a.Email
	}, func(a *Account) decimal.Decimal {
		return a.Balance
	})
}

func (s *Streams) GroupFirstNamesByLastNames() map[string]query.Set[string] {
	return query.GroupBySet(s.accounts, func(a *Account) string {
		return a.LastName
	}, func(a *Account) string {
		return a.FirstName
	})
}

func (s *Streams) GroupCommaSeparatedFirstNamesByBirthdayMonth() map[time.Month]string {
	return query.GroupByJoin(s.accounts, (*Account).BirthdayMonth, func(a *Account) string {
		return a.FirstName
	}, ", ")
}

func (s *Streams) GroupTotalBalanceByCreationMonth() map[time.Month]decimal.Decimal {
	return query.GroupByReduce(s.accounts, (*Account).CreationMonth, decimal.Zero,
		func(total decimal.Decimal, a *Account) decimal.Decimal {
			return total.Add(a.Balance)
		})
}

func (s *Streams) GetCharacterFrequencyInFirstNames() map[rune]int64 {
	return query.Frequency(s.accounts, func(a *Account) []rune {
		return []rune(a.FirstName)
	})
}

// GetCharacterFrequencyIgnoreCaseInFirstAndLastNames counts lower-cased letters of both names,
// for accounts whose first and last names are at least nameLengthBound long.
func (s *Streams) GetCharacterFrequencyIgnoreCaseInFirstAndLastNames(nameLengthBound int) map[rune]int64 {
	return query.Frequency(query.Filter(s.accounts, func(a *Account) bool {
		return utf8.RuneCountInString(a.FirstName) >= nameLengthBound &&
			utf8.RuneCountInString(a.LastName) >= nameLengthBound
	}), func(a *Account) []rune {
		return []rune(strings.ToLower(a.FirstName + a.LastName))
	})
}
