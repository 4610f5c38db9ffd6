package account

import (
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libkata/statistic/memdate"
	"github.com/shopspring/decimal"
)

type BalanceTotal struct {
	Count   int             `json:"count" yaml:"count"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// BalanceStatistics totals account balances per email domain and creation period.
type BalanceStatistics struct {
	stat *memdate.Statistics[string, BalanceTotal, *Account]
}

func NewBalanceStatistics(loc *time.Location, fileName string, storage stg.FileStorage, logger l.Wrapper) (*BalanceStatistics, error) {
	stat, err := memdate.NewStatistics[string, BalanceTotal, *Account](
		memdate.CombinerFunc[BalanceTotal, *Account](func(total BalanceTotal, account *Account) BalanceTotal {
			total.Count++
			total.Balance = total.Balance.Add(account.Balance)

			return total
		}), loc, &mwf.JSONSerial{}, fileName, storage, logger)
	if err != nil {
		return nil, err
	}

	return &BalanceStatistics{
		stat: stat,
	}, nil
}

// Add counts all accounts or, when persisting fails, none of them.
func (bs *BalanceStatistics) Add(accounts ...*Account) error {
	entries := make([]memdate.Entry[string, *Account], 0, len(accounts))

	for _, account := range accounts {
		entries = append(entries, memdate.Entry[string, *Account]{
			Key:  account.EmailDomain(),
			At:   account.CreationDate,
			Data: account,
		})
	}

	return bs.stat.AddAll(entries)
}

func (bs *BalanceStatistics) GetOn(emailDomain string, p memdate.Period, at time.Time) BalanceTotal {
	total, _ := bs.stat.GetOn(emailDomain, p, at)

	return total
}

func (bs *BalanceStatistics) EmailDomains() []string {
	return bs.stat.Keys()
}
