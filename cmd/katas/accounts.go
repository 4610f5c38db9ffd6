package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/sgostarter/libkata/account"
	"github.com/sgostarter/libkata/account/impls/fmaccountstorage"
	"github.com/sgostarter/libkata/statistic/memdate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Count       int                     `yaml:"count" json:"count" validate:"gte=1,lte=100000"`
	StorageRoot string                  `yaml:"storageRoot" json:"storageRoot" validate:"required"`
	LookupEmail string                  `yaml:"lookupEmail" json:"lookupEmail" validate:"omitempty,email"`
	Generator   account.GeneratorConfig `yaml:"generator" json:"generator"`
}

func loadConfig(fileName string) (*Config, error) {
	cfg := &Config{
		Count: 10,
	}

	if fileName != "" {
		d, err := os.ReadFile(fileName)
		if err != nil {
			return nil, err
		}

		if err = yaml.Unmarshal(d, cfg); err != nil {
			return nil, cuserror.NewWithErrorMsg(fmt.Sprintf("invalid config %s: %v", fileName, err))
		}
	}

	if cfg.StorageRoot == "" {
		cfg.StorageRoot = "."
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", commerr.ErrInvalidArgument, err.Error())
	}

	return cfg, nil
}

func newAccountsCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Generate, store and query sample accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}

			return runAccounts(cmd.Context(), cfg, cmd.OutOrStdout(), l.NewConsoleLoggerWrapper())
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "yaml config file")

	return cmd
}

func runAccounts(ctx context.Context, cfg *Config, out io.Writer, logger l.Wrapper) error {
	if ctx == nil {
		ctx = context.Background()
	}

	generator, err := account.NewGenerator(&cfg.Generator)
	if err != nil {
		return err
	}

	storage := account.NewCachedStorage(fmaccountstorage.NewFMAccountStorage(cfg.StorageRoot, nil, logger),
		time.Minute, logger)

	for _, a := range generator.GenerateList(cfg.Count) {
		if _, err = storage.AddAccount(ctx, a); err != nil {
			return err
		}
	}

	accounts, err := storage.ListAccounts(ctx, time.Time{}, time.Now().Add(time.Second))
	if err != nil {
		return err
	}

	streams := account.NewStreams(accounts, logger)

	fmt.Fprintf(out, "accounts: %d\n", len(accounts))
	fmt.Fprintf(out, "total balance: %s\n", streams.CalculateTotalBalance().StringFixed(2))

	streams.FindRichestPerson().IfPresent(func(a *account.Account) {
		fmt.Fprintf(out, "richest: %s %s <%s> %s\n", a.FirstName, a.LastName, a.Email, a.Balance.StringFixed(2))
	})

	byDomain := streams.GroupAccountsByEmailDomain()

	domains := make([]string, 0, len(byDomain))
	for domain := range byDomain {
		domains = append(domains, domain)
	}

	sort.Strings(domains)

	stat, err := account.NewBalanceStatistics(time.Local, "", nil, logger)
	if err != nil {
		return err
	}

	if err = stat.Add(accounts...); err != nil {
		return err
	}

	now := time.Now()

	for _, domain := range domains {
		year := stat.GetOn(domain, memdate.PeriodYear, now)
		fmt.Fprintf(out, "domain %s: %d accounts, %d created this year with %s\n", domain,
			len(byDomain[domain]), year.Count, year.Balance.StringFixed(2))
	}

	if cfg.LookupEmail != "" {
		balance, e := streams.GetBalanceByEmail(cfg.LookupEmail)
		if e != nil {
			fmt.Fprintf(out, "lookup %s: %v\n", cfg.LookupEmail, e)
		} else {
			fmt.Fprintf(out, "lookup %s: %s\n", cfg.LookupEmail, balance.StringFixed(2))
		}
	}

	return nil
}
