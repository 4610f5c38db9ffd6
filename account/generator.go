package account

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/shopspring/decimal"
)

type GeneratorConfig struct {
	Seed         int64    `yaml:"seed" json:"seed"`
	EmailDomains []string `yaml:"emailDomains" json:"emailDomains" validate:"omitempty,dive,hostname"`
	MinBalance   int64    `yaml:"minBalance" json:"minBalance" validate:"gte=0"`
	MaxBalance   int64    `yaml:"maxBalance" json:"maxBalance" validate:"gtefield=MinBalance"`
	MinAge       int      `yaml:"minAge" json:"minAge" validate:"gte=0"`
	MaxAge       int      `yaml:"maxAge" json:"maxAge" validate:"gtefield=MinAge,lte=150"`
	CreatedDays  int      `yaml:"createdDays" json:"createdDays" validate:"gte=0"`
}

var (
	generatorFirstNames = []string{
		"John", "Jane", "Adam", "Eve", "Olivia", "Liam", "Emma", "Noah", "Sophia", "Mason",
	}
	generatorLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Wilson", "Taylor",
	}
)

func (cfg *GeneratorConfig) fix() {
	if len(cfg.EmailDomains) == 0 {
		cfg.EmailDomains = []string{"gmail.com", "yahoo.com", "mail.com"}
	}

	if cfg.MaxBalance == 0 {
		cfg.MaxBalance = 200000
	}

	if cfg.MaxAge == 0 {
		cfg.MaxAge = 70
	}

	if cfg.MinAge == 0 {
		cfg.MinAge = 18
	}

	if cfg.CreatedDays == 0 {
		cfg.CreatedDays = 3 * 365
	}
}

// Generator fabricates sample accounts. It is not safe for concurrent use.
type Generator struct {
	cfg GeneratorConfig
	rnd *rand.Rand
	now func() time.Time
}

func NewGenerator(cfg *GeneratorConfig) (*Generator, error) {
	var c GeneratorConfig
	if cfg != nil {
		c = *cfg
	}

	c.fix()

	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %s", commerr.ErrInvalidArgument, err.Error())
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg: c,
		rnd: rand.New(rand.NewSource(seed)), // nolint: gosec
		now: time.Now,
	}, nil
}

func (g *Generator) intBetween(min, max int64) int64 {
	if max <= min {
		return min
	}

	return min + g.rnd.Int63n(max-min+1)
}

func (g *Generator) Generate() *Account {
	firstName := generatorFirstNames[g.rnd.Intn(len(generatorFirstNames))]
	lastName := generatorLastNames[g.rnd.Intn(len(generatorLastNames))]
	id := snowflake.ID()

	now := g.now()
	age := int(g.intBetween(int64(g.cfg.MinAge), int64(g.cfg.MaxAge)))
	birthday := now.AddDate(-age, 0, -g.rnd.Intn(365)).Truncate(24 * time.Hour)

	sex := SexMale
	if g.rnd.Intn(2) == 1 {
		sex = SexFemale
	}

	return &Account{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email: fmt.Sprintf("%s.%s.%d@%s", strings.ToLower(firstName), strings.ToLower(lastName),
			id, g.cfg.EmailDomains[g.rnd.Intn(len(g.cfg.EmailDomains))]),
		Birthday:     birthday,
		Sex:          sex,
		CreationDate: now.AddDate(0, 0, -g.rnd.Intn(g.cfg.CreatedDays+1)),
		Balance:      decimal.New(g.intBetween(g.cfg.MinBalance, g.cfg.MaxBalance), -2),
	}
}

func (g *Generator) GenerateList(size int) []*Account {
	accounts := make([]*Account, 0, size)

	for i := 0; i < size; i++ {
		accounts = append(accounts, g.Generate())
	}

	return accounts
}
