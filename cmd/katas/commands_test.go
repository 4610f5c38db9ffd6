package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libkata/numbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(args ...string) (string, error) {
	cmd := newRootCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestBoxCommand(t *testing.T) {
	out, err := runCommand("box")
	assert.Nil(t, err)
	assert.Contains(t, out, "box sum: 444")
	assert.Contains(t, out, "put 3, max 5")
	assert.Contains(t, out, "put 9, max 9")
}

func TestSquaresCommand(t *testing.T) {
	out, err := runCommand("squares", "--from", "5", "--to", "10")
	assert.Nil(t, err)
	assert.Contains(t, out, "sum of squares in [5, 10]: 455")

	_, err = runCommand("squares", "--from", "10", "--to", "5")
	assert.True(t, errors.Is(err, numbers.ErrInvalidRange))
}

func TestPrimesCommand(t *testing.T) {
	out, err := runCommand("primes", "--count", "20")
	assert.Nil(t, err)
	assert.Contains(t, out, "sum of first 20 primes: 639")
	assert.True(t, strings.HasPrefix(out, "2 3 5 7 "))

	_, err = runCommand("primes", "--count", "0")
	assert.NotNil(t, err)
}

func TestAccountsCommand(t *testing.T) {
	root := t.TempDir()
	cfgFile := filepath.Join(root, "katas.yaml")

	require.Nil(t, os.WriteFile(cfgFile, []byte(`
count: 15
storageRoot: `+root+`
lookupEmail: nobody@example.com
generator:
  seed: 7
  emailDomains: [gmail.com, ukr.net]
  minBalance: 100
  maxBalance: 100000
`), 0o600))

	out, err := runCommand("accounts", "--config", cfgFile)
	assert.Nil(t, err)
	assert.Contains(t, out, "accounts: 15")
	assert.Contains(t, out, "richest: ")
	assert.Contains(t, out, "lookup nobody@example.com: ")
	assert.Contains(t, out, "cannot find account by email=nobody@example.com")

	_, err = os.Stat(filepath.Join(root, "accounts.json"))
	assert.Nil(t, err)

	out, err = runCommand("accounts", "--config", cfgFile)
	assert.Nil(t, err)
	assert.Contains(t, out, "accounts: 30")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	assert.Nil(t, err)
	assert.EqualValues(t, 10, cfg.Count)
	assert.EqualValues(t, ".", cfg.StorageRoot)

	cfgFile := filepath.Join(t.TempDir(), "bad.yaml")
	require.Nil(t, os.WriteFile(cfgFile, []byte("count: 0\n"), 0o600))

	_, err = loadConfig(cfgFile)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	require.Nil(t, os.WriteFile(cfgFile, []byte("lookupEmail: not-an-email\n"), 0o600))

	_, err = loadConfig(cfgFile)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}
