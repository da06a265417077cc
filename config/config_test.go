package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg := New()
	assert.Equal(SETTING_IGNORE, cfg.Setting(SITUATION_OMITTED_OPERAND))
	assert.Equal(SETTING_WARN, cfg.Setting(SITUATION_TRAILING_OPERAND))
	assert.Equal(SETTING_WARN, cfg.Setting(SITUATION_ADDRESS_OFFSET))
	assert.Equal(DEFAULT_MAX_PASS, cfg.MaxPasses)
	assert.Equal(DEFAULT_HEX_SIZE, cfg.RecordSize)

	_, ok := cfg.Bank()
	assert.False(ok)

	var none *Config
	assert.Equal(SETTING_WARN, none.Setting(SITUATION_TRAILING_OPERAND))
	_, ok = none.Bank()
	assert.False(ok)
}

func TestSet(t *testing.T) {
	assert := assert.New(t)

	cfg := New()

	assert.NoError(cfg.Set("omitted-operand", "error"))
	assert.Equal(SETTING_ERROR, cfg.Setting(SITUATION_OMITTED_OPERAND))

	assert.NoError(cfg.Set(" Trailing-Operand ", "IGNORE"))
	assert.Equal(SETTING_IGNORE, cfg.Setting(SITUATION_TRAILING_OPERAND))

	assert.NoError(cfg.Set("register-bank", "2"))
	bank, ok := cfg.Bank()
	assert.True(ok)
	assert.Equal(2, bank)

	assert.NoError(cfg.Set("register-bank", "unset"))
	_, ok = cfg.Bank()
	assert.False(ok)

	assert.NoError(cfg.Set("max-passes", "4"))
	assert.Equal(4, cfg.MaxPasses)

	assert.NoError(cfg.Set("record-size", "255"))
	assert.Equal(255, cfg.RecordSize)

	assert.Equal(ErrBankInvalid("4"), cfg.Set("register-bank", "4"))
	assert.Equal(ErrSwitchUnknown("bogus"), cfg.Set("bogus", "warn"))
	assert.Equal(ErrSettingInvalid("loud"), cfg.Set("address-offset", "loud"))
	assert.Equal(ErrValueInvalid{Switch: "record-size", Value: "256"}, cfg.Set("record-size", "256"))
	assert.Equal(ErrValueInvalid{Switch: "max-passes", Value: "0"}, cfg.Set("max-passes", "0"))
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	doc := strings.Join([]string{
		`omitted-operand = "warn"`,
		`address-offset = "ignore"`,
		`register-bank = 1`,
		`max-passes = 8`,
	}, "\n")

	cfg := New()
	assert.NoError(cfg.Load(strings.NewReader(doc)))
	assert.Equal(SETTING_WARN, cfg.Setting(SITUATION_OMITTED_OPERAND))
	assert.Equal(SETTING_IGNORE, cfg.Setting(SITUATION_ADDRESS_OFFSET))
	assert.Equal(1, cfg.RegisterBank)
	assert.Equal(8, cfg.MaxPasses)

	err := cfg.Load(strings.NewReader("this is = = not toml"))
	var errLoad *ErrLoad
	assert.True(errors.As(err, &errLoad))

	err = cfg.Load(strings.NewReader(`trailing-operand = 1.5`))
	assert.Equal(ErrValueInvalid{Switch: "trailing-operand", Value: "1.5"}, err)
}
