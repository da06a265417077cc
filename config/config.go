package config

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Setting is the policy applied to a soft situation.
type Setting int

//go:generate go tool stringer -linecomment -type=Setting
const (
	SETTING_ERROR  = Setting(0) // error
	SETTING_WARN   = Setting(1) // warn
	SETTING_IGNORE = Setting(2) // ignore
)

// Situation is a class of soft violation that the policy decides on.
type Situation int

//go:generate go tool stringer -linecomment -type=Situation
const (
	SITUATION_OMITTED_OPERAND  = Situation(0) // omitted-operand
	SITUATION_TRAILING_OPERAND = Situation(1) // trailing-operand
	SITUATION_ADDRESS_OFFSET   = Situation(2) // address-offset
)

const (
	BANK_UNSET       = -1  // No register bank selected.
	BANK_MAXIMUM     = 3   // Highest register bank.
	DEFAULT_MAX_PASS = 32  // Default cap on re-layout passes.
	DEFAULT_HEX_SIZE = 16  // Default Intel HEX record payload.
	MAXIMUM_HEX_SIZE = 255 // Largest Intel HEX record payload.
)

// Switch names that are not situations.
const (
	SWITCH_REGISTER_BANK = "register-bank"
	SWITCH_MAX_PASSES    = "max-passes"
	SWITCH_RECORD_SIZE   = "record-size"
	SWITCH_LANGUAGE      = "language"
)

// Config for a single assembler run.
type Config struct {
	Policy       map[Situation]Setting // Soft situation policy.
	RegisterBank int                   // Register bank 0..3, or BANK_UNSET.
	MaxPasses    int                   // Cap on re-layout passes.
	RecordSize   int                   // Intel HEX record payload size.
	Language     string                // BCP 47 tag for messages, empty for the system locale.
}

var defaultPolicy = map[Situation]Setting{
	SITUATION_OMITTED_OPERAND:  SETTING_IGNORE,
	SITUATION_TRAILING_OPERAND: SETTING_WARN,
	SITUATION_ADDRESS_OFFSET:   SETTING_WARN,
}

// New returns a configuration with the default policy.
func New() *Config {
	return &Config{
		Policy:       maps.Clone(defaultPolicy),
		RegisterBank: BANK_UNSET,
		MaxPasses:    DEFAULT_MAX_PASS,
		RecordSize:   DEFAULT_HEX_SIZE,
	}
}

// Setting returns the policy for a situation.
func (cfg *Config) Setting(situation Situation) Setting {
	if cfg == nil {
		return defaultPolicy[situation]
	}
	setting, ok := cfg.Policy[situation]
	if !ok {
		setting = defaultPolicy[situation]
	}

	return setting
}

// Bank returns the configured register bank, and if one is configured.
func (cfg *Config) Bank() (bank int, ok bool) {
	if cfg == nil || cfg.RegisterBank == BANK_UNSET {
		return
	}

	return cfg.RegisterBank, true
}

// ParseSetting parses 'error', 'warn' or 'ignore'.
func ParseSetting(value string) (setting Setting, err error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for setting = SETTING_ERROR; setting <= SETTING_IGNORE; setting++ {
		if setting.String() == value {
			return
		}
	}

	err = ErrSettingInvalid(value)
	return
}

// ParseSituation parses a situation switch name.
func ParseSituation(name string) (situation Situation, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for situation = SITUATION_OMITTED_OPERAND; situation <= SITUATION_ADDRESS_OFFSET; situation++ {
		if situation.String() == name {
			return
		}
	}

	err = ErrSwitchUnknown(name)
	return
}

// Set a named string switch.
func (cfg *Config) Set(name, value string) (err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)

	switch name {
	case SWITCH_REGISTER_BANK:
		if strings.EqualFold(value, "unset") || strings.EqualFold(value, "none") {
			cfg.RegisterBank = BANK_UNSET
			return
		}
		var bank int
		bank, err = strconv.Atoi(value)
		if err != nil || bank < 0 || bank > BANK_MAXIMUM {
			err = ErrBankInvalid(value)
			return
		}
		cfg.RegisterBank = bank
	case SWITCH_MAX_PASSES:
		var passes int
		passes, err = strconv.Atoi(value)
		if err != nil || passes < 1 {
			err = ErrValueInvalid{Switch: name, Value: value}
			return
		}
		cfg.MaxPasses = passes
	case SWITCH_RECORD_SIZE:
		var size int
		size, err = strconv.Atoi(value)
		if err != nil || size < 1 || size > MAXIMUM_HEX_SIZE {
			err = ErrValueInvalid{Switch: name, Value: value}
			return
		}
		cfg.RecordSize = size
	case SWITCH_LANGUAGE:
		cfg.Language = value
	default:
		var situation Situation
		situation, err = ParseSituation(name)
		if err != nil {
			return
		}
		var setting Setting
		setting, err = ParseSetting(value)
		if err != nil {
			return
		}
		if cfg.Policy == nil {
			cfg.Policy = maps.Clone(defaultPolicy)
		}
		cfg.Policy[situation] = setting
	}

	return
}

// Load applies the switches from a TOML document on top of the current
// configuration. Keys are switch names; values are strings or integers.
//
//	omitted-operand = "warn"
//	register-bank = 0
func (cfg *Config) Load(r io.Reader) (err error) {
	var doc map[string]any
	_, err = toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		err = &ErrLoad{Err: err}
		return
	}

	for _, name := range slices.Sorted(maps.Keys(doc)) {
		var value string
		switch v := doc[name].(type) {
		case string:
			value = v
		case int64:
			value = strconv.FormatInt(v, 10)
		case bool:
			value = strconv.FormatBool(v)
		default:
			err = ErrValueInvalid{Switch: name, Value: fmt.Sprint(v)}
			return
		}
		err = cfg.Set(name, value)
		if err != nil {
			return
		}
	}

	return
}
