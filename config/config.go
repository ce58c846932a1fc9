package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
)

const DefaultPort = "7777"

// Environment variables read by Load.
const (
	EnvPort             = "BLACKJACK_PORT"
	EnvDecks            = "BLACKJACK_DECKS"
	EnvDealerHitsSoft17 = "BLACKJACK_DEALER_HITS_SOFT_17"
	EnvOfferInsurance   = "BLACKJACK_OFFER_INSURANCE"
	EnvOfferSurrender   = "BLACKJACK_OFFER_SURRENDER"
	EnvSplitOnValue     = "BLACKJACK_SPLIT_ON_VALUE"
	EnvMinBet           = "BLACKJACK_MIN_BET"
	EnvStartingCash     = "BLACKJACK_STARTING_CASH"
	EnvSeed             = "BLACKJACK_SEED"
	EnvLogLevel         = "BLACKJACK_LOG_LEVEL"
)

type Config struct {
	Port     string
	Rules    domain.Rules
	Seed     int64 // 0 shuffles from the clock
	LogLevel slog.Level
}

// Load reads the given .env files, ".env" when none are given, and builds
// the configuration from them and the process environment. The process
// environment wins. A missing default .env file is not an error.
func Load(files ...string) (*Config, error) {
	explicit := len(files) > 0
	if !explicit {
		files = []string{".env"}
	}

	fileEnv := map[string]string{}
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		for k, v := range values {
			if _, ok := fileEnv[k]; !ok {
				fileEnv[k] = v
			}
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	})
}

// FromLookup builds the configuration from lookup, falling back to the
// default rules for every unset variable.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	p := parser{lookup: lookup}
	rules := domain.DefaultRules()

	cfg := &Config{
		Port:     p.str(EnvPort, DefaultPort),
		Seed:     int64(p.integer(EnvSeed, 0)),
		LogLevel: p.level(EnvLogLevel, slog.LevelInfo),
	}

	rules.NumberOfDecks = cards.ClampDecks(p.integer(EnvDecks, rules.NumberOfDecks))
	rules.DealerHitsSoft17 = p.boolean(EnvDealerHitsSoft17, rules.DealerHitsSoft17)
	rules.OfferInsurance = p.boolean(EnvOfferInsurance, rules.OfferInsurance)
	rules.OfferSurrender = p.boolean(EnvOfferSurrender, rules.OfferSurrender)
	rules.SplitOnValue = p.boolean(EnvSplitOnValue, rules.SplitOnValue)
	rules.MinBet = p.integer(EnvMinBet, rules.MinBet)
	rules.StartingCash = p.integer(EnvStartingCash, rules.StartingCash)

	if err := rules.Validate(); err != nil {
		p.errs = append(p.errs, err)
	}
	if err := errors.Join(p.errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.Rules = rules
	return cfg, nil
}

type parser struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (p *parser) value(key string) (string, bool) {
	v, ok := p.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *parser) str(key, fallback string) string {
	if v, ok := p.value(key); ok {
		return v
	}
	return fallback
}

func (p *parser) integer(key string, fallback int) int {
	v, ok := p.value(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not an integer", key, v))
		return fallback
	}
	return n
}

func (p *parser) boolean(key string, fallback bool) bool {
	v, ok := p.value(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not a boolean", key, v))
		return fallback
	}
	return b
}

func (p *parser) level(key string, fallback slog.Level) slog.Level {
	v, ok := p.value(key)
	if !ok {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not a log level", key, v))
		return fallback
	}
	return level
}
