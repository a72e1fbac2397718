// Package config loads the runtime configuration of mempoolwatch from the
// environment, optionally seeded from .env files.
//
// Every setting except the target contract is read from a MEMPOOLWATCH_-prefixed
// variable. The target contract is read from TARGET_CONTRACT_ADDRESS, with
// MEMPOOLWATCH_TARGET_CONTRACT_ADDRESS taking precedence when both are set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/mempoolwatch/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable name.
const envPrefix = "mempoolwatch"

// ErrInvalidConfig is returned when the configuration cannot be loaded or fails validation.
// It is fatal: nothing touches the network until the configuration is valid.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting needed to run a tracking session.
type Config struct {
	// TargetContractAddress is the contract whose incoming pending transactions are collected.
	TargetContractAddress string `envconfig:"TARGET_CONTRACT_ADDRESS" validate:"required,eth_addr"`

	// Node endpoints. The websocket endpoint feeds pending hashes and the HTTP endpoint
	// resolves them.
	NodeWebsocketEndpoint string `split_words:"true" default:"ws://localhost:8546" validate:"required,url"`
	NodeHTTPEndpoint      string `split_words:"true" default:"http://localhost:8545" validate:"required,url"`

	// Pipeline tuning.
	SampleSize        int           `split_words:"true" default:"5" validate:"min=1"`
	ResolverWorkers   int           `split_words:"true" default:"1" validate:"min=1,max=64"`
	ResolveAttempts   uint          `split_words:"true" default:"1" validate:"min=1,max=10"`
	ResolveRetryDelay time.Duration `split_words:"true" default:"200ms"`

	// HTTP transport used to resolve transactions.
	HTTPTimeout  time.Duration `split_words:"true" default:"5s" validate:"gt=0"`
	HTTPRetryMax int           `split_words:"true" default:"2" validate:"min=0"`

	LogLevel string `split_words:"true" default:"info" validate:"oneof=debug info warn error"`

	TelemetryEnabled     bool   `split_words:"true" default:"false"`
	TelemetryServiceName string `split_words:"true" default:"mempoolwatch" validate:"required_if=TelemetryEnabled true"`

	// Optional Redis store used to skip re-announced hashes across runs.
	// An empty address keeps the seen set in memory.
	RedisAddr     string        `split_words:"true" validate:"omitempty,hostname_port"`
	RedisUsername string        `split_words:"true"`
	RedisPassword string        `split_words:"true"`
	RedisDB       int           `split_words:"true" default:"0" validate:"min=0"`
	RedisSeenTTL  time.Duration `split_words:"true" default:"10m" validate:"gt=0"`
}

// TargetAddress returns the target contract as an address.
// It must only be called on a validated Config.
func (c Config) TargetAddress() common.Address {
	return common.HexToAddress(c.TargetContractAddress)
}

// normalize rewrites fields accepted in more than one textual form into their canonical
// form. A target written as 40 hex digits, with or without the 0x prefix, becomes its
// checksummed 0x form.
func normalize(cfg *Config) {
	if common.IsHexAddress(cfg.TargetContractAddress) {
		cfg.TargetContractAddress = common.HexToAddress(cfg.TargetContractAddress).Hex()
	}
}

// Validate checks cfg against its validation rules.
func Validate(cfg Config) error {
	if err := validator.Validate(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Load reads the configuration from the environment and validates it.
//
// envFiles are loaded into the environment first; variables already set are never
// overridden. Without arguments ".env" is used. Missing files are ignored.
//
// Every error returned wraps ErrInvalidConfig.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	normalize(&cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
