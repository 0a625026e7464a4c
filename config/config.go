package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/spf13/viper"

	"github.com/smartcontractkit/tally-calldata/tally"
)

// TallyConfig is the configuration for the Tally API.
//
// WARNING: This data type contains sensitive fields and should not be logged or set in file
// configuration.
type TallyConfig struct {
	APIURL     string `mapstructure:"api_url" yaml:"api_url"`         // The GraphQL endpoint
	APIKey     string `mapstructure:"api_key" yaml:"api_key"`         // Secret: The Tally API key
	GovernorID string `mapstructure:"governor_id" yaml:"governor_id"` // CAIP-10 governor id, e.g. eip155:1:0x323A...
}

// LogConfig is the configuration for the runtime logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // zap level name: debug, info, warn, error
}

// Config wraps the entire configuration for the tool.
type Config struct {
	Tally TallyConfig `mapstructure:"tally" yaml:"tally"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// Validate checks that the configuration can serve a fetch of variant v. The API key is always
// required; the governor id only for proposals addressed by onchain id.
func (c *Config) Validate(v tally.Variant) error {
	var missing []string

	if c.Tally.APIKey == "" {
		missing = append(missing, "tally.api_key (TALLY_API_KEY)")
	}
	if v.RequiresGovernor() && c.Tally.GovernorID == "" {
		missing = append(missing, "tally.governor_id (TALLY_GOVERNOR_ID)")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}

	if c.Tally.GovernorID != "" {
		if err := validateGovernorID(c.Tally.GovernorID); err != nil {
			return err
		}
	}

	return nil
}

// GovernorChainName returns the name of the EVM chain the configured governor lives on.
func (c TallyConfig) GovernorChainName() (string, error) {
	if err := validateGovernorID(c.GovernorID); err != nil {
		return "", err
	}
	chainID := strings.Split(c.GovernorID, ":")[1]

	details, err := chainsel.GetChainDetailsByChainIDAndFamily(chainID, chainsel.FamilyEVM)
	if err != nil {
		return "", fmt.Errorf("governor id %q: %w", c.GovernorID, err)
	}

	return details.ChainName, nil
}

// validateGovernorID checks the CAIP-10 form eip155:<chain id>:0x<20 byte address>.
func validateGovernorID(id string) error {
	parts := strings.Split(id, ":")
	if len(parts) != 3 || parts[0] != "eip155" {
		return fmt.Errorf("invalid governor id %q: expected eip155:<chain id>:<address>", id)
	}
	if _, err := strconv.ParseUint(parts[1], 10, 64); err != nil {
		return fmt.Errorf("invalid governor id %q: bad chain id: %w", id, err)
	}
	if !strings.HasPrefix(parts[2], "0x") || !common.IsHexAddress(parts[2]) {
		return fmt.Errorf("invalid governor id %q: %q is not a 20 byte hex address", id, parts[2])
	}

	return nil
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
			}
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	return Load("")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("tally.api_url", tally.DefaultAPIURL)
	v.SetDefault("log.level", "info")

	return v
}

var (
	// envBindings maps config keys to the environment variables that can provide them. The first
	// name is preferred; later names are the variables the original scripts' users exported.
	envBindings = map[string][]string{
		"tally.api_url":     {"TALLY_API_URL"},
		"tally.api_key":     {"TALLY_API_KEY", "TALLY_KEY"},
		"tally.governor_id": {"TALLY_GOVERNOR_ID", "ENS_GOVERNOR_ID"},
		"log.level":         {"LOG_LEVEL"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
