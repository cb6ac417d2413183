package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config carries every tunable of a scheduling run. The block set is
// configuration rather than a constant so deployments with a different slot
// layout only need a config change.
type Config struct {
	Blocks        []string      `mapstructure:"blocks" validate:"required,min=1,unique"`
	Overflow      float64       `mapstructure:"overflow" validate:"gte=1"`
	Solver        string        `mapstructure:"solver" validate:"oneof=greedy cbc"`
	SolverTimeout time.Duration `mapstructure:"solver_timeout" validate:"gte=0"`
	Output        string        `mapstructure:"output" validate:"required"`
	Data          DataConfig    `mapstructure:"data"`
}

// DataConfig locates the input catalogs: either the four CSV files, or a
// consolidated JSON interchange document which takes precedence when set.
type DataConfig struct {
	Interchange string `mapstructure:"interchange"`
	Courses     string `mapstructure:"courses"`
	Rooms       string `mapstructure:"rooms"`
	Lecturers   string `mapstructure:"lecturers"`
	Requests    string `mapstructure:"requests"`
}

var validate = validator.New()

// Load reads configuration from the given file (or ./blocksched.yaml when
// empty), layered over defaults and BLOCKSCHED_* environment variables. A
// missing config file is not an error; the defaults describe a complete run.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("blocks", []string{"1A", "1B", "2A", "2B", "3A", "3B", "4A", "4B"})
	v.SetDefault("overflow", 1.2)
	v.SetDefault("solver", "greedy")
	v.SetDefault("solver_timeout", time.Duration(0))
	v.SetDefault("output", "schedules.json")
	v.SetDefault("data.courses", "courses.csv")
	v.SetDefault("data.rooms", "rooms.csv")
	v.SetDefault("data.lecturers", "lecturers.csv")
	v.SetDefault("data.requests", "requests.csv")

	v.SetEnvPrefix("BLOCKSCHED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("blocksched")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
