// Package config loads application settings from configs/config.yml,
// an optional .env file and OIL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oil_heating/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "OIL"

// Config is the full set of runtime settings.
type Config struct {
	Port  string      `mapstructure:"port"`
	DB    DBConfig    `mapstructure:"db"`
	Log   LogConfig   `mapstructure:"log"`
	Auth  AuthConfig  `mapstructure:"auth"`
	Rate  RateConfig  `mapstructure:"rate"`
	Sweep SweepConfig `mapstructure:"sweep"`

	Defaults models.Inputs `mapstructure:"defaults"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

// RateConfig limits requests per client on the API group.
type RateConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type SweepConfig struct {
	models.PowerRange `mapstructure:",squash"`
	MaxPoints         int    `mapstructure:"max_points"`
	Policy            string `mapstructure:"policy"`
}

var errNoSigningKey = errors.New("auth.signing_key is empty; set it in config or OIL_AUTH_SIGNING_KEY")

// Load reads configuration from dir (config.yml) and the environment.
// A missing config file is not an error; defaults apply.
func Load(dir string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := models.DefaultInputs()

	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "oil_heating.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("rate.rps", 5.0)
	v.SetDefault("rate.burst", 10)

	v.SetDefault("sweep.start", 0.0)
	v.SetDefault("sweep.stop", 1000001.0)
	v.SetDefault("sweep.step", 500.0)
	v.SetDefault("sweep.max_points", 20000)
	v.SetDefault("sweep.policy", "stop")

	v.SetDefault("defaults.pipe.diameter", d.Pipe.Diameter)
	v.SetDefault("defaults.pipe.length", d.Pipe.Length)
	v.SetDefault("defaults.pipe.roughness", d.Pipe.Roughness)
	v.SetDefault("defaults.fluid.density", d.Fluid.Density)
	v.SetDefault("defaults.fluid.viscosity", d.Fluid.Viscosity)
	v.SetDefault("defaults.fluid.thermal_expansion", d.Fluid.ThermalExpansion)
	v.SetDefault("defaults.fluid.heat_capacity", d.Fluid.HeatCapacity)
	v.SetDefault("defaults.fluid.temperature", d.Fluid.Temperature)
	v.SetDefault("defaults.fluid.speed", d.Fluid.Speed)
	v.SetDefault("defaults.heater.power", d.Heater.Power)
	v.SetDefault("defaults.heater.efficiency", d.Heater.Efficiency)
	v.SetDefault("defaults.delta_pressure", d.DeltaPressure)
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return errNoSigningKey
	}
	if c.Rate.RPS <= 0 || c.Rate.Burst <= 0 {
		return fmt.Errorf("rate limits must be positive (rps=%g, burst=%d)", c.Rate.RPS, c.Rate.Burst)
	}
	if c.Sweep.Step <= 0 {
		return fmt.Errorf("sweep.step must be > 0, got %g", c.Sweep.Step)
	}
	return nil
}
