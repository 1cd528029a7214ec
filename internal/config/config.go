// SPDX-License-Identifier: MIT
// Package config manages sirnet configuration using Viper.
//
// Precedence (highest first): explicit Set / bound flags, SIRNET_* environment
// variables, config file, defaults. Keys are dotted; the environment form
// replaces dots with underscores (sim.batch_size → SIRNET_SIM_BATCH_SIZE).
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sirnet/sim"
	"github.com/katalvlaran/sirnet/trajectory"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "SIRNET"

// Keys.
const (
	KeyNodes           = "network.nodes"
	KeyEdgeProbability = "network.edge_probability"
	KeyInitialInfected = "initial.infected_probability"
	KeyDT              = "sim.dt"
	KeySteps           = "sim.steps"
	KeyInfectionP      = "sim.infection_p"
	KeyRecoveryP       = "sim.recovery_p"
	KeyTrajectories    = "sim.trajectories"
	KeyBatchSize       = "sim.batch_size"
	KeySeed            = "sim.seed"
	KeySeeds           = "sim.seeds"
	KeyDispatchRetries = "sim.dispatch_retries"
	KeyWorkers         = "device.workers"
	KeyMaxBatch        = "device.max_batch"
	KeyMemoryBytes     = "device.memory_bytes"
	KeyOutputDir       = "output.dir"
	KeyOutputMode      = "output.mode"
	KeyLogLevel        = "logging.level"
	KeyLogJSON         = "logging.json"
)

// Config wraps a private viper instance.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults taken from sim.DefaultParams.
func NewConfig() *Config {
	v := viper.New()
	d := sim.DefaultParams()

	v.SetDefault(KeyNodes, d.Nodes)
	v.SetDefault(KeyEdgeProbability, d.EdgeProbability)
	v.SetDefault(KeyInitialInfected, d.InitialInfected)

	v.SetDefault(KeyDT, d.DT)
	v.SetDefault(KeySteps, d.Steps)
	v.SetDefault(KeyInfectionP, d.InfectionP)
	v.SetDefault(KeyRecoveryP, d.RecoveryP)
	v.SetDefault(KeyTrajectories, d.Trajectories)
	v.SetDefault(KeyBatchSize, d.BatchSize)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeySeeds, []uint64{})
	v.SetDefault(KeyDispatchRetries, d.DispatchRetries)

	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyMaxBatch, sim.DefaultMaxBatch)
	v.SetDefault(KeyMemoryBytes, sim.DefaultMemoryBytes)

	v.SetDefault(KeyOutputDir, "data")
	v.SetDefault(KeyOutputMode, string(trajectory.ModeNodes))

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile reads a YAML/TOML/JSON file (by extension).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BindFlag binds one flag to key, so a flag set on the command line wins.
func (c *Config) BindFlag(key string, f *pflag.Flag) error {
	if f == nil {
		return fmt.Errorf("config: no flag for %q", key)
	}
	return c.v.BindPFlag(key, f)
}

// Set overrides a key.
func (c *Config) Set(key string, value interface{}) { c.v.Set(key, value) }

// Getters.
func (c *Config) Workers() int { return c.v.GetInt(KeyWorkers) }
func (c *Config) MaxBatch() int { return c.v.GetInt(KeyMaxBatch) }
func (c *Config) MemoryBytes() int64 { return c.v.GetInt64(KeyMemoryBytes) }
func (c *Config) OutputDir() string { return c.v.GetString(KeyOutputDir) }
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogJSON() bool { return c.v.GetBool(KeyLogJSON) }
func (c *Config) OutputModeName() string { return c.v.GetString(KeyOutputMode) }

// OutputMode parses output.mode.
func (c *Config) OutputMode() (trajectory.Mode, error) {
	return trajectory.ParseMode(c.OutputModeName())
}

// Params assembles validated simulation parameters.
func (c *Config) Params() (sim.Params, error) {
	seeds, err := c.seeds()
	if err != nil {
		return sim.Params{}, err
	}
	p := sim.Params{
		Nodes:           c.v.GetInt(KeyNodes),
		EdgeProbability: c.v.GetFloat64(KeyEdgeProbability),
		InitialInfected: c.v.GetFloat64(KeyInitialInfected),
		DT:              c.v.GetFloat64(KeyDT),
		Steps:           c.v.GetInt(KeySteps),
		InfectionP:      c.v.GetFloat64(KeyInfectionP),
		RecoveryP:       c.v.GetFloat64(KeyRecoveryP),
		Trajectories:    c.v.GetInt(KeyTrajectories),
		BatchSize:       c.v.GetInt(KeyBatchSize),
		Seed:            c.v.GetUint64(KeySeed),
		Seeds:           seeds,
		DispatchRetries: c.v.GetInt(KeyDispatchRetries),
	}
	if err = p.Validate(); err != nil {
		return sim.Params{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// seeds decodes sim.seeds from a list (config file) or a comma separated
// string (environment, e.g. SIRNET_SIM_SEEDS="1, 2,3").
func (c *Config) seeds() ([]uint64, error) {
	raw, ok := c.v.Get(KeySeeds).(string)
	if !ok {
		var out []uint64
		if err := c.v.UnmarshalKey(KeySeeds, &out); err != nil {
			return nil, fmt.Errorf("config: %s: %v: %w", KeySeeds, err, sim.ErrInvalidParameter)
		}
		return out, nil
	}
	var out []uint64
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %q: %w", KeySeeds, s, sim.ErrInvalidParameter)
		}
		out = append(out, u)
	}
	return out, nil
}

// Backend builds the CPU backend from device.*.
func (c *Config) Backend() (*sim.CPUBackend, error) {
	if c.Workers() < 1 || c.MaxBatch() < 1 || c.MemoryBytes() < 1 {
		return nil, fmt.Errorf("config: device.workers=%d max_batch=%d memory_bytes=%d: %w",
			c.Workers(), c.MaxBatch(), c.MemoryBytes(), sim.ErrInvalidParameter)
	}
	return sim.NewCPUBackend(
		sim.WithWorkers(c.Workers()),
		sim.WithMaxBatch(c.MaxBatch()),
		sim.WithMemoryBytes(c.MemoryBytes()),
	), nil
}

// CreateLogger creates a zerolog logger based on config, writing to w.
// Console output unless logging.json is set.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	if !c.LogJSON() {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "sirnet").Logger()
}
