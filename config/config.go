package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"cpu-scheduler-simulator/internal/schedulers"
)

type TracingConfig struct {
	Enabled    bool
	OutputFile string
}

type SchedulerConfig struct {
	Port          int
	DefaultPolicy schedulers.Policy
	// ReorderOnFCFS stores the arrival-sorted order back into a session's
	// registry after each FCFS run.
	ReorderOnFCFS bool
	Tracing       TracingConfig
}

// SimulatorOptions returns the options every session simulator is created with.
func (c *SchedulerConfig) SimulatorOptions() schedulers.Options {
	return schedulers.Options{ReorderOnFCFS: c.ReorderOnFCFS}
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits on an invalid file.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		if config, err = Load(""); err != nil {
			log.Fatalln(err)
		}
	})
	return config
}

// Load reads the config file at path, or config.yaml from the working
// directory when path is empty. A missing default file yields defaults.
// SCHEDSIM_* environment variables override file values.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.default_policy", string(schedulers.PolicyFirstComeFirstServe))
	v.SetDefault("scheduler.fcfs.reorder_registry", true)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output_file", "")
	v.SetEnvPrefix("SCHEDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	policy, err := schedulers.ParsePolicy(v.GetString("scheduler.default_policy"))
	if err != nil {
		return nil, fmt.Errorf("scheduler.default_policy: %w", err)
	}
	cfg := &SchedulerConfig{
		Port:          v.GetInt("port"),
		DefaultPolicy: policy,
		ReorderOnFCFS: v.GetBool("scheduler.fcfs.reorder_registry"),
		Tracing: TracingConfig{
			Enabled:    v.GetBool("tracing.enabled"),
			OutputFile: v.GetString("tracing.output_file"),
		},
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}
