// Package config loads the driver settings: built-in defaults, then an
// optional YAML file, then environment overrides.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the driver configuration.
type Config struct {
	Drone   DroneConfig   `yaml:"drone"`
	Teleop  TeleopConfig  `yaml:"teleop"`
	Navdata NavdataConfig `yaml:"navdata"`
	ROS     ROSConfig     `yaml:"ros"`
}

// DroneConfig selects and addresses the drone.
type DroneConfig struct {
	Backend string `yaml:"backend"` // "bebop" or "sim"
	IP      string `yaml:"ip"`
	Version int    `yaml:"version"` // 1 for the AR.Drone 1 camera layout
}

// TeleopConfig tunes the command debouncer.
type TeleopConfig struct {
	Epsilon float64 `yaml:"epsilon"`
	TickMs  int     `yaml:"tickMs"`
}

// NavdataConfig tunes telemetry publishing.
type NavdataConfig struct {
	RateHz             int  `yaml:"rateHz"`
	DoIMUCalibration   bool `yaml:"doImuCalibration"`
	CalibrationSamples int  `yaml:"calibrationSamples"`
}

// ROSConfig holds the node settings.
type ROSConfig struct {
	NodeName string `yaml:"nodeName"`
	LogLevel string `yaml:"logLevel"` // debug, info, warn, error or fatal
}

// TickPeriod returns the teleop tick interval.
func (c *Config) TickPeriod() time.Duration {
	return time.Duration(c.Teleop.TickMs) * time.Millisecond
}

// NavdataPeriod returns the telemetry poll interval.
func (c *Config) NavdataPeriod() time.Duration {
	return time.Second / time.Duration(c.Navdata.RateHz)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Drone: DroneConfig{
			Backend: "bebop",
			IP:      "192.168.42.1",
			Version: 2,
		},
		Teleop: TeleopConfig{
			Epsilon: 1e-3,
			TickMs:  25,
		},
		Navdata: NavdataConfig{
			RateHz:             15,
			DoIMUCalibration:   false,
			CalibrationSamples: 30,
		},
		ROS: ROSConfig{
			NodeName: "ardrone_driver",
			LogLevel: "info",
		},
	}
}

// Load reads path over the defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "failed to load config from %s", path)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if ip := os.Getenv("ARDRONE_IP"); ip != "" {
		cfg.Drone.IP = ip
	}
	if backend := os.Getenv("ARDRONE_BACKEND"); backend != "" {
		cfg.Drone.Backend = backend
	}
	if tick := os.Getenv("ARDRONE_TICK_MS"); tick != "" {
		if ms, err := strconv.Atoi(tick); err == nil {
			cfg.Teleop.TickMs = ms
		}
	}
}

// Validate checks the ranges of every setting.
func (c *Config) Validate() error {
	switch c.Drone.Backend {
	case "bebop", "sim":
	default:
		return errors.Errorf("invalid drone backend %q, must be bebop or sim", c.Drone.Backend)
	}
	if c.Drone.Version < 1 || c.Drone.Version > 2 {
		return errors.Errorf("invalid drone version %d", c.Drone.Version)
	}
	if c.Teleop.Epsilon <= 0 || c.Teleop.Epsilon >= 1 {
		return errors.Errorf("teleop epsilon %g not in (0, 1)", c.Teleop.Epsilon)
	}
	if c.Teleop.TickMs <= 0 {
		return errors.Errorf("teleop tick %dms must be positive", c.Teleop.TickMs)
	}
	if c.Navdata.RateHz <= 0 || c.Navdata.RateHz > 200 {
		return errors.Errorf("navdata rate %dHz not in (0, 200]", c.Navdata.RateHz)
	}
	if c.Navdata.CalibrationSamples <= 0 {
		return errors.Errorf("calibration samples %d must be positive", c.Navdata.CalibrationSamples)
	}
	if c.ROS.NodeName == "" {
		return errors.New("ros node name is empty")
	}
	switch c.ROS.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return errors.Errorf("invalid log level %q", c.ROS.LogLevel)
	}
	return nil
}
