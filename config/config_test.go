package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "bebop", cfg.Drone.Backend)
	assert.Equal(t, 1e-3, cfg.Teleop.Epsilon)
	assert.Equal(t, 25*time.Millisecond, cfg.TickPeriod())
	assert.Equal(t, time.Second/15, cfg.NavdataPeriod())
	assert.Equal(t, "ardrone_driver", cfg.ROS.NodeName)
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load("testdata/driver.yaml")
	require.NoError(t, err)

	assert.Equal(t, "sim", cfg.Drone.Backend)
	assert.Equal(t, 1, cfg.Drone.Version)
	// Unset keys keep their defaults.
	assert.Equal(t, "192.168.42.1", cfg.Drone.IP)
	assert.Equal(t, 0.01, cfg.Teleop.Epsilon)
	assert.Equal(t, 40*time.Millisecond, cfg.TickPeriod())
	assert.Equal(t, 30, cfg.Navdata.RateHz)
	assert.True(t, cfg.Navdata.DoIMUCalibration)
	assert.Equal(t, 30, cfg.Navdata.CalibrationSamples)
	assert.Equal(t, "debug", cfg.ROS.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = Load("testdata/unknown.yaml")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ARDRONE_IP", "10.0.0.7")
	t.Setenv("ARDRONE_BACKEND", "sim")
	t.Setenv("ARDRONE_TICK_MS", "50")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", cfg.Drone.IP)
	assert.Equal(t, "sim", cfg.Drone.Backend)
	assert.Equal(t, 50, cfg.Teleop.TickMs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"backend", func(c *Config) { c.Drone.Backend = "ardrone3" }},
		{"version", func(c *Config) { c.Drone.Version = 3 }},
		{"epsilon", func(c *Config) { c.Teleop.Epsilon = 0 }},
		{"tick", func(c *Config) { c.Teleop.TickMs = -1 }},
		{"rate", func(c *Config) { c.Navdata.RateHz = 0 }},
		{"samples", func(c *Config) { c.Navdata.CalibrationSamples = 0 }},
		{"node name", func(c *Config) { c.ROS.NodeName = "" }},
		{"log level", func(c *Config) { c.ROS.LogLevel = "verbose" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
