package ardrone

import (
	"github.com/benbjohnson/clock"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Backends accepted by Open.
const (
	BackendBebop     = "bebop"
	BackendSimulator = "sim"
)

// Open connects to a drone on the named backend. ip is ignored by the
// simulator, clk is ignored by the Bebop.
func Open(backend, ip string, clk clock.Clock) (Drone, error) {
	switch backend {
	case BackendBebop:
		b := NewBebop(ip)
		if err := b.Connect(); err != nil {
			return nil, err
		}
		return b, nil

	case BackendSimulator:
		glog.Info("Using the simulated drone")
		return NewSimulator(clk), nil
	}
	return nil, errors.Errorf("unknown drone backend %q", backend)
}

// Describe returns a one-line summary of the drone's current state.
func Describe(t Telemetry) (string, error) {
	nd, err := t.Navdata()
	if err != nil {
		return "", errors.Wrap(err, "navdata")
	}
	return nd.String(), nil
}
