/*
* Command ardrone is a ROS driver for Parrot quadcopters.
* It turns cmd_vel and the takeoff/land/reset triggers into drone commands,
* serves the camera, LED, recording and GPS services and publishes navdata.
 */
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"ardrone/ardrone"
	"ardrone/config"
	"ardrone/rosbridge"

	"github.com/akio/rosgo/ros"
	"github.com/golang/glog"
	"go.uber.org/multierr"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	ip := flag.String("ip", "", "drone address, overrides the configuration")
	sim := flag.Bool("sim", false, "fly the simulated drone")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *ip != "" {
		cfg.Drone.IP = *ip
	}
	if *sim {
		cfg.Drone.Backend = ardrone.BackendSimulator
	}

	// Start up ros node.
	node, err := ros.NewNode(cfg.ROS.NodeName, os.Args)
	if err != nil {
		log.Fatalf("failed to start ros node: %v", err)
	}
	defer node.Shutdown()
	node.Logger().SetSeverity(rosbridge.Severity(cfg.ROS.LogLevel))

	eps := rosbridge.FloatParam(node, "~eps", cfg.Teleop.Epsilon)
	doCalibration := rosbridge.BoolParam(node, "~do_imu_caliberation", cfg.Navdata.DoIMUCalibration)

	drone, err := ardrone.Open(cfg.Drone.Backend, cfg.Drone.IP, nil)
	if err != nil {
		log.Fatalf("failed to connect to drone: %v", err)
	}
	if state, err := ardrone.Describe(drone); err == nil {
		log.Printf("Drone: %v", state)
	}

	var bridge *rosbridge.Bridge
	pollerOpts := []ardrone.PollerOption{ardrone.WithPollPeriod(cfg.NavdataPeriod())}
	if doCalibration {
		pollerOpts = append(pollerOpts, ardrone.WithCalibration(cfg.Navdata.CalibrationSamples))
	}
	poller := ardrone.NewNavdataPoller(drone, func(nd ardrone.Navdata) { bridge.PublishNavdata(nd) }, pollerOpts...)

	servicesOpts := []ardrone.ServicesOption{ardrone.WithDroneVersion(cfg.Drone.Version)}
	if doCalibration {
		servicesOpts = append(servicesOpts, ardrone.WithRecalibrator(poller))
	}
	services := ardrone.NewServices(drone, servicesOpts...)
	teleop := ardrone.NewTeleop(drone, ardrone.WithEpsilon(eps), ardrone.WithTickPeriod(cfg.TickPeriod()))

	bridge = rosbridge.NewBridge(node, teleop, services)
	bridge.Register()

	ctx, cancel := context.WithCancel(context.Background())
	setupCloseHandler(cancel)

	var wg sync.WaitGroup
	for _, run := range []func(context.Context) error{teleop.Run, poller.Run} {
		wg.Add(1)
		go func(run func(context.Context) error) {
			defer wg.Done()
			run(ctx)
		}(run)
	}

	log.Printf("Driver running, backend %s, eps %g", cfg.Drone.Backend, teleop.Epsilon())
	bridge.Spin(ctx)
	cancel()
	wg.Wait()

	if err := shutdown(drone); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// setupCloseHandler cancels the driver on SIGINT or SIGTERM.
func setupCloseHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Ctrl+C pressed in Terminal")
		cancel()
	}()
}

// shutdown lands the drone before letting go of it.
func shutdown(drone ardrone.Drone) error {
	return multierr.Combine(drone.Land(), drone.Close())
}
