package ardrone_test

import (
	"testing"
	"time"

	"ardrone/ardrone"
	"ardrone/mocks"

	"github.com/benbjohnson/clock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamChannel(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDrone := mocks.NewMockDrone(mockCtrl)
	services := ardrone.NewServices(mockDrone, ardrone.WithDroneVersion(1))

	gomock.InOrder(
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyVideoChannel, "1").Return(nil),
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyVideoChannel, "2").Return(nil),
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyVideoChannel, "3").Return(nil),
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyVideoChannel, "0").Return(nil),
	)

	// AR.Drone 1 has four channels; out of range values wrap.
	ch, err := services.SetCamChannel(5)
	require.NoError(t, err)
	assert.Equal(t, 1, ch)

	for _, want := range []int{2, 3, 0} {
		ch, err = services.ToggleCam()
		require.NoError(t, err)
		assert.Equal(t, want, ch)
	}
	assert.Equal(t, 0, services.CamChannel())
}

func TestCamChannelError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDrone := mocks.NewMockDrone(mockCtrl)
	services := ardrone.NewServices(mockDrone)

	mockDrone.EXPECT().ConfigEvent(ardrone.KeyVideoChannel, "1").Return(errors.New("queue full"))

	// The channel is only updated once the drone accepted it.
	ch, err := services.ToggleCam()
	assert.Error(t, err)
	assert.Equal(t, 0, ch)
	assert.Equal(t, 0, services.CamChannel())
}

func TestSetRecord(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2014, 3, 7, 18, 4, 5, 0, time.Local))

	mockDrone := mocks.NewMockDrone(mockCtrl)
	services := ardrone.NewServices(mockDrone, ardrone.WithServicesClock(mockClock))

	gomock.InOrder(
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyVideoCodec, "130").Return(nil),
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyUserboxCmd, "1,20140307_180405").Return(nil),
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyVideoCodec, "129").Return(nil),
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyUserboxCmd, "0").Return(nil),
	)

	require.NoError(t, services.SetRecord(true))
	require.NoError(t, services.SetRecord(false))
}

func TestSetLedAnimation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDrone := mocks.NewMockDrone(mockCtrl)
	services := ardrone.NewServices(mockDrone)

	gomock.InOrder(
		mockDrone.EXPECT().LedAnimation(ardrone.LedLeftGreenRightRed, float32(2), uint32(3)).Return(nil),
		// 14 wraps to the first pattern.
		mockDrone.EXPECT().LedAnimation(ardrone.LedBlinkGreenRed, float32(1.5), uint32(0)).Return(nil),
	)

	require.NoError(t, services.SetLedAnimation(11, 2, 3))
	require.NoError(t, services.SetLedAnimation(14, -1.5, 0))
}

func TestSetFlightAnimation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDrone := mocks.NewMockDrone(mockCtrl)
	services := ardrone.NewServices(mockDrone)

	gomock.InOrder(
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyFlightAnim, "6,5000").Return(nil),
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyFlightAnim, "16,15").Return(nil),
		mockDrone.EXPECT().ConfigEvent(ardrone.KeyFlightAnim, "0,250").Return(nil),
	)

	require.NoError(t, services.SetFlightAnimation(6, 0))
	require.NoError(t, services.SetFlightAnimation(16, 0))
	require.NoError(t, services.SetFlightAnimation(20, 250))
}

func TestFlatTrimAndAutonomousFlight(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDrone := mocks.NewMockDrone(mockCtrl)
	services := ardrone.NewServices(mockDrone)

	mockDrone.EXPECT().FlatTrim().Return(nil)
	mockDrone.EXPECT().ConfigEvent(ardrone.KeyFlyingCameraEnable, "TRUE").Return(nil)
	mockDrone.EXPECT().ConfigEvent(ardrone.KeyFlyingCameraEnable, "FALSE").Return(nil)

	require.NoError(t, services.FlatTrim())
	require.NoError(t, services.SetAutonomousFlight(true))
	require.NoError(t, services.SetAutonomousFlight(false))
}

func TestSetGPSTarget(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDrone := mocks.NewMockDrone(mockCtrl)
	services := ardrone.NewServices(mockDrone)

	mockDrone.EXPECT().ConfigEvent(ardrone.KeyFlyingCameraMode, "10000,0,484583330,-1234567,2500,500,500,525000,0,0").Return(nil)

	err := services.SetGPSTarget(ardrone.WayPoint{Latitude: 48.458333, Longitude: -0.1234567, Altitude: 2.5})
	require.NoError(t, err)

	// Invalid targets never reach the drone.
	// The error carries the waypoint so one log line at the caller is enough.
	bad := ardrone.WayPoint{ID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), Latitude: 91}
	err = services.SetGPSTarget(bad)
	assert.Equal(t, ardrone.ErrInvalidWaypoint, errors.Cause(err))
	assert.Contains(t, err.Error(), "gps waypoint 6ba7b810-9dad-11d1-80b4-00c04fd430c8")
}

func TestRecalibrateIMU(t *testing.T) {
	services := ardrone.NewServices(nil)
	assert.Equal(t, ardrone.ErrCalibrationDisabled, services.RecalibrateIMU())

	poller := ardrone.NewNavdataPoller(nil, nil, ardrone.WithCalibration(0))
	services = ardrone.NewServices(nil, ardrone.WithRecalibrator(poller))
	assert.NoError(t, services.RecalibrateIMU())
}
