package ardrone

// Configuration keys understood by the drone.
const (
	KeyVideoChannel       = "video:video_channel"
	KeyVideoCodec         = "video:video_codec"
	KeyUserboxCmd         = "userbox:userbox_cmd"
	KeyFlightAnim         = "control:flight_anim"
	KeyFlyingCameraEnable = "control:flying_camera_enable"
	KeyFlyingCameraMode   = "control:flying_camera_mode"
)

// Video codecs.
const (
	CodecH264360P        = 0x81
	CodecMP4360PH264720P = 0x82
)

const (
	userboxCmdStop   = 0
	userboxCmdStart  = 1
	recordDateLayout = "20060102_150405"

	cameraModesARDrone1   = 4
	cameraModesARDrone2   = 2
	flightAnimationsCount = 20
)

// LedAnimation is an LED pattern id of the SDK.
type LedAnimation int

const (
	LedBlinkGreenRed LedAnimation = iota
	LedBlinkGreen
	LedBlinkRed
	LedBlinkOrange
	LedSnakeGreenRed
	LedFire
	LedStandard
	LedRed
	LedGreen
	LedRedSnake
	LedBlank
	LedRightMissile
	LedLeftMissile
	LedDoubleMissile
	LedFrontLeftGreenOthersRed
	LedFrontRightGreenOthersRed
	LedRearRightGreenOthersRed
	LedRearLeftGreenOthersRed
	LedLeftGreenRightRed
	LedLeftRedRightGreen
	LedBlinkStandard
)

// ledAnimations maps the service's animation type onto SDK ids.
var ledAnimations = [...]LedAnimation{
	LedBlinkGreenRed, LedBlinkGreen, LedBlinkRed, LedBlinkOrange,
	LedSnakeGreenRed, LedFire, LedStandard, LedRed, LedGreen, LedRedSnake, LedBlank,
	LedLeftGreenRightRed, LedLeftRedRightGreen, LedBlinkStandard,
}

// flightAnimationTimeouts are the default durations in ms, indexed by animation type.
var flightAnimationTimeouts = [flightAnimationsCount]uint32{
	1000, // phi -30 deg
	1000, // phi 30 deg
	1000, // theta -30 deg
	1000, // theta 30 deg
	1000, // theta 20 deg, yaw 200 deg
	1000, // theta 20 deg, yaw -200 deg
	5000, // turnaround
	5000, // turnaround go down
	2000, // yaw shake
	5000, // yaw dance
	5000, // phi dance
	5000, // theta dance
	5000, // vz dance
	5000, // wave
	5000, // phi theta mixed
	5000, // double phi theta mixed
	15,   // flip ahead
	15,   // flip behind
	15,   // flip left
	15,   // flip right
}
