package control

import (
	"math"
	"time"

	"github.com/golang/geo/r2"

	"github.com/roarracing/purepursuit/logging"
	"github.com/roarracing/purepursuit/spatialmath"
	"github.com/roarracing/purepursuit/utils"
)

const (
	defaultLookaheadDistance = 10.0
	defaultWheelbase         = 4.7
	defaultSteeringGain      = -1.5
	defaultTimestep          = 0.05
)

// PurePursuitConfig holds the vehicle specific tuning of the steering controller.
// LookaheadDistance and DT are carried for callers but do not enter the steering law.
type PurePursuitConfig struct {
	LookaheadDistance float64 `json:"lookahead_distance"`
	Wheelbase         float64 `json:"wheelbase"`
	Gain              float64 `json:"gain"`
	DT                float64 `json:"dt"`
}

// DefaultPurePursuitConfig returns the tuning used when no attribute overrides it.
func DefaultPurePursuitConfig() PurePursuitConfig {
	return PurePursuitConfig{
		LookaheadDistance: defaultLookaheadDistance,
		Wheelbase:         defaultWheelbase,
		Gain:              defaultSteeringGain,
		DT:                defaultTimestep,
	}
}

// pursuitAttributes distinguishes an absent attribute from an explicit zero.
type pursuitAttributes struct {
	LookaheadDistance *float64 `json:"lookahead_distance"`
	Wheelbase         *float64 `json:"wheelbase"`
	Gain              *float64 `json:"gain"`
	DT                *float64 `json:"dt"`
}

// PurePursuit computes lateral steering commands toward a waypoint. It holds no per call
// state so a single instance can be shared between goroutines.
type PurePursuit struct {
	cfg PurePursuitConfig
}

// NewPurePursuit builds a controller from an arbitrary attribute map. Construction never fails:
// unknown attributes are ignored and attributes that cannot be read as numbers keep their
// defaults. A positive dt overrides the "dt" attribute.
func NewPurePursuit(attrs utils.AttributeMap, dt time.Duration, logger logging.Logger) *PurePursuit {
	cfg := pursuitConfigFromAttributes(attrs, logger)
	if dt > 0 {
		cfg.DT = dt.Seconds()
	}
	logger.Debugw("pure pursuit configured",
		"lookahead_distance", cfg.LookaheadDistance,
		"wheelbase", cfg.Wheelbase,
		"gain", cfg.Gain,
		"dt", cfg.DT,
	)
	return &PurePursuit{cfg: cfg}
}

func pursuitConfigFromAttributes(attrs utils.AttributeMap, logger logging.Logger) PurePursuitConfig {
	cfg := DefaultPurePursuitConfig()
	parsed, err := utils.TransformAttributeMap[*pursuitAttributes](attrs)
	if err != nil {
		logger.Warnw("could not decode pure pursuit attributes, reading them one at a time", "error", err)
		cfg.LookaheadDistance = attrs.Float64("lookahead_distance", cfg.LookaheadDistance)
		cfg.Wheelbase = attrs.Float64("wheelbase", cfg.Wheelbase)
		cfg.Gain = attrs.Float64("gain", cfg.Gain)
		cfg.DT = attrs.Float64("dt", cfg.DT)
		return cfg
	}
	if parsed.LookaheadDistance != nil {
		cfg.LookaheadDistance = *parsed.LookaheadDistance
	}
	if parsed.Wheelbase != nil {
		cfg.Wheelbase = *parsed.Wheelbase
	}
	if parsed.Gain != nil {
		cfg.Gain = *parsed.Gain
	}
	if parsed.DT != nil {
		cfg.DT = *parsed.DT
	}
	return cfg
}

// Config returns the tuning the controller was built with.
func (pp *PurePursuit) Config() PurePursuitConfig {
	return pp.cfg
}

// LookaheadDistance returns the configured lookahead distance.
func (pp *PurePursuit) LookaheadDistance() float64 {
	return pp.cfg.LookaheadDistance
}

// Timestep returns the configured control period.
func (pp *PurePursuit) Timestep() time.Duration {
	return time.Duration(pp.cfg.DT * float64(time.Second))
}

// Run returns the steering command, in radians, that turns a vehicle at location with the
// given rotation toward next. Only the yaw of rotation is used. A waypoint coincident with
// the vehicle yields 0.
func (pp *PurePursuit) Run(location r2.Point, rotation spatialmath.Orientation, next Waypoint) float64 {
	if next == nil {
		return 0.0
	}
	toWaypoint := next.Location().Sub(location)
	distance := toWaypoint.Norm()
	if distance == 0 {
		return 0.0
	}
	unit := r2.Point{X: toWaypoint.X / distance, Y: toWaypoint.Y / distance}

	alpha := utils.NormalizeRad(math.Atan2(unit.Y, unit.X)) - utils.NormalizeRad(spatialmath.Yaw(rotation))
	return pp.steer(alpha, distance)
}

// steer applies the pure pursuit law to a heading error alpha at the given distance.
func (pp *PurePursuit) steer(alpha, distance float64) float64 {
	return pp.cfg.Gain * math.Atan2(2*pp.cfg.Wheelbase*math.Sin(alpha)/distance, 1.0)
}
