package cli

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/urfave/cli/v2"

	"github.com/roarracing/purepursuit/control"
	"github.com/roarracing/purepursuit/spatialmath"
	"github.com/roarracing/purepursuit/utils"
)

func (rt *runtime) controller() *control.PurePursuit {
	return control.NewPurePursuit(rt.cfg.Controller, 0, rt.logger.Sublogger("pure_pursuit"))
}

// angle reads an angle flag as radians.
func angle(c *cli.Context, name string) float64 {
	if c.Bool(flagDegrees) {
		return utils.DegToRad(c.Float64(name))
	}
	return c.Float64(name)
}

func poseFromFlags(c *cli.Context) (r2.Point, *spatialmath.EulerAngles) {
	location := r2.Point{X: c.Float64(flagX), Y: c.Float64(flagY)}
	rotation := &spatialmath.EulerAngles{
		Roll:  angle(c, flagRoll),
		Pitch: angle(c, flagPitch),
		Yaw:   angle(c, flagYaw),
	}
	return location, rotation
}

func printCommand(c *cli.Context, steering float64) {
	if c.Bool(flagDegrees) {
		steering = utils.RadToDeg(steering)
	}
	fmt.Fprintf(c.App.Writer, "%.6f\n", steering)
}

func (rt *runtime) computeAction(c *cli.Context) error {
	location, rotation := poseFromFlags(c)
	waypoint := control.NewTarget(c.Float64(flagWaypointX), c.Float64(flagWaypointY))

	steering := rt.controller().Run(location, rotation, waypoint)
	rt.logger.Debugw("computed steering",
		"location", location,
		"yaw", rotation.Yaw,
		"waypoint", waypoint.Location(),
		"steering", steering,
	)
	printCommand(c, steering)
	return nil
}
