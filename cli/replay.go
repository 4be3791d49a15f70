package cli

import (
	"fmt"
	"os"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/roarracing/purepursuit/control"
	"github.com/roarracing/purepursuit/spatialmath"
)

// sample is one recorded pose and the waypoint the planner handed out for it.
type sample struct {
	Location []float64 `json:"location"`
	Rotation []float64 `json:"rotation"`
	Waypoint []float64 `json:"waypoint"`
}

type replayStep struct {
	location r2.Point
	rotation *spatialmath.EulerAngles
	waypoint control.Target
}

// parseSamples decodes a JSON5 list of samples, so recordings may carry comments.
func parseSamples(data []byte) ([]replayStep, error) {
	var samples []sample
	if err := json5.Unmarshal(data, &samples); err != nil {
		return nil, errors.Wrap(err, "unable to parse samples")
	}
	steps := make([]replayStep, 0, len(samples))
	for idx, s := range samples {
		if len(s.Location) != 2 {
			return nil, errors.Errorf("sample %d: location needs 2 elements got %d", idx, len(s.Location))
		}
		if len(s.Waypoint) != 2 {
			return nil, errors.Errorf("sample %d: waypoint needs 2 elements got %d", idx, len(s.Waypoint))
		}
		rotation, err := spatialmath.EulerAnglesFromSlice(s.Rotation)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", idx)
		}
		steps = append(steps, replayStep{
			location: r2.Point{X: s.Location[0], Y: s.Location[1]},
			rotation: rotation,
			waypoint: control.NewTarget(s.Waypoint[0], s.Waypoint[1]),
		})
	}
	return steps, nil
}

func (rt *runtime) replayAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("replay needs exactly one samples file")
	}
	//nolint:gosec
	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	steps, err := parseSamples(data)
	if err != nil {
		return err
	}

	pursuit := rt.controller()
	for _, step := range steps {
		fmt.Fprintf(c.App.Writer, "%.6f\n", pursuit.Run(step.location, step.rotation, step.waypoint))
	}
	rt.logger.Infow("replay done", "samples", len(steps))
	return nil
}
