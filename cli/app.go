// Package cli contains the steer command line interface.
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/roarracing/purepursuit/config"
	"github.com/roarracing/purepursuit/logging"
)

const (
	// Flags.
	flagConfig    = "config"
	flagDebug     = "debug"
	flagDegrees   = "degrees"
	flagX         = "x"
	flagY         = "y"
	flagRoll      = "roll"
	flagPitch     = "pitch"
	flagYaw       = "yaw"
	flagWaypointX = "wx"
	flagWaypointY = "wy"
	flagInput     = "input"
)

// runtime is what every command needs once global flags have been processed.
type runtime struct {
	cfg    *config.Config
	logger logging.Logger
}

// NewApp returns the steer application writing its results to out.
func NewApp(out io.Writer) *cli.App {
	rt := &runtime{}

	poseFlags := []cli.Flag{
		&cli.Float64Flag{Name: flagX, Usage: "vehicle x position"},
		&cli.Float64Flag{Name: flagY, Usage: "vehicle y position"},
		&cli.Float64Flag{Name: flagRoll, Usage: "vehicle roll"},
		&cli.Float64Flag{Name: flagPitch, Usage: "vehicle pitch"},
		&cli.Float64Flag{Name: flagYaw, Usage: "vehicle yaw"},
	}

	return &cli.App{
		Name:      "steer",
		Usage:     "compute pure pursuit steering commands",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			return rt.setup(c)
		},
		Commands: []*cli.Command{
			{
				Name:  "compute",
				Usage: "compute the steering command for one pose and waypoint",
				Flags: append(append([]cli.Flag{}, poseFlags...),
					&cli.BoolFlag{Name: flagDegrees, Usage: "read angles and print the command in degrees"},
					&cli.Float64Flag{Name: flagWaypointX, Usage: "waypoint x position", Required: true},
					&cli.Float64Flag{Name: flagWaypointY, Usage: "waypoint y position", Required: true},
				),
				Action: rt.computeAction,
			},
			{
				Name:      "replay",
				Usage:     "compute one steering command per sample in a JSON5 file",
				ArgsUsage: "FILE",
				Action:    rt.replayAction,
			},
			{
				Name:  "graph",
				Usage: "feed one pose through the block graph in the config and print every block output unconverted",
				Flags: append(append([]cli.Flag{}, poseFlags...),
					&cli.BoolFlag{Name: flagDegrees, Usage: "read pose angles in degrees, block outputs are not converted"},
					&cli.StringFlag{Name: flagInput, Value: "Pose", Usage: "name the blocks use for the pose input"},
				),
				Action: rt.graphAction,
			},
		},
	}
}

// setup loads the config and picks a logger: silent unless --debug or the config asks for one.
func (rt *runtime) setup(c *cli.Context) error {
	logger := logging.NewBlankLogger("steer")
	if c.Bool(flagDebug) {
		logger = logging.NewDebugLogger("steer")
	}

	rt.cfg = &config.Config{}
	if path := c.String(flagConfig); path != "" {
		cfg, err := config.Read(path, logger)
		if err != nil {
			return errors.Wrapf(err, "cannot read config %s", path)
		}
		rt.cfg = cfg
	}

	if !c.Bool(flagDebug) && (rt.cfg.Debug || rt.cfg.LogLevel != "") {
		logger = logging.NewLogger("steer")
		logger.SetLevel(rt.cfg.Level())
	}
	rt.logger = logger
	return nil
}
