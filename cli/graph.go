package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/roarracing/purepursuit/control"
)

func (rt *runtime) graphAction(c *cli.Context) error {
	if len(rt.cfg.Blocks) == 0 {
		return errors.New("the config has no blocks")
	}
	g, err := control.NewGraph(rt.cfg.Blocks, rt.logger.Sublogger("graph"))
	if err != nil {
		return err
	}

	location, rotation := poseFromFlags(c)
	pose := control.NewSignal(c.String(flagInput), location.X, location.Y, rotation.Roll, rotation.Pitch, rotation.Yaw)
	pursuit := rt.controller()
	if err := g.Step(c.Context, map[string]*control.Signal{c.String(flagInput): pose}, pursuit.Timestep()); err != nil {
		return err
	}

	for _, name := range g.BlockList() {
		outs, err := g.OutputAt(c.Context, name)
		if err != nil {
			return err
		}
		var vals []string
		for _, out := range outs {
			for i := 0; i < out.Dimension(); i++ {
				vals = append(vals, fmt.Sprintf("%.6f", out.GetSignalValueAt(i)))
			}
		}
		fmt.Fprintf(c.App.Writer, "%s: %s\n", name, strings.Join(vals, " "))
	}
	return nil
}
