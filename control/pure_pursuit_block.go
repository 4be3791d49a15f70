package control

import (
	"context"
	"sync"
	"time"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/roarracing/purepursuit/logging"
	"github.com/roarracing/purepursuit/spatialmath"
)

const (
	poseSignalDimension     = 5 // x, y, roll, pitch, yaw
	waypointSignalDimension = 2 // x, y
)

// purePursuitBlock exposes PurePursuit inside a block graph. It depends on a pose block and a
// waypoint block, in that order.
type purePursuitBlock struct {
	mu      sync.Mutex
	cfg     BlockConfig
	y       []*Signal
	pursuit *PurePursuit
	logger  logging.Logger
}

func newPurePursuitBlock(config BlockConfig, logger logging.Logger) (Block, error) {
	p := &purePursuitBlock{cfg: config, logger: logger}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

func (b *purePursuitBlock) Next(ctx context.Context, x []*Signal, dt time.Duration) ([]*Signal, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(x) != 2 {
		return b.y, false
	}
	pose, waypoint := x[0], x[1]
	if pose.Dimension() != poseSignalDimension || waypoint.Dimension() != waypointSignalDimension {
		b.logger.Debugw("pure pursuit block got malformed inputs",
			"block", b.cfg.Name,
			"pose_dimension", pose.Dimension(),
			"waypoint_dimension", waypoint.Dimension(),
		)
		return b.y, false
	}
	p := pose.values()
	rotation, err := spatialmath.EulerAnglesFromSlice(p[2:])
	if err != nil {
		return b.y, false
	}
	w := waypoint.values()
	steering := b.pursuit.Run(r2.Point{X: p[0], Y: p[1]}, rotation, NewTarget(w[0], w[1]))
	b.y[0].SetSignalValueAt(0, steering)
	return b.y, true
}

func (b *purePursuitBlock) reset() error {
	if len(b.cfg.DependsOn) != 2 {
		return errors.Errorf("invalid number of inputs for pure pursuit block %s expected 2 got %d", b.cfg.Name, len(b.cfg.DependsOn))
	}
	b.pursuit = NewPurePursuit(b.cfg.Attribute, 0, b.logger)
	b.y = make([]*Signal, 1)
	b.y[0] = makeSignal(b.cfg.Name, b.cfg.Type, 1)
	return nil
}

func (b *purePursuitBlock) Reset(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reset()
}

func (b *purePursuitBlock) UpdateConfig(ctx context.Context, config BlockConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg = config
	return b.reset()
}

func (b *purePursuitBlock) Output(ctx context.Context) []*Signal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.y
}

func (b *purePursuitBlock) Config(ctx context.Context) BlockConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}
