package control

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/roarracing/purepursuit/logging"
	"github.com/roarracing/purepursuit/utils"
)

// constant emits a fixed signal, e.g. a waypoint held still while tuning.
type constant struct {
	mu     sync.Mutex
	cfg    BlockConfig
	y      []*Signal
	logger logging.Logger
}

func newConstant(config BlockConfig, logger logging.Logger) (Block, error) {
	c := &constant{cfg: config, logger: logger}
	if err := c.reset(); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *constant) Next(ctx context.Context, x []*Signal, dt time.Duration) ([]*Signal, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.y, true
}

func (b *constant) reset() error {
	if len(b.cfg.DependsOn) > 0 {
		return errors.Errorf("invalid number of inputs for constant block %s expected 0 got %d", b.cfg.Name, len(b.cfg.DependsOn))
	}
	var vals []float64
	switch {
	case b.cfg.Attribute.Has("constant_vals"):
		parsed, err := floatList(b.cfg.Attribute["constant_vals"])
		if err != nil {
			return errors.Wrapf(err, "constant block %s constant_vals", b.cfg.Name)
		}
		vals = parsed
	case b.cfg.Attribute.Has("constant_val"):
		v, err := b.cfg.Attribute.TryFloat64("constant_val")
		if err != nil {
			return errors.Wrapf(err, "constant block %s", b.cfg.Name)
		}
		vals = []float64{v}
	default:
		return errors.Errorf("constant block %s doesn't have a constant_val field", b.cfg.Name)
	}
	b.y = make([]*Signal, 1)
	b.y[0] = makeSignal(b.cfg.Name, b.cfg.Type, len(vals))
	for i, v := range vals {
		b.y[0].SetSignalValueAt(i, v)
	}
	return nil
}

func (b *constant) Reset(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reset()
}

func (b *constant) UpdateConfig(ctx context.Context, config BlockConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg = config
	return b.reset()
}

func (b *constant) Output(ctx context.Context) []*Signal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.y
}

func (b *constant) Config(ctx context.Context) BlockConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

// floatList accepts both a JSON decoded list and a hand built []float64.
func floatList(raw interface{}) ([]float64, error) {
	switch v := raw.(type) {
	case []float64:
		return append([]float64(nil), v...), nil
	case []interface{}:
		out := make([]float64, 0, len(v))
		for i, elem := range v {
			f, err := utils.AssertType[float64](elem)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out = append(out, f)
		}
		return out, nil
	default:
		return nil, errors.Errorf("expected a list of numbers got %T", raw)
	}
}
