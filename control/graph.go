package control

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/roarracing/purepursuit/logging"
)

// Graph holds a set of blocks and evaluates them once per Step in dependency order.
// Dependencies that name no block are external inputs and must be handed to Step.
type Graph struct {
	order  []string
	blocks map[string]Block
	inputs map[string]struct{}
	logger logging.Logger
}

// NewGraph creates every block in cfgs and orders them so each block runs after its dependencies.
func NewGraph(cfgs []BlockConfig, logger logging.Logger) (*Graph, error) {
	sorted, err := SortBlocks(cfgs)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		blocks: make(map[string]Block, len(sorted)),
		inputs: map[string]struct{}{},
		logger: logger,
	}
	for _, cfg := range sorted {
		blk, err := CreateBlock(cfg, logger.Sublogger(cfg.Name))
		if err != nil {
			return nil, err
		}
		g.blocks[cfg.Name] = blk
		g.order = append(g.order, cfg.Name)
	}
	for _, cfg := range sorted {
		for _, dep := range cfg.DependsOn {
			if _, ok := g.blocks[dep]; !ok {
				g.inputs[dep] = struct{}{}
			}
		}
	}
	return g, nil
}

// SortBlocks sorts a list of blocks topologically based off what other blocks they depend on.
func SortBlocks(cfgs []BlockConfig) ([]BlockConfig, error) {
	blockToConfig := make(map[string]BlockConfig, len(cfgs))
	for _, cfg := range cfgs {
		if _, ok := blockToConfig[cfg.Name]; ok {
			return nil, errors.Errorf("block name %q is not unique", cfg.Name)
		}
		blockToConfig[cfg.Name] = cfg
	}

	sorted := make([]BlockConfig, 0, len(cfgs))
	visited := map[string]bool{}

	var dfsHelper func(string, []string) error
	dfsHelper = func(name string, path []string) error {
		for idx, blockName := range path {
			if name == blockName {
				return errors.Errorf("circular dependency detected in block list between %s", strings.Join(path[idx:], ", "))
			}
		}

		path = append(path, name)
		if visited[name] {
			return nil
		}
		visited[name] = true
		cfg, isBlock := blockToConfig[name]
		if !isBlock {
			return nil
		}
		for _, dep := range cfg.DependsOn {
			// create a deep copy of current path
			pathCopy := make([]string, len(path))
			copy(pathCopy, path)

			if err := dfsHelper(dep, pathCopy); err != nil {
				return err
			}
		}
		sorted = append(sorted, cfg)
		return nil
	}

	for _, cfg := range cfgs {
		if err := dfsHelper(cfg.Name, []string{}); err != nil {
			return nil, err
		}
	}
	return sorted, nil
}

// Step feeds inputs through the graph once. A block that rejects its inputs keeps its previous output.
func (g *Graph) Step(ctx context.Context, inputs map[string]*Signal, dt time.Duration) error {
	for name := range g.inputs {
		if s, ok := inputs[name]; !ok || s == nil {
			return errors.Errorf("missing input signal %s", name)
		}
	}
	for _, name := range g.order {
		blk := g.blocks[name]
		deps := blk.Config(ctx).DependsOn
		sw := make([]*Signal, 0, len(deps))
		for _, dep := range deps {
			if upstream, ok := g.blocks[dep]; ok {
				sw = append(sw, upstream.Output(ctx)...)
				continue
			}
			sw = append(sw, inputs[dep])
		}
		if _, ok := blk.Next(ctx, sw, dt); !ok {
			g.logger.Debugw("block kept its previous output", "block", name)
		}
	}
	return nil
}

// OutputAt returns the Signal at the block name, error when the block doesn't exist.
func (g *Graph) OutputAt(ctx context.Context, name string) ([]*Signal, error) {
	blk, ok := g.blocks[name]
	if !ok {
		return []*Signal{}, errors.Errorf("cannot return Signals for non existing block %s", name)
	}
	return blk.Output(ctx), nil
}

// ConfigAt returns the Config at the block name, error when the block doesn't exist.
func (g *Graph) ConfigAt(ctx context.Context, name string) (BlockConfig, error) {
	blk, ok := g.blocks[name]
	if !ok {
		return BlockConfig{}, errors.Errorf("cannot return Config for non existing block %s", name)
	}
	return blk.Config(ctx), nil
}

// SetConfigAt updates the Config at the block name, error when the block doesn't exist.
// The evaluation order is fixed at construction so DependsOn must not change.
func (g *Graph) SetConfigAt(ctx context.Context, name string, config BlockConfig) error {
	blk, ok := g.blocks[name]
	if !ok {
		return errors.Errorf("cannot set Config for non existing block %s", name)
	}
	if current := blk.Config(ctx).DependsOn; !slices.Equal(current, config.DependsOn) {
		return errors.Errorf("cannot change the dependencies of block %s from %v to %v", name, current, config.DependsOn)
	}
	return blk.UpdateConfig(ctx, config)
}

// BlockList returns the names of the blocks in evaluation order.
func (g *Graph) BlockList() []string {
	return append([]string(nil), g.order...)
}
