package control

import (
	"context"
	"testing"
	"time"

	"go.viam.com/test"

	"github.com/roarracing/purepursuit/logging"
	"github.com/roarracing/purepursuit/utils"
)

func TestConstantConfig(t *testing.T) {
	logger := logging.NewTestLogger(t)
	for _, c := range []struct {
		conf BlockConfig
		err  string
	}{
		{
			BlockConfig{
				Name:      "Constant1",
				Type:      "constant",
				Attribute: utils.AttributeMap{"constant_val": 1.89345},
			},
			"",
		},
		{
			BlockConfig{
				Name:      "Constant1",
				Type:      "constant",
				Attribute: utils.AttributeMap{"constant_vals": []interface{}{1.0, 2.0}},
			},
			"",
		},
		{
			BlockConfig{
				Name:      "Constant1",
				Type:      "constant",
				Attribute: utils.AttributeMap{"constant_S": 1.89345},
			},
			"constant block Constant1 doesn't have a constant_val field",
		},
		{
			BlockConfig{
				Name:      "Constant1",
				Type:      "constant",
				Attribute: utils.AttributeMap{"constant_vals": []interface{}{1.0, "two"}},
			},
			"constant block Constant1 constant_vals: element 1: expected float64 but got string",
		},
		{
			BlockConfig{
				Name:      "Constant1",
				Type:      "constant",
				Attribute: utils.AttributeMap{"constant_val": 1.89345},
				DependsOn: []string{"A", "B"},
			},
			"invalid number of inputs for constant block Constant1 expected 0 got 2",
		},
	} {
		_, err := CreateBlock(c.conf, logger)
		if c.err == "" {
			test.That(t, err, test.ShouldBeNil)
		} else {
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldEqual, c.err)
		}
	}
}

func TestConstantNext(t *testing.T) {
	ctx := context.Background()
	b, err := CreateBlock(BlockConfig{
		Name:      "Waypoint",
		Type:      "constant",
		Attribute: utils.AttributeMap{"constant_vals": []float64{10, -2}},
	}, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	out, ok := b.Next(ctx, nil, time.Millisecond)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, out[0].Name(), test.ShouldEqual, "Waypoint")
	test.That(t, out[0].Dimension(), test.ShouldEqual, 2)
	test.That(t, out[0].GetSignalValueAt(0), test.ShouldEqual, 10.0)
	test.That(t, out[0].GetSignalValueAt(1), test.ShouldEqual, -2.0)
	test.That(t, out[0].GetSignalValueAt(2), test.ShouldEqual, 0.0)
}
