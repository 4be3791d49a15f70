package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"go.viam.com/test"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(&out)
	err := app.Run(append([]string{"steer"}, args...))
	return out.String(), err
}

func parseLines(t *testing.T, out string) []float64 {
	t.Helper()
	var vals []float64
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		v, err := strconv.ParseFloat(line, 64)
		test.That(t, err, test.ShouldBeNil)
		vals = append(vals, v)
	}
	return vals
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestCompute(t *testing.T) {
	out, err := run(t, "compute", "--wx=0", "--wy=10")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parseLines(t, out)[0], test.ShouldAlmostEqual, -1.131720, 1e-6)

	out, err = run(t, "compute", "--wx=0", "--wy=-10")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parseLines(t, out)[0], test.ShouldAlmostEqual, 1.131720, 1e-6)

	out, err = run(t, "compute", "--x=1", "--y=2", "--yaw=45", "--degrees", "--wx=4", "--wy=8")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parseLines(t, out)[0], test.ShouldAlmostEqual, -35.848653, 1e-5)

	out, err = run(t, "compute", "--wx=0", "--wy=0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parseLines(t, out)[0], test.ShouldEqual, 0.0)

	_, err = run(t, "compute", "--wx=1")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestComputeWithConfig(t *testing.T) {
	path := writeFile(t, "steer.json", `{"controller": {"gain": 1.5, "unused": "value"}}`)
	out, err := run(t, "--config", path, "compute", "--wx=0", "--wy=10")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parseLines(t, out)[0], test.ShouldAlmostEqual, 1.131720, 1e-6)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "compute", "--wx=0", "--wy=10")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot read config")
}

func TestReplay(t *testing.T) {
	path := writeFile(t, "samples.json5", `[
		// straight ahead
		{location: [0, 0], rotation: [0, 0, 0], waypoint: [10, 0]},
		{location: [0, 0], rotation: [0.1, 0.2, 0], waypoint: [0, 10]},
		{location: [0, 0], rotation: [0, 0, 0], waypoint: [0, 0]},
	]`)
	out, err := run(t, "replay", path)
	test.That(t, err, test.ShouldBeNil)
	vals := parseLines(t, out)
	test.That(t, len(vals), test.ShouldEqual, 3)
	test.That(t, vals[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, vals[1], test.ShouldAlmostEqual, -1.131720, 1e-6)
	test.That(t, vals[2], test.ShouldEqual, 0.0)

	_, err = run(t, "replay")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParseSamples(t *testing.T) {
	steps, err := parseSamples([]byte(`[{"location": [1, 2], "rotation": [0, 0, 1.5], "waypoint": [3, 4]}]`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(steps), test.ShouldEqual, 1)
	test.That(t, steps[0].location.X, test.ShouldEqual, 1.0)
	test.That(t, steps[0].rotation.Yaw, test.ShouldEqual, 1.5)
	test.That(t, steps[0].waypoint.Location().Y, test.ShouldEqual, 4.0)

	for _, tc := range []struct {
		in  string
		err string
	}{
		{`[{"location": [1], "rotation": [0, 0, 0], "waypoint": [3, 4]}]`, "sample 0: location needs 2 elements got 1"},
		{`[{"location": [1, 2], "rotation": [0, 0, 0], "waypoint": []}]`, "sample 0: waypoint needs 2 elements got 0"},
		{`[{"location": [1, 2], "rotation": [0], "waypoint": [3, 4]}]`, "sample 0: rotation needs 3 elements"},
		{`not json`, "unable to parse samples"},
	} {
		_, err := parseSamples([]byte(tc.in))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, tc.err)
	}
}

func TestGraph(t *testing.T) {
	path := writeFile(t, "graph.json", `{
		"blocks": [
			{"name": "Steer", "type": "purePursuit", "depends_on": ["Pose", "Waypoint"]},
			{"name": "Waypoint", "type": "constant", "attributes": {"constant_vals": [0, 10]}},
			{"name": "ToActuator", "type": "gain", "attributes": {"gain": 2}, "depends_on": ["Steer"]}
		]
	}`)
	out, err := run(t, "--config", path, "graph")
	test.That(t, err, test.ShouldBeNil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.That(t, lines, test.ShouldResemble, []string{
		"Waypoint: 0.000000 10.000000",
		"Steer: -1.131720",
		"ToActuator: -2.263441",
	})

	// --degrees only changes how the pose is read
	out, err = run(t, "--config", path, "graph", "--degrees", "--yaw=45")
	test.That(t, err, test.ShouldBeNil)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	test.That(t, lines[1:], test.ShouldResemble, []string{
		"Steer: -0.879939",
		"ToActuator: -1.759879",
	})

	_, err = run(t, "graph")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no blocks")

	_, err = run(t, "--config", path, "graph", "--input", "Vehicle")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "missing input signal Pose")
}
