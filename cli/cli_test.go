package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/taylortable/cli"
	"github.com/katalvlaran/taylortable/render"
	"github.com/katalvlaran/taylortable/table"
)

// run executes one command line against a fresh root with an empty HOME, so
// no user configuration leaks into the test.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := cli.NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func runJSON(t *testing.T, args ...string) render.Report {
	t.Helper()
	out, _, err := run(t, append(args, "-o", "json")...)
	require.NoError(t, err)

	var r render.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r), out)

	return r
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestStencil_Table(t *testing.T) {
	out, _, err := run(t, "stencil", "--p", "1", "--group=-2,-1,0,1,2", "--depth", "6")
	require.NoError(t, err)

	for _, want := range []string{"- u_{j-2}", "u_{j+1} = 2/3", "method order: 4"} {
		assert.Contains(t, out, want)
	}
}

func TestStencil_JSON(t *testing.T) {
	r := runJSON(t, "stencil", "--group=-1,0,1", "--p", "2")

	assert.Equal(t, "stencil", r.Mode)
	assert.Equal(t, "u''_{j}", r.Target)
	require.Len(t, r.Solution, 3)
	assert.Equal(t, "1", r.Solution[0].Fraction)
	assert.Equal(t, "-2", r.Solution[1].Fraction)
	assert.Equal(t, "1", r.Solution[2].Fraction)
	require.NotNil(t, r.Order)
	assert.Equal(t, 2, *r.Order)
	require.NotNil(t, r.Coefficient)
	assert.InDelta(t, -1.0/12, *r.Coefficient, 1e-9)
}

func TestStencil_Forward(t *testing.T) {
	back := runJSON(t, "stencil", "--group=-1,1", "--group=-1")
	assert.Equal(t, []string{"u'_{j-1}", "u_{j-1}", "u_{j+1}"}, back.Unknowns)

	fwd := runJSON(t, "stencil", "--group=-1,1", "--group=-1", "--forward")
	assert.Equal(t, []string{"u_{j-1}", "u_{j+1}", "u'_{j-1}"}, fwd.Unknowns)
}

func TestStencil_NoUnknowns(t *testing.T) {
	out, _, err := run(t, "stencil", "--p", "1")
	require.ErrorIs(t, err, table.ErrEmptyUnknownSet)
	assert.Equal(t, cli.ExitNoUnknowns, cli.ExitCode(err))
	assert.Contains(t, out, "(no unknowns)")
}

func TestStencil_Errors(t *testing.T) {
	_, _, err := run(t, "stencil", "--group=a,b")
	assert.ErrorIs(t, err, cli.ErrInvalidGroup)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	// the target itself is not an unknown
	_, _, err = run(t, "stencil", "--p", "0", "--group=0,1")
	assert.ErrorIs(t, err, table.ErrInvalidTerm)

	_, _, err = run(t, "stencil", "--group=-1,1", "--depth", "-1")
	assert.ErrorIs(t, err, cli.ErrInvalidConfig)

	_, _, err = run(t, "stencil", "--group=-1,1", "-o", "xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestMarch_ExplicitEuler(t *testing.T) {
	r := runJSON(t, "march", "--k", "1", "--group", "0", "--group", "0", "--depth", "4")

	assert.Equal(t, "marching", r.Mode)
	assert.Equal(t, "u_{n+1}", r.Target)
	assert.Equal(t, []string{"u_{n}", "u'_{n}"}, r.Unknowns)
	require.NotNil(t, r.LocalOrder)
	require.NotNil(t, r.GlobalOrder)
	assert.Equal(t, 2, *r.LocalOrder)
	assert.Equal(t, 1, *r.GlobalOrder)
	assert.InDelta(t, 0.5, *r.Coefficient, 1e-12)
}

func TestMarch_Unsolvable(t *testing.T) {
	_, _, err := run(t, "march", "--group=", "--group=0,0", "--depth", "1")
	require.ErrorIs(t, err, table.ErrUnsolvableSystem)
	assert.Equal(t, cli.ExitUnsolvable, cli.ExitCode(err))
}

func TestExpand(t *testing.T) {
	out, _, err := run(t, "expand", "--p", "2", "--k", "-1", "--depth", "4", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"term":"u''_{j-1}","row":["0","0","1","-1","1/2"]}`, out)

	_, _, err = run(t, "expand", "--p", "-1")
	assert.ErrorIs(t, err, table.ErrInvalidTerm)
}

func TestBatch_PreservesOrder(t *testing.T) {
	path := writeFile(t, "schemes.yaml", `schemes:
  - name: central-4
    p: 1
    groups: [[-2, -1, 0, 1, 2]]
    depth: 6
  - name: euler
    mode: marching
    k: 1
    groups: [[0], [0]]
  - mode: stencil
    p: 2
    groups: [[-1, 0, 1]]
  - name: empty
    p: 1
  - name: leapfrog
    mode: march
    k: 1
    groups: [[-1], [0]]
`)
	out, _, err := run(t, "batch", path, "--jobs", "2", "-o", "json")
	require.NoError(t, err)

	var reports []render.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports), out)
	require.Len(t, reports, 5)

	names := make([]string, len(reports))
	for i, r := range reports {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"central-4", "euler", "#3", "empty", "leapfrog"}, names)
	assert.Equal(t, 4, *reports[0].Order)
	assert.Equal(t, 1, *reports[1].GlobalOrder)
	assert.Equal(t, 2, *reports[2].Order)
	assert.NotEmpty(t, reports[3].Warning)
	assert.Equal(t, 2, *reports[4].GlobalOrder)
}

func TestBatch_Table(t *testing.T) {
	path := writeFile(t, "schemes.yaml", "schemes:\n  - name: two-point\n    groups: [[-1, 1]]\n")
	out, _, err := run(t, "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "two-point")
}

func TestBatch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{name: "mode", content: "schemes:\n  - mode: implicit\n    groups: [[0]]\n", target: cli.ErrInvalidScheme},
		{name: "marching p", content: "schemes:\n  - mode: marching\n    p: 1\n    groups: [[0]]\n", target: cli.ErrInvalidScheme},
		{name: "unsolvable", content: "schemes:\n  - mode: marching\n    depth: 1\n    groups: [[], [0, 0]]\n", target: table.ErrUnsolvableSystem},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, "batch", writeFile(t, "b.yaml", tc.content))
			assert.ErrorIs(t, err, tc.target)
		})
	}

	_, _, err := run(t, "batch", writeFile(t, "b.yaml", "schemes:\n  - nmae: typo\n"))
	assert.Error(t, err)

	_, _, err = run(t, "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_InitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, _, err := run(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	var written cli.Config
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, table.DefaultDepth, written.Depth)
	assert.Equal(t, "table", written.Format)

	_, _, err = run(t, "config", "init", "--config", path)
	assert.Error(t, err, "existing file is kept without --force")
	_, _, err = run(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)

	out, stderr, err := run(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "depth: 5")
	assert.Contains(t, stderr, path)
}

func TestConfig_Precedence(t *testing.T) {
	path := writeFile(t, "config.yaml", "depth: 3\nformat: yaml\n")

	out, _, err := run(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "depth: 3")
	assert.Contains(t, out, "format: yaml")

	t.Setenv("TAYLORTABLE_DEPTH", "7")
	out, _, err = run(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "depth: 7")

	out, _, err = run(t, "config", "show", "--config", path, "--depth", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "depth: 9")
}

func TestConfig_Invalid(t *testing.T) {
	_, _, err := run(t, "config", "show", "--precision", "99")
	assert.ErrorIs(t, err, cli.ErrInvalidConfig)

	_, _, err = run(t, "version", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, "stencil", "--group=-1,1", "-v")
	require.NoError(t, err)
	assert.True(t, strings.Contains(stderr, "level=DEBUG"), stderr)

	_, stderr, err = run(t, "stencil", "--group=-1,1")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "taylortable v"+cli.Version+"\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitOK, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitError, cli.ExitCode(errors.New("boom")))
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(table.ErrInvalidDepth))
	assert.Equal(t, cli.ExitUnsolvable, cli.ExitCode(table.ErrUnsolvableSystem))
}
