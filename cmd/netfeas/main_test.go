package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netfeas/pathcost"
	"github.com/katalvlaran/netfeas/unionfind"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithNameSuffix(".golden"))
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCommands_Golden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"distances_city", []string{"distances", "-f", fixture("city.yaml")}},
		{"distances_island", []string{"distances", "-f", fixture("island.yaml")}},
		{"resolve_city", []string{"resolve", "-f", fixture("city.yaml")}},
		{"resolve_city_saturate", []string{"resolve", "-f", fixture("city.yaml"), "--strategy", "saturate"}},
		{"resolve_city_target_met", []string{"resolve", "-f", fixture("city.yaml"), "--target", "3"}},
		{"requests_friends", []string{"requests", "-f", fixture("friends.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			newGoldie(t).Assert(t, tt.name, []byte(out))
		})
	}
}

func TestResolve_DOT(t *testing.T) {
	out, err := run(t, "resolve", "-f", fixture("city.yaml"), "--format", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "strict graph")
	assert.Contains(t, out, `label="3"`)
}

func TestResolve_Infeasible(t *testing.T) {
	_, err := run(t, "resolve", "-f", fixture("city.yaml"), "--target", "2")
	assert.ErrorIs(t, err, pathcost.ErrInfeasibleTarget)
}

func TestResolve_BadFlags(t *testing.T) {
	_, err := run(t, "resolve", "-f", fixture("city.yaml"), "--strategy", "greedy")
	assert.Error(t, err)

	_, err = run(t, "resolve", "-f", fixture("city.yaml"), "--format", "svg")
	assert.Error(t, err)

	_, err = run(t, "resolve")
	assert.Error(t, err, "--file is required")
}

func TestDistances_SourceOutOfRange(t *testing.T) {
	_, err := run(t, "distances", "-f", fixture("city.yaml"), "--source", "9")
	assert.ErrorIs(t, err, pathcost.ErrInvalidGraph)
}

func TestRequests_WrongDocument(t *testing.T) {
	// A road network is not a friend-request document.
	_, err := run(t, "requests", "-f", fixture("city.yaml"))
	assert.Error(t, err)
}

func TestRequests_OutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "houses: 2\nrequests: [[0, 5]]\n")

	_, err := run(t, "requests", "-f", path)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
}

func TestLogFileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "netfeas.log")
	_, err := run(t, "--log-level", "debug", "--log-format", "json", "--log-output", logPath,
		"requests", "-f", fixture("friends.yaml"))
	require.NoError(t, err)

	data := readFile(t, logPath)
	assert.Contains(t, data, `"msg":"request decided"`)
}
