package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCompute(t *testing.T) {
	front := writeFile(t, "front.txt", "1 3\n2 2\n3 1\n")

	out, err := run(t, "compute", "--ref", "4,4", front)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"FRONT", "POINTS", "HV"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{front, "3", "6"}, strings.Fields(lines[1]))
}

func TestComputeWithConfig(t *testing.T) {
	reference := writeFile(t, "reference.pf", "0 1\n1 0\n")
	cfg := writeFile(t, "config.yaml", "referenceFrontFile: "+reference+"\nindicators: [HV, EPSILON]\n")
	front := writeFile(t, "front.txt", "0 1\n1 0\n")

	out, err := run(t, "compute", "--config", cfg, "--offset", "1", front)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"FRONT", "POINTS", "HV", "EPSILON"}, strings.Fields(lines[0]))
	// Reference point (2, 2): 2*1 + 1*1.
	assert.Equal(t, []string{front, "2", "3", "0"}, strings.Fields(lines[1]))
}

func TestComputeErrors(t *testing.T) {
	front := writeFile(t, "front.txt", "1 3\n2 2\n")

	_, err := run(t, "compute", front)
	assert.ErrorIs(t, err, framework.ErrInvalidConfiguration)

	_, err = run(t, "compute", "--ref", "4,4,4", front)
	assert.ErrorIs(t, err, framework.ErrDimensionMismatch)

	_, err = run(t, "compute", "--ref", "4,4")
	assert.Error(t, err)
}

func TestContributions(t *testing.T) {
	front := writeFile(t, "front.txt", "1 3\n2 2\n3 3\n3 1\n5 0\n")

	out, err := run(t, "contributions", "--ref", "4,4", front)
	require.NoError(t, err)
	assert.Equal(t, "1\n1\n0\n1\n0\n", out)
}

func TestListIndicators(t *testing.T) {
	out, err := run(t, "indicators")
	require.NoError(t, err)
	assert.Equal(t, "HV\nEPSILON\nGD\nIGD\n", out)
}
