package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/cmd/lvroute/commands"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/network"
	"github.com/katalvlaran/lvroute/store"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := commands.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestReport_Text(t *testing.T) {
	out, _, err := run(t, "report")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 42)
	assert.Equal(t, "VLV->SPC:\t95", lines[0])
	assert.Contains(t, lines, "VLV->ACE:\t557")
	assert.Contains(t, lines, "GOM->LPA:\t193")
	assert.Equal(t, "FUE->ACE:\t65", lines[41])
}

func TestReport_YAMLWithMetrics(t *testing.T) {
	out, _, err := run(t, "report", "--format", "yaml", "--metrics", "--strategy", "heap")
	require.NoError(t, err)
	assert.Contains(t, out, "- from: VLV\n  to: SPC\n  distance: 95\n  reachable: true\n")
	assert.Contains(t, out, `lvroute_queries_total{outcome="ok",strategy="heap"} 7`)
	assert.Contains(t, out, "lvroute_store_nodes 7")
	assert.Contains(t, out, "lvroute_store_half_links 16")
}

func TestReport_BadFormat(t *testing.T) {
	_, _, err := run(t, "report", "--format", "csv")
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	out, _, err := run(t, "path", "VLV", "ACE", "--strategy", "ordered")
	require.NoError(t, err)
	assert.Equal(t, "VLV->ACE:\t557\tVLV -> SPC -> TFN -> LPA -> FUE -> ACE\n", out)

	_, _, err = run(t, "path", "XXX", "ACE")
	assert.ErrorIs(t, err, dijkstra.ErrStartNotFound)

	_, _, err = run(t, "path", "VLV")
	assert.Error(t, err)
}

func TestPath_NoPath(t *testing.T) {
	graph := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(graph, []byte("nodes: [AAA, BBB, CCC]\nedges:\n  - {from: AAA, to: BBB, weight: 4}\n"), 0o600))

	_, _, err := run(t, "path", "AAA", "CCC", "--graph", graph)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestGraphFile_RejectionsAreLogged(t *testing.T) {
	graph := filepath.Join(t.TempDir(), "net.yaml")
	body := "nodes: [AAA, BBB, AAA, CCC]\nedges:\n  - {from: AAA, to: BBB, weight: 4}\n  - {from: BBB, to: CCC, weight: -1}\n"
	require.NoError(t, os.WriteFile(graph, []byte(body), 0o600))

	out, errOut, err := run(t, "report", "--graph", graph, "--max-nodes", "3")
	require.NoError(t, err)
	assert.Contains(t, errOut, "could not add node")
	assert.Contains(t, errOut, "could not set distance")
	assert.Equal(t, "AAA->BBB:\t4\nAAA->CCC:\t-\nBBB->AAA:\t4\nBBB->CCC:\t-\nCCC->AAA:\t-\nCCC->BBB:\t-\n", out)
}

func TestGraphFile_Missing(t *testing.T) {
	_, _, err := run(t, "nodes", "--graph", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBadLimits(t *testing.T) {
	_, _, err := run(t, "nodes", "--max-nodes", "0")
	assert.ErrorIs(t, err, store.ErrBadLimits)
}

func TestNodes(t *testing.T) {
	out, _, err := run(t, "nodes")
	require.NoError(t, err)
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "VLV")
	assert.Contains(t, out, "4/5", "TFN has four neighbors")
}

func TestExport(t *testing.T) {
	out, _, err := run(t, "export", "--log-format", "json")
	require.NoError(t, err)

	def, err := network.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, network.Sample().Nodes, def.Nodes)
	assert.Len(t, def.Edges, 8)
}

func TestLimitFlags_ApplyToSample(t *testing.T) {
	out, errOut, err := run(t, "nodes", "--max-nodes", "3", "--max-neighbors", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "TFN")
	assert.NotContains(t, out, "GOM")
	assert.Contains(t, out, "1/2", "VLV keeps its one link")
	assert.Contains(t, errOut, "could not add node")
}

func TestLimitFlags_WinOverDefinitionLimits(t *testing.T) {
	graph := filepath.Join(t.TempDir(), "net.yaml")
	body := "limits:\n  max_nodes: 2\n  max_weight: 100\nnodes: [AAA, BBB, CCC]\nedges:\n  - {from: AAA, to: BBB, weight: 80}\n"
	require.NoError(t, os.WriteFile(graph, []byte(body), 0o600))

	out, _, err := run(t, "report", "--graph", graph)
	require.NoError(t, err)
	assert.Equal(t, "AAA->BBB:\t80\nBBB->AAA:\t80\n", out, "the file caps the store at two nodes")

	out, _, err = run(t, "report", "--graph", graph, "--max-nodes", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "AAA->CCC:\t-")
}
