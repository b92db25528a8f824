package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListOpsCmd_PrintsAllOperationNames(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list-ops"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "move_mean")
	require.Contains(t, out.String(), "agg_rank")
}

func TestRunCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.csv")
	outPath := filepath.Join(dir, "out.csv")
	configPath := filepath.Join(dir, "run.yaml")

	require.NoError(t, os.WriteFile(inPath, []byte("1\n2\n3\n4\n5\n"), 0o644))
	require.NoError(t, os.WriteFile(configPath, []byte(`
operation: move_sum
length: 2
min_length: 2
parallel: false
input: `+inPath+`
output: `+outPath+`
`), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"run", "--config", configPath})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "5 x 1")

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(written), "3")
	require.Contains(t, string(written), "NaN")
}

func TestRunCmd_RejectsMissingConfigFlag(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"run"})
	require.Error(t, root.Execute())
}
