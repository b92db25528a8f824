package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OutSquareCapital/rustats/config"
)

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ValidMovingConfig(t *testing.T) {
	path := writeTemp(t, `
operation: move_mean
length: 5
min_length: 3
parallel: true
input: in.csv
output: out.csv
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "move_mean", c.Operation)
	require.Equal(t, 5, c.Length)
	require.Equal(t, 3, c.MinLength)
	require.True(t, c.Parallel)
	require.Equal(t, "in.csv", c.Input)
	require.Equal(t, "out.csv", c.Output)
	require.True(t, c.IsMoving())
}

func TestLoad_ValidAggConfig_IgnoresWindowFields(t *testing.T) {
	path := writeTemp(t, `
operation: agg_median
input: in.csv
output: out.csv
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	require.False(t, c.IsMoving())
}

func TestLoad_UnknownOperation(t *testing.T) {
	path := writeTemp(t, `
operation: move_bogus
length: 1
min_length: 1
`)
	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrUnknownOperation)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate_RejectsZeroLength(t *testing.T) {
	c := config.Config{Operation: "move_sum", Length: 0, MinLength: 1}
	require.ErrorIs(t, c.Validate(), config.ErrZeroLength)
}

func TestValidate_RejectsZeroMinLength(t *testing.T) {
	c := config.Config{Operation: "move_sum", Length: 3, MinLength: 0}
	require.ErrorIs(t, c.Validate(), config.ErrZeroMinLength)
}

func TestValidate_RejectsMinLengthExceedingLength(t *testing.T) {
	c := config.Config{Operation: "move_sum", Length: 2, MinLength: 3}
	require.ErrorIs(t, c.Validate(), config.ErrMinLengthExceedsLength)
}

func TestValidate_AggOperationSkipsWindowChecks(t *testing.T) {
	c := config.Config{Operation: "agg_sum", Length: 0, MinLength: 0}
	require.NoError(t, c.Validate())
}
