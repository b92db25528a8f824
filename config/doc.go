// Package config loads the YAML run configuration for cmd/rustatsctl:
// which operation to run, the moving-window parameters, whether to
// fan columns out in parallel, and the input/output CSV paths.
package config
