package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
)

const demoTheme = `version: "1.0"
name: "Demo"
controls:
  - name: PushButton
    parent: Control
hints:
  - control: Control
    gradient: "V(#ffffff 0, #ffffff 1)"
  - control: PushButton
    states: [hovered]
    gradient: "V(#000000 0, #000000 1)"
  - control: PushButton
    metric: 4
`

// setupHome points HOME at a temporary directory and restores the gradient
// package logger afterwards.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	previous := gradient.Logger()
	t.Cleanup(func() { gradient.SetLogger(previous) })
	return home
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func writeThemeFile(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
