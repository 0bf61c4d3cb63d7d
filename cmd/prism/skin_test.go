package main

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/aspect"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/pkg/gradient"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

func TestSkinCheckCommand(t *testing.T) {
	home := setupHome(t)
	path := writeThemeFile(t, home, demoTheme)

	output, err := executeCommand(t, "skin", "check", path)
	require.NoError(t, err)
	require.Equal(t, "Theme \"Demo\" is valid: 3 hint(s)\n", output)

	output, err = executeCommand(t, "skin", "check", path, "--list")
	require.NoError(t, err)
	require.Contains(t, output, "PushButton/body:hovered")
	require.Contains(t, output, "metric")

	broken := writeThemeFile(t, t.TempDir(), "version: \"1.0\"\nname: broken\n")
	_, err = executeCommand(t, "skin", "check", broken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to check theme")
}

func TestSkinResolveCommand(t *testing.T) {
	home := setupHome(t)
	path := writeThemeFile(t, home, demoTheme)

	output, err := executeCommand(t, "skin", "resolve", path, "--control", "PushButton", "--states", "hovered,pressed")
	require.NoError(t, err)
	require.Equal(t, "V(#000000 0, #000000 1)\nresolved from PushButton/body:hovered\n", output)

	output, err = executeCommand(t, "skin", "resolve", path, "--control", "PushButton", "--section", "header")
	require.NoError(t, err)
	require.Equal(t, "V(#ffffff 0, #ffffff 1)\nresolved from Control/body\n", output)

	output, err = executeCommand(t, "skin", "resolve", path, "--control", "PushButton", "--kind", "metric")
	require.NoError(t, err)
	require.Contains(t, output, "4\n")

	_, err = executeCommand(t, "skin", "resolve", path, "--control", "PushButton", "--kind", "color")
	require.Error(t, err)
	require.Contains(t, err.Error(), "HINT_NOT_FOUND")

	_, err = executeCommand(t, "skin", "resolve", path, "--control", "PushButton", "--kind", "texture")
	require.Error(t, err)

	_, err = executeCommand(t, "skin", "resolve", path, "--control", "PushButton", "--states", "sleepy")
	require.Error(t, err)
}

func TestPreviewSourceFromTheme(t *testing.T) {
	home := setupHome(t)
	path := writeThemeFile(t, home, demoTheme)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	flags := &rootFlags{log: logger.Nop()}

	opts := &previewOptions{theme: path, toStates: []string{"hovered"}}
	opts.control = "PushButton"

	source, err := buildPreviewSource(cmd, flags, nil, opts)
	require.NoError(t, err)
	require.Equal(t, aspect.Hovered, source.to)
	require.True(t, source.start.Equal(gradient.FromColor(rgb.White)))
	require.True(t, source.end.Equal(gradient.FromColor(rgb.Black)))
	require.Contains(t, source.title, "PushButton/body")
}

func TestPreviewSourceFromArguments(t *testing.T) {
	setupHome(t)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	flags := &rootFlags{log: logger.Nop()}

	source, err := buildPreviewSource(cmd, flags, []string{"V(red)", "H(red, blue)"}, &previewOptions{})
	require.NoError(t, err)
	require.Equal(t, gradient.Horizontal, source.end.Orientation())

	_, err = buildPreviewSource(cmd, flags, nil, &previewOptions{})
	require.Error(t, err)

	_, err = buildPreviewSource(cmd, flags, []string{"V(red)", "V(blue)"}, &previewOptions{watch: true})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--watch requires --theme")

	_, err = buildPreviewSource(cmd, flags, []string{"V(red)", "V(blue)"}, &previewOptions{theme: "x.yaml"})
	require.Error(t, err)
}
