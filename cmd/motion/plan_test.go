package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPresets = `
defaults:
  duration: 200ms
presets:
  slide:
    duration: 0.3s
    function: easeOut
  pulse:
    duration: 0.5s
    traits:
      - autoreversing
      - repeating: {count: 2}
`

const testScript = `
layers:
  - name: box
    position: [0, 0]
    bounds: [0, 0, 40, 40]
steps:
  - animate:
      preset: slide
      label: move
      steps:
        - set: {layer: box, position: [10, 0]}
  - advance: 0.3
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPlan(t *testing.T) {
	script := writeFile(t, "script.yaml", testScript)
	presets := writeFile(t, "presets.yaml", testPresets)

	var out bytes.Buffer
	require.NoError(t, runPlan(&out, script, presets, false, true))

	s := out.String()
	assert.Contains(t, s, "box[position] duration=0.3")
	assert.Contains(t, s, "additive position (-10, 0) -> (0, 0) (easeOut, 0.3s)")
	assert.Contains(t, s, "completion move: completed")
	assert.Contains(t, s, "final box position=(10, 0)")
	assert.Contains(t, s, "motion_animations_total{mode=additive} 1")
}

func TestRunPlan_MissingFile(t *testing.T) {
	err := runPlan(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.yaml"), "", false, false)
	assert.ErrorContains(t, err, "read script")
}

func TestRunPresets(t *testing.T) {
	presets := writeFile(t, "presets.yaml", testPresets)

	var out bytes.Buffer
	require.NoError(t, runPresets(&out, presets))
	assert.Equal(t,
		"default duration: 0.2s\n"+
			"pulse: start=unset duration=0.5s function=unset autoreversing repeating(2, gap=unset)\n"+
			"slide: start=unset duration=0.3s function=easeOut\n",
		out.String())
}
