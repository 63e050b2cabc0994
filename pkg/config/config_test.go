package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a directory with no config file so only defaults apply.
	settings, err := Load(filepath.Join(t.TempDir(), "renamer.toml"))
	require.NoError(t, err)

	assert.Equal(t, "flat", settings.Input.Structure)
	assert.Empty(t, settings.Plan.Resolve)
	assert.False(t, settings.Plan.AllowCaseRename)
	assert.Equal(t, "detect", settings.Plan.CaseMode)
	assert.Equal(t, 1, settings.Sequence.Start)
	assert.Equal(t, 1, settings.Sequence.Step)
	assert.Equal(t, "auto", settings.Output.Format)
}

func TestLoadUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renamer.toml")
	content := `
[plan]
resolve = ["parent", "exists"]
allow_case_rename = true

[sequence]
start = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"parent", "exists"}, settings.Plan.Resolve)
	assert.True(t, settings.Plan.AllowCaseRename)
	assert.Equal(t, 10, settings.Sequence.Start)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1, settings.Sequence.Step)
	assert.Equal(t, "flat", settings.Input.Structure)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RENAMER_OUTPUT_FORMAT", "json")

	settings, err := Load(filepath.Join(t.TempDir(), "renamer.toml"))
	require.NoError(t, err)
	assert.Equal(t, "json", settings.Output.Format)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renamer.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	settings, err := Defaults()
	require.NoError(t, err)
	assert.Equal(t, "flat", settings.Input.Structure)
	assert.Equal(t, 1, settings.Sequence.Start)
}

func TestGenerateContent(t *testing.T) {
	content := GenerateContent()

	// Section headers survive, value lines are commented out.
	assert.Contains(t, content, "[plan]")
	assert.Contains(t, content, "# allow_case_rename = false")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line in generated config: %q", line)
	}
}
