package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckgen/config"
	"deckgen/logger"
)

func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{config.EnvOutput, config.EnvLogDir, config.EnvHandout, config.EnvStrict} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_DefaultOutputInWorkingDirectory(t *testing.T) {
	dir := isolate(t)

	out, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, "Successfully created presentation: "+config.DefaultOutputFile+"\n", out)

	info, err := os.Stat(filepath.Join(dir, config.DefaultOutputFile))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRun_OutputFlagAndOverwrite(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "decks", "farmiga.pptx")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	out, err := run(t, "--output", path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Successfully created presentation:"))
	assert.NotContains(t, out, "Error creating presentation")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestRun_SaveFailureReportedOnce(t *testing.T) {
	dir := isolate(t)
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	out, err := run(t, "-o", filepath.Join(blocker, "deck.pptx"))
	require.NoError(t, err, "save failures do not fail the run without --strict")
	assert.Equal(t, 1, strings.Count(out, "Error creating presentation:"))
	assert.NotContains(t, out, "Successfully created presentation")
}

func TestRun_StrictSaveFailure(t *testing.T) {
	dir := isolate(t)
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	out, err := run(t, "--strict", "-o", filepath.Join(blocker, "deck.pptx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errSaveFailed))
	assert.Equal(t, 1, strings.Count(out, "Error creating presentation:"))
}

func TestRun_Handouts(t *testing.T) {
	for _, tt := range []struct {
		format string
		file   string
	}{
		{format: "pdf", file: "deck.handout.pdf"},
		{format: "DOCX", file: "deck.outline.docx"},
	} {
		t.Run(tt.format, func(t *testing.T) {
			dir := isolate(t)
			out, err := run(t, "-o", filepath.Join(dir, "deck.pptx"), "--handout", tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, "Successfully created presentation:")
			assert.Contains(t, out, "Successfully created handout: "+filepath.Join(dir, tt.file))

			_, err = os.Stat(filepath.Join(dir, tt.file))
			assert.NoError(t, err)
		})
	}
}

func TestRun_HandoutFailureKeepsPresentation(t *testing.T) {
	dir := isolate(t)
	output := filepath.Join(dir, "deck.pptx")
	// a directory where the handout file should go makes its save fail
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "deck.handout.pdf"), 0755))

	out, err := run(t, "-o", output, "--handout", "pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Successfully created presentation: "+output))
	assert.Equal(t, 1, strings.Count(out, "Error creating handout:"))
	assert.NotContains(t, out, "Error creating presentation")

	_, err = os.Stat(output)
	assert.NoError(t, err)

	out, err = run(t, "-o", output, "--handout", "pdf", "--strict")
	assert.True(t, errors.Is(err, errSaveFailed))
	assert.Contains(t, out, "Successfully created presentation:")
	assert.Contains(t, out, "Error creating handout:")
}

func TestRun_LogDirWritesRunLog(t *testing.T) {
	dir := isolate(t)
	logDir := filepath.Join(dir, "logs")

	_, err := run(t, "--log-dir", logDir)
	require.NoError(t, err)

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "presentation saved")
	assert.Contains(t, string(data), "run_id")
}

func TestRun_InvalidOptions(t *testing.T) {
	isolate(t)

	_, err := run(t, "--handout", "pptx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid options")

	_, err = run(t, "--preview-dir", "p")
	require.Error(t, err, "previews are not supported")

	_, err = run(t, "extra")
	require.Error(t, err)
}

func TestGenerate_ScriptErrors(t *testing.T) {
	dir := isolate(t)
	cfg := config.Default()
	cfg.OutputFile = filepath.Join(dir, "deck.pptx")
	log := logger.NewLogger(false)

	var out bytes.Buffer
	err := generate(cfg, filepath.Join(dir, "missing.yaml"), log, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load script")
	assert.Empty(t, out.String())

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("title: X\nslides:\n  - kind: bullets\n    title: Empty\n"), 0644))
	err = generate(cfg, bad, log, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slide 1")
	assert.Empty(t, out.String())

	_, statErr := os.Stat(cfg.OutputFile)
	assert.True(t, os.IsNotExist(statErr), "nothing is written when the script is invalid")
}

func TestGenerate_CustomScript(t *testing.T) {
	dir := isolate(t)
	cfg := config.Default()
	cfg.OutputFile = filepath.Join(dir, "custom.pptx")

	script := filepath.Join(dir, "deck.yaml")
	yml := `title: Custom
author: Team
slides:
  - kind: title
    title: Custom Deck
    subtitle: "line one\nline two"
  - kind: bullets
    title: Points
    bullets: [a, b]
  - kind: image
    title: Screen
    caption: "[INSERT SCREENSHOT]"
`
	require.NoError(t, os.WriteFile(script, []byte(yml), 0644))

	var out bytes.Buffer
	require.NoError(t, generate(cfg, script, logger.NewLogger(false), &out))
	assert.Equal(t, "Successfully created presentation: "+cfg.OutputFile+"\n", out.String())
}

func TestHandoutPath(t *testing.T) {
	tests := []struct {
		output, format, want string
	}{
		{"deck.pptx", config.HandoutPDF, "deck.handout.pdf"},
		{"out/deck.pptx", config.HandoutDocx, "out/deck.outline.docx"},
		{"noext", config.HandoutPDF, "noext.handout.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, handoutPath(tt.output, tt.format))
	}
}
