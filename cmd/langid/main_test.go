package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/langid"
	"github.com/npillmayer/langid/internal/ztrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig([]string{"PATH=/bin", "HOME=/root"})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Trace)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.JSON)
	assert.Empty(t, cfg.Allow)
	f, err := cfg.filter()
	require.NoError(t, err)
	assert.Equal(t, langid.FilterNone, f.Mode())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	cfg, err := loadConfig([]string{
		"LANGID_ALLOW=eng, rus",
		"LANGID_TRACE=debug",
		"LANGID_LOG_FORMAT=json",
		"LANGID_JSON=true",
		"ALLOW=deu",
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Trace)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.JSON)
	f, err := cfg.filter()
	require.NoError(t, err)
	assert.Equal(t, langid.FilterAllow, f.Mode())
	assert.Equal(t, []langid.Language{langid.English, langid.Russian}, f.Languages())

	_, err = loadConfig([]string{"LANGID_JSON=maybe"})
	assert.Error(t, err)
}

func TestConfigFilterErrors(t *testing.T) {
	_, err := config{Allow: []string{"eng"}, Deny: []string{"rus"}}.filter()
	assert.Error(t, err)
	_, err = config{Deny: []string{"klingon"}}.filter()
	assert.Error(t, err)
	f, err := config{Deny: []string{"", "German"}}.filter()
	require.NoError(t, err)
	assert.Equal(t, "deny[deu]", f.String())
}

func TestConfigCustomProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.txt")
	data := "@Latin\neng _th the he_ _an and nd_\ndeu _de der er_ _un und nd_\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	d, err := config{Profiles: path}.detector()
	require.NoError(t, err)
	lang, ok := d.DetectLang("der und der und the")
	require.True(t, ok)
	assert.Equal(t, langid.German, lang)

	_, err = config{Profiles: filepath.Join(t.TempDir(), "missing.txt")}.detector()
	assert.Error(t, err)
}

func TestRunLines(t *testing.T) {
	input := strings.Join([]string{
		"Ĉu vi ne volas eklerni Esperanton? Bonvolu! Estas unu de la plej bonaj aferoj!",
		"",
		"123 456",
		"你好，世界",
	}, "\n")
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader(input), &out, langid.NewDetector(), false))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "epo\tLatin\t1.000\treliable", lines[0])
	assert.Equal(t, "-", lines[1])
	assert.Equal(t, "cmn\tHan\t1.000\treliable", lines[2])

	out.Reset()
	require.NoError(t, run(strings.NewReader(input), &out, langid.NewDetector(), true))
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"lang":"epo","script":"Latin","confidence":1,"reliable":true}`, lines[0])
	assert.Equal(t, "null", lines[1])
}

func TestUnknownLanguageHints(t *testing.T) {
	_, err := config{Allow: []string{"engl"}}.filter()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eng (English)")
	_, err = config{Deny: []string{"marx"}}.filter()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mar (Marathi)")
	_, err = config{Deny: []string{"klingon"}}.filter()
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRunFlushesBeforeReadError(t *testing.T) {
	broken := errors.New("pipe closed")
	input := io.MultiReader(
		strings.NewReader("Ĉu vi ne volas eklerni Esperanton? Bonvolu! Estas unu de la plej bonaj aferoj!\n"),
		iotest.ErrReader(broken),
	)
	var out bytes.Buffer
	err := run(input, &out, langid.NewDetector(), false)
	require.ErrorIs(t, err, broken)
	assert.Equal(t, "epo\tLatin\t1.000\treliable\n", out.String())
}

func TestSetupTracing(t *testing.T) {
	assert.Error(t, config{Trace: "error", LogFormat: "xml"}.setupTracing())
	require.NoError(t, config{Trace: "error", LogFormat: "json"}.setupTracing())
	tr, ok := tracing.Select("langid").(*ztrace.Tracer)
	require.True(t, ok, "langid traces should go to zerolog")
	assert.Equal(t, tracing.LevelError, tr.GetTraceLevel())
}
