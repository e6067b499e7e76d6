package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mydehq/exifname/internal/config"
	"github.com/mydehq/exifname/internal/pattern"
	"github.com/mydehq/exifname/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsCompile(t *testing.T) {
	cfg := config.GetDefaults()

	_, err := pattern.Compile(cfg.Pattern)
	require.NoError(t, err, "default pattern must compile")

	for _, name := range cfg.PresetNames() {
		tpl, err := cfg.ResolvePattern(name)
		require.NoError(t, err)
		_, err = pattern.Compile(tpl)
		assert.NoError(t, err, "preset %q must compile", name)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPattern, cfg.Pattern)
	assert.Contains(t, cfg.Formats, "jpg")
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`pattern: "{Y}{m}{D}-{r}.{e}"
presets:
  travel: "{Y}-{m}-{D} {T2} {r}.{e}"
formats: [jpg, nef]
exiftool:
  binary: /opt/exiftool/exiftool
  tags: [DateTimeOriginal, Model]
concurrency: 0
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "{Y}{m}{D}-{r}.{e}", cfg.Pattern)
	assert.Equal(t, []string{"jpg", "nef"}, cfg.Formats)
	assert.Equal(t, "/opt/exiftool/exiftool", cfg.Exiftool.Binary)
	assert.Equal(t, []string{"DateTimeOriginal", "Model"}, cfg.Exiftool.Tags)
	assert.Equal(t, 1, cfg.Concurrency)

	tpl, err := cfg.ResolvePattern("travel")
	require.NoError(t, err)
	assert.Equal(t, "{Y}-{m}-{D} {T2} {r}.{e}", tpl)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("pattern: [unclosed"), 0644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestResolvePattern_Unknown(t *testing.T) {
	cfg := config.GetDefaults()

	tpl, err := cfg.ResolvePattern("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPattern, tpl)

	_, err = cfg.ResolvePattern("nope")
	var notFound types.ErrPresetNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Name)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := config.GetDefaults()
	cfg.Pattern = "{f}{r}.{e}"

	require.NoError(t, config.Save(path, &cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Pattern, loaded.Pattern)
	assert.Equal(t, cfg.Presets, loaded.Presets)
}

func TestGlobalPath_Env(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/tmp/custom.yml")
	path, err := config.GlobalPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yml", path)
}

func TestClone(t *testing.T) {
	cfg := config.GetDefaults()
	clone := cfg.Clone()
	clone.Presets["date"] = "changed"
	clone.Formats[0] = "changed"

	assert.NotEqual(t, "changed", cfg.Presets["date"])
	assert.NotEqual(t, "changed", cfg.Formats[0])
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"IMG_0002.JPG", "IMG_0001.jpg", "notes.txt", "DSC0001.NEF"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0755))

	res, err := config.Scan(dir, []string{"jpg", "nef"})
	require.NoError(t, err)

	assert.True(t, res.HasMedia())
	assert.Equal(t, 5, res.TotalFiles)
	assert.Equal(t, []string{
		filepath.Join(dir, "DSC0001.NEF"),
		filepath.Join(dir, "IMG_0001.jpg"),
		filepath.Join(dir, "IMG_0002.JPG"),
	}, res.Files)
}
