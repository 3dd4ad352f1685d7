package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordbits/slip39c/internal/config"
)

func newTestRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewHelpCommand(r))
	r.Register(NewVersionCommand("test"))
	r.Register(NewEncodeWordCommand())
	r.Register(NewDecodeBitsCommand())
	return r
}

func TestRegistryGet(t *testing.T) {
	r := newTestRegistry()

	cmd, err := r.Get("encode-word")
	require.NoError(t, err)
	assert.Equal(t, "encode-word", cmd.Name())

	_, err = r.Get("nope")
	assert.Error(t, err)
}

func TestRegistryListSorted(t *testing.T) {
	r := newTestRegistry()
	names := r.List()
	assert.Equal(t, []string{"decode-bits", "encode-word", "help", "version"}, names)
}

func TestHelpCommandListsAll(t *testing.T) {
	r := newTestRegistry()
	out, _, err := run(NewHelpCommand(r))
	require.NoError(t, err)
	for _, name := range r.List() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "slip39c")
}

func TestHelpCommandSpecific(t *testing.T) {
	r := newTestRegistry()
	out, _, err := run(NewHelpCommand(r), "encode-word")
	require.NoError(t, err)
	assert.Contains(t, out, "Command: encode-word")
	assert.Contains(t, out, "-prefix")

	_, stderr, err := run(NewHelpCommand(r), "nope")
	assert.Error(t, err)
	assert.Contains(t, stderr, "Unknown command")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(NewVersionCommand("1.2.3"))
	require.NoError(t, err)
	assert.Equal(t, "slip39c version 1.2.3\n", out)
}

func TestConfigCommandGetSet(t *testing.T) {
	t.Setenv("SLIP39C_CONFIG", t.TempDir()+"/config")
	cfg := config.NewConfig()

	out, _, err := run(NewConfigCommand(cfg), "color")
	require.NoError(t, err)
	// Schema default is resolved for unset keys.
	assert.Contains(t, out, "color: auto")

	out, _, err = run(NewConfigCommand(cfg), "color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Set configuration: color = never")
	assert.Equal(t, "never", cfg.GetString("color"))

	// The set value persisted to disk.
	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "never", loaded.GetString("color"))
}

func TestConfigCommandValidate(t *testing.T) {
	cfg := config.NewConfig()
	cfg.SetGlobalOption("verbose", "maybe")
	out, _, err := run(NewConfigCommand(cfg), "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "issue")
}

func TestConfigCommandSchema(t *testing.T) {
	out, _, err := run(NewConfigCommand(config.NewConfig()), "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "[tui] Options:")
}

func TestInitCommand(t *testing.T) {
	path := t.TempDir() + "/config"
	t.Setenv("SLIP39C_CONFIG", path)

	out, _, err := run(NewInitCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized slip39c configuration")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.GetString("color"))
	assert.False(t, cfg.HasWarnings(), "default config must validate cleanly: %v", cfg.GetWarnings())

	// A second init without -force refuses to overwrite.
	out, _, err = run(NewInitCommand())
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "already exists"), out)
}

func TestResolveWord(t *testing.T) {
	word, err := resolveWord("ZERO", false)
	require.NoError(t, err)
	assert.Equal(t, "zero", word)

	_, err = resolveWord("zer", false)
	assert.Error(t, err)

	word, err = resolveWord("zer", true)
	require.NoError(t, err)
	assert.Equal(t, "zero", word)
}
