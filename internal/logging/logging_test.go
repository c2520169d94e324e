package logging

import (
	goflag "flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pwaquiz/internal/config"
)

func TestAddFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)

	for _, name := range []string{"v", "logtostderr", "log_dir"} {
		assert.NotNil(t, fs.Lookup(name), "flag %s", name)
	}
}

func TestInit_CreatesLogDir(t *testing.T) {
	prev := goflag.Lookup("log_dir").Value.String()
	t.Cleanup(func() { _ = goflag.Set("log_dir", prev) })

	dir := filepath.Join(t.TempDir(), "logs", "nested")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg := config.DefaultConfig()
	cfg.LogDir = dir
	require.NoError(t, Init(cfg, fs))

	assert.Equal(t, dir, goflag.Lookup("log_dir").Value.String())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, goflag.Parsed())
}

func TestInit_ExplicitFlagWins(t *testing.T) {
	prev := goflag.Lookup("log_dir").Value.String()
	t.Cleanup(func() { _ = goflag.Set("log_dir", prev) })

	explicit := filepath.Join(t.TempDir(), "explicit")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log_dir", explicit}))

	cfg := config.DefaultConfig()
	cfg.LogDir = filepath.Join(t.TempDir(), "from-env")
	require.NoError(t, Init(cfg, fs))

	assert.Equal(t, explicit, goflag.Lookup("log_dir").Value.String())
}
