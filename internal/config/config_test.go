package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/qimen/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "qimen.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	missing, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), missing)
}

func TestLoad_GridFormat(t *testing.T) {
	t.Setenv("QIMEN_FORMAT", config.FormatGrid)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.FormatGrid, cfg.Format)
}

// TestLoad_Order checks the file overrides defaults and the environment
// overrides the file.
func TestLoad_Order(t *testing.T) {
	p := writeFile(t, `
format: yaml
birth_year: "1984"
location: UTC
workers: 2
log:
  level: debug
`)
	t.Setenv("QIMEN_WORKERS", "8")
	t.Setenv("QIMEN_LOG_DEVELOPMENT", "true")

	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, "1984", cfg.BirthYear)
	assert.Equal(t, "UTC", cfg.Location)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)

	lvl, err := cfg.Log.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		env  map[string]string
		err  error
	}{
		{"Format", "format: xml\n", nil, config.ErrUnknownFormat},
		{"Location", "location: Mars/Olympus\n", nil, config.ErrBadLocation},
		{"Workers", "workers: 0\n", nil, config.ErrBadWorkers},
		{"LogLevel", "log:\n  level: loud\n", nil, config.ErrBadLogLevel},
		{"EnvFormat", "", map[string]string{"QIMEN_FORMAT": "toml"}, config.ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(writeFile(t, tc.body))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := config.Load(writeFile(t, "format: [json\n"))
	assert.Error(t, err)

	t.Setenv("QIMEN_WORKERS", "many")
	_, err = config.Load("")
	assert.Error(t, err)
}

func TestTimeLocation(t *testing.T) {
	cfg := config.Default()
	cfg.Location = "Asia/Shanghai"
	loc, err := cfg.TimeLocation()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Shanghai", loc.String())
}
