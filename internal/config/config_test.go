package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Table.Bankroll)
	assert.Equal(t, 5, cfg.Table.MaxSeats)
	assert.EqualValues(t, 0, cfg.Table.Seed)
}

func TestLoadParsesTableBlock(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "table.hcl")
	content := `
table {
  bankroll  = 250
  max_seats = 3
  seed      = 42
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Table.Bankroll)
	assert.Equal(t, 3, cfg.Table.MaxSeats)
	assert.EqualValues(t, 42, cfg.Table.Seed)
}

func TestLoadAppliesDefaultsFieldWise(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte("table {\n  seed = 7\n}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Table.Bankroll)
	assert.Equal(t, 5, cfg.Table.MaxSeats)
	assert.EqualValues(t, 7, cfg.Table.Seed)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte("table { bankroll = }\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
