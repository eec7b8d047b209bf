package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saga-io/saga/pkg/config"
	"github.com/saga-io/saga/pkg/store"
)

func execute(t *testing.T, args ...string) {
	t.Helper()

	// Persistent flags keep their values between Execute calls, so reset
	// them to defaults before each run.
	for _, name := range []string{"data-dir", "config"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NoError(t, flag.Value.Set(flag.DefValue))
		flag.Changed = false
	}

	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

func TestIntCommand_EncodeWritesBothFiles(t *testing.T) {
	tmpDir := t.TempDir()

	execute(t, "int", "encode", "33", "--data-dir", tmpDir)

	raw, err := os.ReadFile(filepath.Join(tmpDir, "value.txt"))
	require.NoError(t, err)
	assert.Equal(t, "33", string(raw))

	info, err := os.Stat(filepath.Join(tmpDir, "value.bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), info.Size())
}

func TestMappingCommand_EncodeRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	execute(t, "mapping", "encode", "Mercury=4", "Venus=7", "Earth=0", "Mars=5", "--data-dir", tmpDir)

	fs := store.NewFileStore(store.FileStoreConfig{DataDir: tmpDir})
	mapping, err := fs.LoadMapping("mapping.bin")
	require.NoError(t, err)
	assert.Equal(t, map[string]int32{"Mercury": 4, "Venus": 7, "Earth": 0, "Mars": 5}, mapping)
}

func TestSequenceCommand_EncodeRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	execute(t, "sequence", "encode", "1000", "--data-dir", tmpDir)

	fs := store.NewFileStore(store.FileStoreConfig{DataDir: tmpDir})
	sequence, err := fs.LoadSequence("sequence.bin")
	require.NoError(t, err)
	require.Len(t, sequence, 1000)
	assert.Equal(t, uint32(0), sequence[0])
	assert.Equal(t, uint32(999), sequence[999])
}

func TestRecordCommand_EncodeRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	jsonPath := filepath.Join(tmpDir, "uchicago.json")
	fixture := `{
		"name": "University of Chicago",
		"undergraduate_enrollment": 7559,
		"graduate_enrollment": 10893,
		"schools": ["Law School", "Divinity School"],
		"acceptance_rate": 0.07
	}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(fixture), 0600))

	execute(t, "record", "encode", jsonPath, "--data-dir", tmpDir)

	fs := store.NewFileStore(store.FileStoreConfig{DataDir: tmpDir})
	record, err := fs.ReadInstitutionCBOR("institution.cbor")
	require.NoError(t, err)
	assert.Equal(t, "University of Chicago", record.Name)
	assert.Len(t, record.Schools, 2)
	assert.Equal(t, float32(0.07), record.AcceptanceRate)
}

func TestRootCommand_UsesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "configured-data")
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := config.DefaultConfig()
	cfg.DataDir = dataDir
	require.NoError(t, config.SaveConfig(cfg, configPath))

	execute(t, "int", "encode", "7", "--config", configPath)

	assert.FileExists(t, filepath.Join(dataDir, "value.txt"))
}
