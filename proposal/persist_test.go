package proposal

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/tally-calldata/tally"
)

func draftResult() *Result {
	return &Result{
		Variant: tally.VariantDraft,
		Record: &Record{
			ProposalID: "2786603872288769996",
			Type:       TypeDraft,
			ExecutableCalls: []ExecutableCall{
				{Target: "0x1111111111111111111111111111111111111111", Calldata: "0xaaaa", Value: "0"},
				{Target: "0x2222222222222222222222222222222222222222", Calldata: "0xbbbb", Value: "10"},
			},
		},
		Description: "Hello",
	}
}

func loadRecord(t *testing.T, dir, name string) Record {
	t.Helper()

	b, err := fs.ReadFile(os.DirFS(dir), name)
	require.NoError(t, err)

	var rec Record
	require.NoError(t, json.Unmarshal(b, &rec))

	return rec
}

func TestNamingPolicy_CalldataFile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "proposalCalldata.json", NamingStandard.CalldataFile())
	assert.Equal(t, "draftCalldata.json", NamingLegacy.CalldataFile())
}

func TestPersist(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "src", "ens", "proposals", "ep-6-32")
	res := draftResult()

	art, err := Persist(dir, res, NamingStandard)
	require.NoError(t, err)

	assert.Equal(t, dir, art.Dir)
	assert.Equal(t, filepath.Join(dir, StandardCalldataFile), art.CalldataPath)
	assert.Equal(t, filepath.Join(dir, DescriptionFile), art.DescriptionPath)

	assert.Equal(t, *res.Record, loadRecord(t, dir, StandardCalldataFile))

	b, err := os.ReadFile(art.CalldataPath)
	require.NoError(t, err)
	assert.Equal(t, `{
  "proposalId": "2786603872288769996",
  "type": "draft",
  "executableCalls": [
    {
      "target": "0x1111111111111111111111111111111111111111",
      "calldata": "0xaaaa",
      "value": "0"
    },
    {
      "target": "0x2222222222222222222222222222222222222222",
      "calldata": "0xbbbb",
      "value": "10"
    }
  ]
}`, string(b))

	desc, err := os.ReadFile(art.DescriptionPath)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(desc))
}

func TestPersist_LegacyNaming(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	art, err := Persist(dir, draftResult(), NamingLegacy)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, LegacyCalldataFile), art.CalldataPath)
	assert.NoFileExists(t, filepath.Join(dir, StandardCalldataFile))
	assert.FileExists(t, filepath.Join(dir, DescriptionFile))
}

func TestPersist_PlainSkipsDescription(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, DescriptionFile)
	require.NoError(t, os.WriteFile(existing, []byte("keep me"), 0o600))

	res := draftResult()
	res.Variant = tally.VariantPlain
	res.Record.Type = ""
	res.Description = ""

	art, err := Persist(dir, res, NamingLegacy)
	require.NoError(t, err)
	assert.Empty(t, art.DescriptionPath)

	b, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(b))
}

func TestPersist_OverwritesAndWritesDescriptionVerbatim(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StandardCalldataFile), []byte(`{"stale":true}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DescriptionFile), []byte("stale description that is long"), 0o600))

	res := draftResult()
	res.Variant = tally.VariantLive
	res.Description = "# [EP 6.32] Title  \r\n\n* item\t\n"

	_, err := Persist(dir, res, NamingStandard)
	require.NoError(t, err)

	assert.Equal(t, *res.Record, loadRecord(t, dir, StandardCalldataFile))

	desc, err := os.ReadFile(filepath.Join(dir, DescriptionFile))
	require.NoError(t, err)
	assert.Equal(t, res.Description, string(desc))
}

func TestPersist_RejectsEmptyRecord(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")

	for name, res := range map[string]*Result{
		"nil result": nil,
		"nil record": {Variant: tally.VariantDraft},
		"no calls":   {Variant: tally.VariantDraft, Record: &Record{ProposalID: "1"}},
	} {
		art, err := Persist(dir, res, NamingStandard)
		require.ErrorIs(t, err, ErrEmptyResult, name)
		assert.Nil(t, art, name)
	}

	assert.NoDirExists(t, dir)
}

func TestPersist_OutputDirIsFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := Persist(filepath.Join(file, "out"), draftResult(), NamingStandard)
	require.ErrorContains(t, err, "failed to create output directory")
}
