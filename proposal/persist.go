package proposal

import (
	"fmt"
	"path/filepath"

	"github.com/smartcontractkit/tally-calldata/internal/fileutils"
	"github.com/smartcontractkit/tally-calldata/internal/jsonutils"
)

// NamingPolicy selects the file name of the calldata artifact.
type NamingPolicy int

const (
	// NamingStandard writes proposalCalldata.json.
	NamingStandard NamingPolicy = iota
	// NamingLegacy writes draftCalldata.json, the name used by older test suites.
	NamingLegacy
)

const (
	StandardCalldataFile = "proposalCalldata.json"
	LegacyCalldataFile   = "draftCalldata.json"
	DescriptionFile      = "proposalDescription.md"
)

// CalldataFile returns the calldata artifact file name for the policy.
func (n NamingPolicy) CalldataFile() string {
	if n == NamingLegacy {
		return LegacyCalldataFile
	}

	return StandardCalldataFile
}

// Artifacts lists the files written by Persist. DescriptionPath is empty when no description was
// written.
type Artifacts struct {
	Dir             string
	CalldataPath    string
	DescriptionPath string
}

// Persist writes the calldata record and, for variants that fetch one, the description into dir,
// creating it if needed. Both files are overwritten. Writes are not atomic: a failure after the
// JSON write leaves only the JSON artifact behind.
func Persist(dir string, res *Result, naming NamingPolicy) (*Artifacts, error) {
	if res == nil || res.Record == nil || len(res.Record.ExecutableCalls) == 0 {
		return nil, ErrEmptyResult
	}

	absDir, err := fileutils.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	art := &Artifacts{
		Dir:          absDir,
		CalldataPath: filepath.Join(absDir, naming.CalldataFile()),
	}

	if err := jsonutils.WriteFile(art.CalldataPath, res.Record); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", art.CalldataPath, err)
	}

	if !res.Variant.HasDescription() {
		return art, nil
	}

	descPath := filepath.Join(absDir, DescriptionFile)
	if err := fileutils.WriteText(descPath, res.Description); err != nil {
		return art, fmt.Errorf("failed to write %s: %w", descPath, err)
	}
	art.DescriptionPath = descPath

	return art, nil
}
