package fetch

import (
	"github.com/smartcontractkit/tally-calldata/config"
	"github.com/smartcontractkit/tally-calldata/pkg/logger"
	"github.com/smartcontractkit/tally-calldata/proposal"
	"github.com/smartcontractkit/tally-calldata/tally"
)

// SourceFactoryFunc builds the proposal source from validated settings.
type SourceFactoryFunc func(settings *config.Config, lggr logger.Logger) (proposal.ProposalSource, error)

// PersistFunc writes the fetched proposal artifacts into dir.
type PersistFunc func(dir string, res *proposal.Result, naming proposal.NamingPolicy) (*proposal.Artifacts, error)

// defaultSourceFactory is the production implementation that talks to the Tally API.
func defaultSourceFactory(settings *config.Config, lggr logger.Logger) (proposal.ProposalSource, error) {
	lggr.Debugw("Using Tally endpoint", "url", settings.Tally.APIURL)

	return tally.NewClient(
		settings.Tally.APIURL,
		settings.Tally.APIKey,
		tally.WithGovernorID(settings.Tally.GovernorID),
	)
}

// Deps holds the injectable dependencies for fetch commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// SourceFactory builds the proposal source.
	// Default: a tally.Client configured from the settings
	SourceFactory SourceFactoryFunc

	// Persist writes the artifacts.
	// Default: proposal.Persist
	Persist PersistFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.SourceFactory == nil {
		d.SourceFactory = defaultSourceFactory
	}
	if d.Persist == nil {
		d.Persist = proposal.Persist
	}
}
