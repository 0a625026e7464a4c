package proposal

import (
	"context"
	"fmt"

	"github.com/smartcontractkit/tally-calldata/pkg/logger"
	"github.com/smartcontractkit/tally-calldata/tally"
)

// ProposalSource fetches raw proposals. It is implemented by *tally.Client.
type ProposalSource interface {
	Proposal(ctx context.Context, v tally.Variant, id string) (*tally.Proposal, error)
}

// Result is a fetched and normalized proposal, ready to be persisted.
type Result struct {
	Variant     tally.Variant
	Record      *Record
	Description string
	// Proposal is the raw API object, kept for reporting.
	Proposal *tally.Proposal
	// Governor identifies the governor a live proposal was fetched from. Nil for other variants.
	Governor *Governor
}

// Governor is the CAIP-10 governor id of a live proposal and the name of its chain. Chain is
// empty when the chain id is not a known EVM chain.
type Governor struct {
	ID    string
	Chain string
}

// Fetcher fetches a proposal and normalizes it into a Result.
type Fetcher struct {
	source ProposalSource
	lggr   logger.Logger
}

// NewFetcher returns a Fetcher reading from source.
func NewFetcher(source ProposalSource, lggr logger.Logger) *Fetcher {
	return &Fetcher{source: source, lggr: lggr}
}

// Fetch sends one request for proposal id using variant v and normalizes the response. Nothing
// is written to disk.
func (f *Fetcher) Fetch(ctx context.Context, v tally.Variant, id string) (*Result, error) {
	f.lggr.Infow("Fetching proposal from Tally", "variant", v.String(), "id", id)

	p, err := f.source.Proposal(ctx, v, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s proposal %s: %w", v, id, err)
	}

	rec, err := Normalize(v, id, p)
	if err != nil {
		return nil, fmt.Errorf("%s proposal %s: %w", v, id, err)
	}

	f.lggr.Debugw("Normalized proposal", "id", rec.ProposalID, "calls", len(rec.ExecutableCalls))

	return &Result{
		Variant:     v,
		Record:      rec,
		Description: p.Description(),
		Proposal:    p,
	}, nil
}
