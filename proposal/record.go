package proposal

import (
	"errors"

	"github.com/smartcontractkit/tally-calldata/tally"
)

// ErrEmptyResult is returned when a proposal carries no executable calls.
var ErrEmptyResult = errors.New("no executable calls found in the proposal")

// TypeDraft marks a record built from a draft proposal.
const TypeDraft = "draft"

// ExecutableCall is one normalized on-chain action of a proposal.
type ExecutableCall struct {
	Target   string `json:"target"`
	Calldata string `json:"calldata"`
	Value    string `json:"value"`
}

// Record is the calldata artifact consumed by the contract test suite. Optional fields are
// omitted from the JSON when the query variant does not produce them.
type Record struct {
	ProposalID      string           `json:"proposalId"`
	Type            string           `json:"type,omitempty"`
	BlockNumber     *int64           `json:"blockNumber,omitempty"`
	VotingStart     *int64           `json:"votingStart,omitempty"`
	VotingEnd       *int64           `json:"votingEnd,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	ExecutableCalls []ExecutableCall `json:"executableCalls"`
}

// Normalize builds the Record for a proposal fetched with variant v under the requested id.
func Normalize(v tally.Variant, id string, p *tally.Proposal) (*Record, error) {
	if p == nil || len(p.ExecutableCalls) == 0 {
		return nil, ErrEmptyResult
	}

	calls := make([]ExecutableCall, 0, len(p.ExecutableCalls))
	for _, c := range p.ExecutableCalls {
		calls = append(calls, ExecutableCall{
			Target:   c.Target,
			Calldata: c.Calldata,
			Value:    valueOrZero(c.Value),
		})
	}

	rec := &Record{ProposalID: id, ExecutableCalls: calls}

	switch v {
	case tally.VariantDraft:
		rec.Type = TypeDraft
	case tally.VariantLive:
		if p.OnchainID != "" {
			rec.ProposalID = p.OnchainID
		}
		rec.BlockNumber = blockNumber(p.Block)
		rec.VotingStart = blockNumber(p.Start)
		rec.VotingEnd = blockNumber(p.End)
		rec.CreatedAt = p.CreatedAt
	case tally.VariantPlain:
	}

	return rec, nil
}

func valueOrZero(v *string) string {
	if v == nil || *v == "" {
		return "0"
	}

	return *v
}

func blockNumber(b *tally.Block) *int64 {
	if b == nil {
		return nil
	}

	return b.Number
}
