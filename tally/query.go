package tally

import (
	"fmt"
	"strings"
)

// Variant selects which proposal query is sent and which optional fields come back.
type Variant int

const (
	// VariantPlain fetches only the executable calls of a proposal by its Tally id.
	VariantPlain Variant = iota
	// VariantDraft fetches a draft proposal by its Tally id, with creator and description.
	VariantDraft
	// VariantLive fetches an on-chain proposal by governor and onchain id, with block and voting window.
	VariantLive
)

var variantNames = map[Variant]string{
	VariantPlain: "plain",
	VariantDraft: "draft",
	VariantLive:  "live",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}

	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant returns the Variant named s.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if strings.EqualFold(s, name) {
			return v, nil
		}
	}

	return 0, fmt.Errorf("unknown proposal variant %q", s)
}

// HasDescription reports whether the variant's query requests the proposal description.
func (v Variant) HasDescription() bool {
	return v == VariantDraft || v == VariantLive
}

// RequiresGovernor reports whether the variant needs a governor id to address the proposal.
func (v Variant) RequiresGovernor() bool {
	return v == VariantLive
}

const plainQuery = `
query Proposal($input: ProposalInput!) {
    proposal(input: $input) {
        executableCalls {
            target
            calldata
            value
        }
    }
}
`

const draftQuery = `
query Proposal($input: ProposalInput!) {
    proposal(input: $input) {
        id
        createdAt
        creator {
            address
            name
        }
        executableCalls {
            target
            calldata
            value
        }
        metadata {
            description
        }
    }
}
`

const liveQuery = `
query ProposalDetails($input: ProposalInput!) {
    proposal(input: $input) {
        id
        onchainId
        createdAt
        block { number timestamp }
        start { ... on Block { number timestamp } }
        end { ... on Block { number timestamp } }
        proposer { address name }
        metadata { description }
        executableCalls { value target calldata }
    }
}
`

// Request is the JSON body of a GraphQL request.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// NewRequest builds the GraphQL request for a proposal id. The governor id is only used by
// VariantLive.
func NewRequest(v Variant, id, governorID string) (Request, error) {
	switch v {
	case VariantPlain:
		return Request{Query: plainQuery, Variables: latestInput(id)}, nil
	case VariantDraft:
		return Request{Query: draftQuery, Variables: latestInput(id)}, nil
	case VariantLive:
		if governorID == "" {
			return Request{}, fmt.Errorf("governor id is required for %s proposals", v)
		}

		return Request{
			Query: liveQuery,
			Variables: map[string]any{
				"input": map[string]any{
					"governorId": governorID,
					"onchainId":  id,
				},
			},
		}, nil
	default:
		return Request{}, fmt.Errorf("unsupported proposal variant %s", v)
	}
}

func latestInput(id string) map[string]any {
	return map[string]any{
		"input": map[string]any{
			"id":       id,
			"isLatest": true,
		},
	}
}
