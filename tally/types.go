package tally

// Proposal is the subset of the Tally proposal object requested by any of the query variants.
// Fields a variant does not request stay at their zero value.
type Proposal struct {
	ID              string           `json:"id"`
	OnchainID       string           `json:"onchainId"`
	CreatedAt       string           `json:"createdAt"`
	Block           *Block           `json:"block"`
	Start           *Block           `json:"start"`
	End             *Block           `json:"end"`
	Creator         *Account         `json:"creator"`
	Proposer        *Account         `json:"proposer"`
	Metadata        *Metadata        `json:"metadata"`
	ExecutableCalls []ExecutableCall `json:"executableCalls"`
}

// Description returns the proposal description, or an empty string when metadata is absent.
func (p *Proposal) Description() string {
	if p.Metadata == nil {
		return ""
	}

	return p.Metadata.Description
}

// ExecutableCall is one call of a proposal's execution payload as returned by the API.
// Value is nil when the API omits it.
type ExecutableCall struct {
	Target   string  `json:"target"`
	Calldata string  `json:"calldata"`
	Value    *string `json:"value"`
}

// Block is a block reference. Start and end of a voting period may be timestamp-only, in which
// case Number is nil.
type Block struct {
	Number    *int64 `json:"number"`
	Timestamp string `json:"timestamp"`
}

// Account identifies a proposal creator or proposer.
type Account struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// Metadata holds the proposal's free-form metadata.
type Metadata struct {
	Description string `json:"description"`
}
