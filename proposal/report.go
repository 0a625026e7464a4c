package proposal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/tally-calldata/tally"
)

const calldataPreviewLen = 66

// WriteSummary prints a human-readable summary of a fetched proposal and the artifacts written
// for it. It has no effect on the artifacts.
func WriteSummary(w io.Writer, res *Result, art *Artifacts) {
	calls := res.Record.ExecutableCalls
	fmt.Fprintf(w, "Found %d executable call(s)\n", len(calls))

	switch res.Variant {
	case tally.VariantDraft:
		writeDraftInfo(w, res)
	case tally.VariantLive:
		writeLiveInfo(w, res)
	case tally.VariantPlain:
	}

	if art != nil {
		fmt.Fprintf(w, "\nWrote %s\n", art.CalldataPath)
		if art.DescriptionPath != "" {
			fmt.Fprintf(w, "Wrote %s\n", art.DescriptionPath)
		}
	}

	for i, c := range calls {
		fmt.Fprintf(w, "\nCall %d:\n", i+1)
		fmt.Fprintf(w, "  Target: %s\n", displayAddress(c.Target))
		fmt.Fprintf(w, "  Value: %s\n", c.Value)
		if sel, ok := selector(c.Calldata); ok {
			fmt.Fprintf(w, "  Selector: %s\n", sel)
		}
		fmt.Fprintf(w, "  Calldata: %s\n", preview(c.Calldata))
	}

	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  Executable calls: %d\n", len(calls))
	if res.Variant.HasDescription() {
		fmt.Fprintf(w, "  Description length: %d characters\n", len([]rune(res.Description)))
	}

	fmt.Fprintf(w, "\nDone!\n")

	switch res.Variant {
	case tally.VariantLive:
		fmt.Fprintf(w, "\nIMPORTANT: The description from Tally may differ from the on-chain description\n")
		fmt.Fprintf(w, "(trailing whitespace, encoding). If the test fails with \"Governor: unknown proposal id\",\n")
		fmt.Fprintf(w, "extract the exact description from the ProposalCreated event on-chain.\n")
	case tally.VariantDraft:
		if art != nil {
			fmt.Fprintf(w, "\nNext steps:\n")
			fmt.Fprintf(w, "1. Review %s and %s\n", art.CalldataPath, DescriptionFile)
			fmt.Fprintf(w, "2. Create the calldata check test next to them\n")
		}
	case tally.VariantPlain:
	}
}

func writeDraftInfo(w io.Writer, res *Result) {
	p := res.Proposal
	fmt.Fprintf(w, "\nDraft Proposal Information:\n")
	id := res.Record.ProposalID
	if p != nil && p.ID != "" {
		id = p.ID
	}
	fmt.Fprintf(w, "  ID: %s\n", id)
	if p == nil {
		return
	}
	if p.CreatedAt != "" {
		fmt.Fprintf(w, "  Created: %s\n", p.CreatedAt)
	}
	if p.Creator != nil {
		fmt.Fprintf(w, "  Proposer: %s\n", firstNonEmpty(p.Creator.Name, p.Creator.Address, "Unknown"))
		fmt.Fprintf(w, "  Address: %s\n", firstNonEmpty(displayAddress(p.Creator.Address), "Unknown"))
	}
}

func writeLiveInfo(w io.Writer, res *Result) {
	p := res.Proposal
	if p == nil {
		return
	}
	fmt.Fprintf(w, "\nLive Proposal Information:\n")
	fmt.Fprintf(w, "  Tally ID: %s\n", p.ID)
	fmt.Fprintf(w, "  Onchain ID: %s\n", res.Record.ProposalID)
	fmt.Fprintf(w, "  Created at block: %s\n", formatBlock(p.Block))
	fmt.Fprintf(w, "  Voting start block: %s\n", formatBlock(p.Start))
	fmt.Fprintf(w, "  Voting end block: %s\n", formatBlock(p.End))
	if p.Proposer != nil {
		fmt.Fprintf(w, "  Proposer: %s (%s)\n", firstNonEmpty(p.Proposer.Name, "Unknown"), displayAddress(p.Proposer.Address))
	}
	if g := res.Governor; g != nil {
		fmt.Fprintf(w, "  Governor: %s (%s)\n", g.ID, firstNonEmpty(g.Chain, "unknown chain"))
	}
}

func formatBlock(b *tally.Block) string {
	if b == nil {
		return "unknown"
	}
	num := "unknown"
	if b.Number != nil {
		num = strconv.FormatInt(*b.Number, 10)
	}
	if b.Timestamp == "" {
		return num
	}

	return fmt.Sprintf("%s (%s)", num, b.Timestamp)
}

// displayAddress returns the EIP-55 checksummed form of a hex address, or s unchanged when it is
// not one.
func displayAddress(s string) string {
	if !common.IsHexAddress(s) {
		return s
	}

	return common.HexToAddress(s).Hex()
}

// selector returns the 4-byte function selector of hex calldata.
func selector(calldata string) (string, bool) {
	b, err := hexutil.Decode(calldata)
	if err != nil || len(b) < 4 {
		return "", false
	}

	return hexutil.Encode(b[:4]), true
}

// preview truncates calldata to calldataPreviewLen characters, marking truncation with "...".
func preview(calldata string) string {
	r := []rune(calldata)
	if len(r) <= calldataPreviewLen {
		return calldata
	}

	return string(r[:calldataPreviewLen]) + "..."
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}
