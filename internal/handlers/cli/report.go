package cli

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/gabapcia/mempoolwatch/internal/txtrack"

	"github.com/shopspring/decimal"
)

const (
	// etherExp and gweiExp scale wei amounts to display units.
	etherExp = -18
	gweiExp  = -9

	// tokenExp is the most common ERC-20 decimals value. The real token decimals are
	// not queried, so the raw amount is always printed alongside.
	tokenExp = -18

	pendingLabel = "Pending"

	sectionHeader = "==================== Transaction Details ===================="
	sectionFooter = "============================================================="
)

// scale formats v (nil counts as zero) as a decimal number shifted by exp.
func scale(v *big.Int, exp int32) string {
	if v == nil {
		v = new(big.Int)
	}
	return decimal.NewFromBigInt(v, exp).String()
}

func optionalUint(v *uint64) string {
	if v == nil {
		return pendingLabel
	}
	return strconv.FormatUint(*v, 10)
}

// writeTokenTransfer appends the decoded token transfer, or a placeholder when the
// call data is not a transfer.
func writeTokenTransfer(b *strings.Builder, transfer txtrack.TokenTransfer, ok bool) {
	if !ok {
		b.WriteString("Token Information: Not available\n")
		return
	}

	amount := transfer.Amount.ToBig()
	b.WriteString("Token Transfer Detected:\n")
	fmt.Fprintf(b, "  Recipient: %s\n", transfer.Recipient)
	fmt.Fprintf(b, "  Amount (raw): %s\n", amount.String())
	fmt.Fprintf(b, "  Amount (18 decimals): %s\n", scale(amount, tokenExp))
}

// writeEntry appends the details block of a single transaction.
func writeEntry(b *strings.Builder, entry txtrack.Entry) {
	tx := entry.Transaction

	b.WriteString(sectionHeader + "\n")
	fmt.Fprintf(b, "Transaction Hash: %s\n", tx.Hash.Hex())
	fmt.Fprintf(b, "From Address: %s\n", tx.From.Hex())
	if tx.IsContractCreation() {
		b.WriteString("To Address: None (Contract Creation)\n")
	} else {
		fmt.Fprintf(b, "To Address: %s\n", tx.To.Hex())
	}
	fmt.Fprintf(b, "Value Transferred (ETH): %s\n", scale(tx.Value, etherExp))
	fmt.Fprintf(b, "Gas Price (Gwei): %s\n", scale(tx.GasPrice, gweiExp))
	fmt.Fprintf(b, "Gas Limit: %d\n", tx.Gas)
	fmt.Fprintf(b, "Nonce: %d\n", tx.Nonce)
	fmt.Fprintf(b, "Block Number: %s\n", optionalUint(tx.BlockNumber))
	fmt.Fprintf(b, "Transaction Index in Block: %s\n", optionalUint(tx.TransactionIndex))
	if tx.BlockHash == nil {
		fmt.Fprintf(b, "Block Hash: %s\n", pendingLabel)
	} else {
		fmt.Fprintf(b, "Block Hash: %s\n", tx.BlockHash.Hex())
	}
	if tx.ChainID == nil {
		b.WriteString("Chain ID: Not available\n")
	} else {
		fmt.Fprintf(b, "Chain ID: %s\n", tx.ChainID.String())
	}
	writeTokenTransfer(b, entry.TokenTransfer, entry.HasTokenTransfer)
	b.WriteString(sectionFooter + "\n")
}

// renderReport writes the human-readable report to w: one block per transaction in
// report order, followed by a summary of the run.
func renderReport(w io.Writer, report txtrack.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Sorted transactions related to contract %s:\n", report.Target.Hex())
	for _, entry := range report.Entries {
		writeEntry(&b, entry)
	}

	fmt.Fprintf(&b, "Collected %d transaction(s), %s (seen: %d, duplicates: %d, not found: %d, failed: %d, resolved: %d)\n",
		len(report.Entries),
		report.State,
		report.Stats.Seen,
		report.Stats.Duplicates,
		report.Stats.NotFound,
		report.Stats.Failed,
		report.Stats.Resolved,
	)

	_, err := io.WriteString(w, b.String())
	return err
}

// renderTokenTransfer writes the output of the decode command to w.
func renderTokenTransfer(w io.Writer, transfer txtrack.TokenTransfer, ok bool) error {
	var b strings.Builder
	writeTokenTransfer(&b, transfer, ok)

	_, err := io.WriteString(w, b.String())
	return err
}
