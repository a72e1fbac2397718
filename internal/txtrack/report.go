package txtrack

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

// Entry is one transaction of a report along with its decoded call data.
type Entry struct {
	Transaction      Transaction
	TokenTransfer    TokenTransfer // Zero value when HasTokenTransfer is false
	HasTokenTransfer bool
}

// Report is the presentation-ready outcome of a run.
type Report struct {
	Target  common.Address
	State   State
	Entries []Entry // Sorted by transferred value, ascending
	Stats   Stats
}

// SortByValue sorts txs in place by transferred value, ascending.
// Transactions with equal values keep their relative order.
func SortByValue(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		return a.ValueOrZero().Cmp(b.ValueOrZero())
	})
}

// BuildReport sorts the sample of result by value and decodes the call data of every
// transaction. The sample held by result is left untouched.
func BuildReport(target common.Address, result Result) Report {
	sample := slices.Clone(result.Sample)
	SortByValue(sample)

	entries := make([]Entry, 0, len(sample))
	for _, tx := range sample {
		transfer, ok := DecodeTokenTransfer(tx.Input)
		entries = append(entries, Entry{
			Transaction:      tx,
			TokenTransfer:    transfer,
			HasTokenTransfer: ok,
		})
	}

	return Report{
		Target:  target,
		State:   result.State,
		Entries: entries,
		Stats:   result.Stats,
	}
}
