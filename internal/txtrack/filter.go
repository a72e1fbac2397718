package txtrack

import "github.com/ethereum/go-ethereum/common"

// MatchesTarget reports whether tx is addressed to target.
//
// Contract creations never match. Addresses are compared byte for byte; any textual
// normalization happens where the target is parsed.
func MatchesTarget(tx Transaction, target common.Address) bool {
	return tx.To != nil && *tx.To == target
}
