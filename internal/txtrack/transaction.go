package txtrack

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Transaction is a snapshot of a transaction as reported by the node when it was observed.
//
// Values are never mutated once constructed. Optional fields are nil when the node did not
// report them: To is nil for contract creations, and the block fields are nil while the
// transaction is still pending.
type Transaction struct {
	Hash     common.Hash     // Unique transaction hash
	From     common.Address  // Sender address
	To       *common.Address // Destination address, nil for contract creation
	Value    *big.Int        // Transferred value in wei
	GasPrice *big.Int        // Gas price in wei
	Gas      uint64          // Gas limit
	Nonce    uint64          // Sender nonce
	Input    []byte          // Raw call data

	BlockNumber      *uint64      // Block number, nil while pending
	TransactionIndex *uint64      // Index within the block, nil while pending
	BlockHash        *common.Hash // Block hash, nil while pending
	ChainID          *big.Int     // Chain identifier, nil when not reported
}

// IsContractCreation reports whether the transaction has no destination address.
func (t Transaction) IsContractCreation() bool {
	return t.To == nil
}

// IsPending reports whether the transaction has not been included in a block yet.
func (t Transaction) IsPending() bool {
	return t.BlockNumber == nil
}

// ValueOrZero returns a copy of the transferred value, or zero when it is unset.
func (t Transaction) ValueOrZero() *big.Int {
	return copyOrZero(t.Value)
}

// GasPriceOrZero returns a copy of the gas price, or zero when it is unset.
func (t Transaction) GasPriceOrZero() *big.Int {
	return copyOrZero(t.GasPrice)
}

func copyOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
