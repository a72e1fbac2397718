package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/gabapcia/mempoolwatch/internal/txtrack"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TransactionResponse represents a transaction object returned by eth_getTransactionByHash.
// Block fields are null while the transaction is pending and "to" is null for
// contract creations.
type TransactionResponse struct {
	Hash             common.Hash     `json:"hash"`
	From             common.Address  `json:"from"`
	To               *common.Address `json:"to"`
	Value            *hexutil.Big    `json:"value"`
	GasPrice         *hexutil.Big    `json:"gasPrice"`
	MaxFeePerGas     *hexutil.Big    `json:"maxFeePerGas"`
	Gas              hexutil.Uint64  `json:"gas"`
	Nonce            hexutil.Uint64  `json:"nonce"`
	Input            hexutil.Bytes   `json:"input"`
	BlockNumber      *hexutil.Uint64 `json:"blockNumber"`
	TransactionIndex *hexutil.Uint64 `json:"transactionIndex"`
	BlockHash        *common.Hash    `json:"blockHash"`
	ChainID          *hexutil.Big    `json:"chainId"`
}

// toTransaction converts the node representation into a txtrack.Transaction.
// Dynamic fee transactions that omit gasPrice report their fee cap instead.
func (t TransactionResponse) toTransaction() txtrack.Transaction {
	gasPrice := t.GasPrice
	if gasPrice == nil {
		gasPrice = t.MaxFeePerGas
	}

	return txtrack.Transaction{
		Hash:             t.Hash,
		From:             t.From,
		To:               t.To,
		Value:            toBig(t.Value),
		GasPrice:         toBig(gasPrice),
		Gas:              uint64(t.Gas),
		Nonce:            uint64(t.Nonce),
		Input:            t.Input,
		BlockNumber:      toUint64(t.BlockNumber),
		TransactionIndex: toUint64(t.TransactionIndex),
		BlockHash:        t.BlockHash,
		ChainID:          toBig(t.ChainID),
	}
}

func toBig(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}
	return v.ToInt()
}

func toUint64(v *hexutil.Uint64) *uint64 {
	if v == nil {
		return nil
	}

	n := uint64(*v)
	return &n
}

// isNull reports whether a JSON-RPC result is empty or the literal null.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// TransactionByHash implements the txtrack.Resolver interface using eth_getTransactionByHash.
func (c *client) TransactionByHash(ctx context.Context, hash common.Hash) (txtrack.Transaction, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionByHash", hash.Hex())
	if err != nil {
		return txtrack.Transaction{}, fmt.Errorf("%w: %w", txtrack.ErrResolveFailed, err)
	}

	if isNull(data) {
		return txtrack.Transaction{}, txtrack.ErrTransactionNotFound
	}

	var res TransactionResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return txtrack.Transaction{}, fmt.Errorf("%w: decoding transaction %s: %w", txtrack.ErrResolveFailed, hash.Hex(), err)
	}

	return res.toTransaction(), nil
}
