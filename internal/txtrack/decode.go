package txtrack

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

const (
	// selectorLength is the size of a function selector at the start of call data.
	selectorLength = 4

	// wordLength is the size of one ABI-encoded argument slot.
	wordLength = 32

	// addressLength is the size of an address right-aligned inside a slot.
	addressLength = 20

	// transferCallDataLength is selector + recipient slot + amount slot.
	transferCallDataLength = selectorLength + 2*wordLength
)

// transferSelector is the selector of transfer(address,uint256).
var transferSelector = []byte{0xa9, 0x05, 0x9c, 0xbb}

// TokenTransfer is the decoded view of a transfer(address,uint256) call.
type TokenTransfer struct {
	Recipient string       // 0x-prefixed lowercase hex of the recipient address
	Amount    *uint256.Int // Transferred token amount in the token's smallest unit
}

// DecodeTokenTransfer decodes call data as a transfer(address,uint256) call.
//
// The call data must be exactly 68 bytes long and start with the transfer selector.
// Any other input returns false; that is not an error, it only means the payload is
// not a recognized token transfer.
func DecodeTokenTransfer(input []byte) (TokenTransfer, bool) {
	if len(input) != transferCallDataLength || !bytes.HasPrefix(input, transferSelector) {
		return TokenTransfer{}, false
	}

	var (
		recipientSlot = input[selectorLength : selectorLength+wordLength]
		amountSlot    = input[selectorLength+wordLength : transferCallDataLength]
	)

	return TokenTransfer{
		Recipient: hexutil.Encode(recipientSlot[wordLength-addressLength:]),
		Amount:    new(uint256.Int).SetBytes(amountSlot),
	}, true
}
