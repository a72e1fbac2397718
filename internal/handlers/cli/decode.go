package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/mempoolwatch/internal/txtrack"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v3"
)

// decodeCommand returns a CLI command that decodes one ERC-20 transfer call data payload
// with the same decoder used for reports.
//
// Usage example:
//
//	mempoolwatch decode --input 0xa9059cbb000000000000000000000000...
func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:        "decode",
		Description: "Decodes transfer(address,uint256) call data and prints the recipient and amount.",
		Usage:       "Decodes hex-encoded call data. Must provide --input.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "0x-prefixed call data",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := hexutil.Decode(c.String("input"))
			if err != nil {
				return fmt.Errorf("invalid call data: %w", err)
			}

			transfer, ok := txtrack.DecodeTokenTransfer(input)
			return renderTokenTransfer(c.Root().Writer, transfer, ok)
		},
	}
}
